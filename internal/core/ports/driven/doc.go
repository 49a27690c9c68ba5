// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
//   - DocumentLoader: Extracts ordered page text from a source file
//   - EmbeddingService: Generates vector embeddings (Ollama)
//   - LLMService: Text generation for grounded answers (Ollama)
//   - VectorStore: Persists chunks and answers nearest-neighbour queries
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, loader, or service package
package driven
