package driven

import "context"

// EmbeddingService generates vector embeddings from text.
//
// Implementations make no retry attempts: a failed call surfaces
// domain.ErrEmbeddingUnavailable or domain.ErrEmbeddingModelMissing
// and the caller decides whether to retry.
type EmbeddingService interface {
	// Embed generates a vector embedding for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts in order.
	// This is used by the index build for throughput.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// ModelName returns the name of the embedding model being used.
	// The vector store records it as part of the corpus identity.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight
	// request. Used at startup before committing to an index build.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
