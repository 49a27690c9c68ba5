package driven

import (
	"context"

	"github.com/halcyon-labs/scribe-cli/internal/core/domain"
)

// VectorStore persists chunks with their embeddings and answers
// nearest-neighbour queries by cosine similarity.
//
// The store is keyed by corpus identity (document fingerprint plus
// embedding model): chunks from two different document versions never
// share an index without an explicit rebuild. Reads may run
// concurrently; only the build phase writes.
type VectorStore interface {
	// Corpus returns the identity of the currently stored corpus,
	// or nil if the store is empty.
	Corpus(ctx context.Context) (*CorpusInfo, error)

	// Replace atomically swaps the stored corpus: the previous
	// identity and all its chunks are dropped and the new corpus
	// committed in a single operation. On error the previous corpus
	// remains intact and queryable. Every chunk must carry an
	// embedding.
	Replace(ctx context.Context, info CorpusInfo, chunks []domain.Chunk) error

	// Search returns up to k chunks ranked by descending cosine
	// similarity to the query vector. An empty store yields an empty
	// result, not an error.
	Search(ctx context.Context, query []float32, k int) ([]domain.RetrievedChunk, error)

	// Count returns the number of stored chunks.
	Count(ctx context.Context) (int, error)

	// Close releases resources.
	Close() error
}

// CorpusInfo identifies the document version a stored index was
// built from. Any mismatch forces a full rebuild.
type CorpusInfo struct {
	// ID is the unique identifier for this corpus build.
	ID string

	// DocumentPath is the source file the corpus was built from.
	DocumentPath string

	// Fingerprint is the content hash of the document version.
	Fingerprint string

	// EmbeddingModel is the model that produced the vectors. Vectors
	// from different models are not comparable.
	EmbeddingModel string

	// Dimensions is the embedding vector size.
	Dimensions int
}
