package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotReady indicates the index has not been built yet.
	// Queries are rejected until the build completes.
	ErrNotReady = errors.New("index not ready")

	// ErrIndexing indicates a build is in progress.
	ErrIndexing = errors.New("index build in progress")

	// ErrEmptyDocument indicates the source document produced no
	// chunks. This is a configuration error, not a valid empty corpus.
	ErrEmptyDocument = errors.New("document produced no chunks")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Model-serving errors. The caller decides whether to retry;
	// no adapter retries internally.

	// ErrEmbeddingUnavailable indicates the embedding server cannot
	// be reached.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrEmbeddingModelMissing indicates the requested embedding model
	// is not installed on the model server.
	ErrEmbeddingModelMissing = errors.New("embedding model not installed")

	// ErrGenerationUnavailable indicates the language model server
	// cannot be reached.
	ErrGenerationUnavailable = errors.New("generation service unavailable")

	// ErrGenerationTimeout indicates the language model call exceeded
	// the configured deadline.
	ErrGenerationTimeout = errors.New("generation timed out")
)
