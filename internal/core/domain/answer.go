package domain

// Answer is a grounded response to a question.
type Answer struct {
	// Text is the model's response.
	Text string

	// Sources lists the ids of every chunk included in the prompt.
	// The model cannot report which of them it actually used, so this
	// is "context made available", not a verified citation set.
	Sources []string

	// Context holds the retrieved chunks the answer was grounded on,
	// ranked by descending similarity. Useful for display and debugging.
	Context []RetrievedChunk
}

// IndexState describes the lifecycle of the analyst service.
type IndexState int

const (
	// StateUninitialized means no index build has been attempted.
	StateUninitialized IndexState = iota

	// StateIndexing means a build is in progress. Queries are rejected.
	StateIndexing

	// StateReady means the index is built and queries are served.
	StateReady
)

// String returns a human-readable state name.
func (s IndexState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateIndexing:
		return "indexing"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// IndexStats summarises a completed index build.
type IndexStats struct {
	// DocumentPath is the indexed source file.
	DocumentPath string

	// Fingerprint identifies the indexed document version.
	Fingerprint string

	// Chunks is the number of chunks in the index.
	Chunks int

	// Dimensions is the embedding vector size.
	Dimensions int

	// Reused is true when a persisted index matched the document
	// fingerprint and no re-embedding was needed.
	Reused bool
}
