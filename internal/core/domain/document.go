package domain

// Document is the loaded source transcript after text extraction.
// It is read once at startup (or on an explicit reindex) and never
// mutated afterwards.
type Document struct {
	// Path is the file the document was loaded from.
	Path string

	// Fingerprint is a content hash of the raw file bytes.
	// Chunks derived from one fingerprint never mix with another:
	// a changed fingerprint forces a full rebuild of the index.
	Fingerprint string

	// Pages holds the extracted text in page order.
	Pages []string
}

// Content returns the full document text with pages joined by
// newlines, in the order they appear in the source file.
func (d Document) Content() string {
	if len(d.Pages) == 0 {
		return ""
	}
	out := d.Pages[0]
	for _, p := range d.Pages[1:] {
		out += "\n" + p
	}
	return out
}

// Chunk is an embeddable segment of the transcript.
// Chunks are immutable once created; identity is stable for a
// single indexing run and owned by the vector store after insertion.
type Chunk struct {
	// ID is the unique identifier for the chunk.
	ID string

	// Text is the chunk content.
	Text string

	// Offset is the byte offset of the chunk within the document.
	Offset int

	// Position is the ordinal position within the document.
	Position int

	// Embedding is the vector representation. It is empty until the
	// indexing pipeline assigns one.
	Embedding []float32
}

// RetrievedChunk is a chunk paired with its similarity to a query.
type RetrievedChunk struct {
	// Chunk is the matched chunk.
	Chunk Chunk

	// Score is the cosine similarity to the query vector (0-1).
	Score float64
}
