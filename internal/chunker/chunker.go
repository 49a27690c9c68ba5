// Package chunker provides fixed-size overlapping text chunking.
package chunker

import (
	"github.com/google/uuid"

	"github.com/halcyon-labs/scribe-cli/internal/core/domain"
)

// DefaultChunkSize is the default number of characters per chunk.
const DefaultChunkSize = 1000

// DefaultChunkOverlap is the default number of overlapping characters.
const DefaultChunkOverlap = 200

// Chunker splits document content into overlapping fixed-size chunks.
// Overlap preserves context that would otherwise be cut at a window
// boundary.
type Chunker struct {
	chunkSize int
	overlap   int
}

// Option configures the chunker.
type Option func(*Chunker)

// WithChunkSize sets the chunk size in characters.
func WithChunkSize(size int) Option {
	return func(c *Chunker) {
		if size > 0 {
			c.chunkSize = size
		}
	}
}

// WithOverlap sets the overlap between chunks in characters.
func WithOverlap(overlap int) Option {
	return func(c *Chunker) {
		if overlap >= 0 {
			c.overlap = overlap
		}
	}
}

// New creates a new chunker with the given options.
func New(opts ...Option) *Chunker {
	c := &Chunker{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultChunkOverlap,
	}

	for _, opt := range opts {
		opt(c)
	}

	// Ensure overlap doesn't exceed chunk size
	if c.overlap >= c.chunkSize {
		c.overlap = c.chunkSize / 4
	}

	return c
}

// Split chunks the document content into overlapping windows. Windows
// are measured in runes so a multi-byte character is never cut in
// half; offsets are byte positions into the joined content. A document
// shorter than one window yields exactly one chunk; empty content
// yields no chunks. Embeddings are not assigned here.
func (c *Chunker) Split(doc *domain.Document) []domain.Chunk {
	content := doc.Content()
	if content == "" {
		return nil
	}

	// Byte offset of each rune start.
	starts := make([]int, 0, len(content))
	for i := range content {
		starts = append(starts, i)
	}
	runeCount := len(starts)

	step := c.chunkSize - c.overlap
	chunks := make([]domain.Chunk, 0, runeCount/step+1)

	position := 0
	for start := 0; start < runeCount; start += step {
		end := start + c.chunkSize
		if end > runeCount {
			end = runeCount
		}

		byteEnd := len(content)
		if end < runeCount {
			byteEnd = starts[end]
		}

		chunks = append(chunks, domain.Chunk{
			ID:       uuid.New().String(),
			Text:     content[starts[start]:byteEnd],
			Offset:   starts[start],
			Position: position,
		})
		position++

		// The last window already reaches the end of the document;
		// anything past it would be pure overlap.
		if end == runeCount {
			break
		}
	}

	return chunks
}
