package driven

import (
	"context"

	"github.com/halcyon-labs/scribe-cli/internal/core/domain"
)

// DocumentLoader extracts text from a source file.
//
// Implementations exist per format (PDF, plain text). A missing or
// unparseable file is an error; the caller treats it as fatal at
// startup.
type DocumentLoader interface {
	// Load reads the file at path and returns the document with its
	// pages in source order and its content fingerprint set.
	Load(ctx context.Context, path string) (*domain.Document, error)

	// Supports reports whether this loader handles the given path,
	// judged by file extension.
	Supports(path string) bool
}
