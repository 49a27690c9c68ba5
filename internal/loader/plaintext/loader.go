// Package plaintext loads .txt transcripts.
package plaintext

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/halcyon-labs/scribe-cli/internal/core/domain"
	"github.com/halcyon-labs/scribe-cli/internal/core/ports/driven"
)

// Ensure Loader implements the interface.
var _ driven.DocumentLoader = (*Loader)(nil)

// Loader reads plain text files as single-page documents.
type Loader struct{}

// New creates a new plain text loader.
func New() *Loader {
	return &Loader{}
}

// Supports reports whether the path has a .txt extension.
func (l *Loader) Supports(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".txt")
}

// Load reads the whole file as one page.
func (l *Loader) Load(_ context.Context, path string) (*domain.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	sum := sha256.Sum256(raw)

	doc := &domain.Document{
		Path:        path,
		Fingerprint: hex.EncodeToString(sum[:]),
	}
	if text := string(raw); strings.TrimSpace(text) != "" {
		doc.Pages = []string{text}
	}

	return doc, nil
}
