// Package loader selects a document loader for a source file.
//
// Each format lives in its own subpackage (pdf, plaintext) and
// implements driven.DocumentLoader. Selection is by file extension.
package loader

import (
	"fmt"

	"github.com/halcyon-labs/scribe-cli/internal/core/ports/driven"
	"github.com/halcyon-labs/scribe-cli/internal/loader/pdf"
	"github.com/halcyon-labs/scribe-cli/internal/loader/plaintext"
)

// ForPath returns the loader that handles the given path.
func ForPath(path string) (driven.DocumentLoader, error) {
	loaders := []driven.DocumentLoader{
		pdf.New(),
		plaintext.New(),
	}
	for _, l := range loaders {
		if l.Supports(path) {
			return l, nil
		}
	}
	return nil, fmt.Errorf("no loader for %q: supported extensions are .pdf, .txt", path)
}
