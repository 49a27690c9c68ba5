package driving

import (
	"context"

	"github.com/halcyon-labs/scribe-cli/internal/core/domain"
)

// Analyst answers questions about the indexed transcript.
type Analyst interface {
	// Ask retrieves relevant context for the question and generates a
	// grounded answer. It returns domain.ErrNotReady or
	// domain.ErrIndexing while the index is unavailable; a per-query
	// failure leaves the service ready for subsequent questions.
	Ask(ctx context.Context, question string) (*domain.Answer, error)

	// State reports the current lifecycle state.
	State() domain.IndexState

	// Stats describes the last successful index build.
	Stats() domain.IndexStats

	// Rebuild discards the current index and runs the full
	// load-chunk-embed-store pipeline again.
	Rebuild(ctx context.Context) error
}
