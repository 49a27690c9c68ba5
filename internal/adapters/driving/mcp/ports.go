package mcp

import (
	"github.com/halcyon-labs/scribe-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP
// server. This provides a single injection point for dependency
// injection.
type Ports struct {
	// Analyst answers questions about the indexed transcript.
	Analyst driving.Analyst
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Analyst == nil {
		return ErrMissingAnalyst
	}
	return nil
}
