package mcp

import "errors"

// ErrMissingAnalyst is returned when the server is created without an
// analyst port.
var ErrMissingAnalyst = errors.New("mcp: analyst port is required")
