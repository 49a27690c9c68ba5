package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const uriScheme = "scribe://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource describing the indexed corpus.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "index",
		Name:        "index",
		Description: "Status and statistics of the transcript index",
		MIMEType:    "application/json",
	}, s.handleIndexResource)
}

// handleIndexResource returns the current index state and stats.
func (s *Server) handleIndexResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	stats := s.ports.Analyst.Stats()

	info := struct {
		State        string `json:"state"`
		DocumentPath string `json:"document_path,omitempty"`
		Fingerprint  string `json:"fingerprint,omitempty"`
		Chunks       int    `json:"chunks"`
		Dimensions   int    `json:"dimensions"`
	}{
		State:        s.ports.Analyst.State().String(),
		DocumentPath: stats.DocumentPath,
		Fingerprint:  stats.Fingerprint,
		Chunks:       stats.Chunks,
		Dimensions:   stats.Dimensions,
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling index status: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
