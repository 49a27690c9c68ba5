package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Question string `json:"question" jsonschema:"the question to answer from the indexed transcript"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Answer          string   `json:"answer"`
	Sources         []string `json:"sources"`
	ContextSnippets []string `json:"context_snippets,omitempty"`
}

// snippetLength bounds context excerpts in tool output.
const snippetLength = 200

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Answer a question grounded strictly in the indexed transcript",
	}, s.handleAsk)
}

// handleAsk handles the ask tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	answer, err := s.ports.Analyst.Ask(ctx, input.Question)
	if err != nil {
		return nil, AskOutput{}, err
	}

	output := AskOutput{
		Answer:          answer.Text,
		Sources:         answer.Sources,
		ContextSnippets: make([]string, len(answer.Context)),
	}
	for i, rc := range answer.Context {
		text := rc.Chunk.Text
		if runes := []rune(text); len(runes) > snippetLength {
			text = string(runes[:snippetLength]) + "..."
		}
		output.ContextSnippets[i] = text
	}

	return nil, output, nil
}
