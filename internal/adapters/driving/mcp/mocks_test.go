package mcp

import (
	"context"

	"github.com/halcyon-labs/scribe-cli/internal/core/domain"
)

// mockAnalyst implements driving.Analyst for tests.
type mockAnalyst struct {
	answer *domain.Answer
	err    error
	state  domain.IndexState
	stats  domain.IndexStats
	asked  []string
}

func (m *mockAnalyst) Ask(_ context.Context, question string) (*domain.Answer, error) {
	m.asked = append(m.asked, question)
	if m.err != nil {
		return nil, m.err
	}
	return m.answer, nil
}

func (m *mockAnalyst) State() domain.IndexState { return m.state }

func (m *mockAnalyst) Stats() domain.IndexStats { return m.stats }

func (m *mockAnalyst) Rebuild(context.Context) error { return nil }
