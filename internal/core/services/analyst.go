package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/halcyon-labs/scribe-cli/internal/core/domain"
	"github.com/halcyon-labs/scribe-cli/internal/core/ports/driving"
	"github.com/halcyon-labs/scribe-cli/internal/logger"
)

// Ensure AnalystService implements the interface.
var _ driving.Analyst = (*AnalystService)(nil)

// AnalystService ties indexing, retrieval, and answer generation
// together behind a readiness gate. Questions are only accepted once
// the index is built; a failed question leaves the service ready for
// the next one.
type AnalystService struct {
	indexer      *IndexerService
	retriever    *RetrieverService
	answerer     *AnswererService
	documentPath string

	mu    sync.RWMutex
	state domain.IndexState
	stats domain.IndexStats
}

// NewAnalystService creates an analyst for the document at
// documentPath. The service starts uninitialized; call Rebuild to
// build the index.
func NewAnalystService(
	indexer *IndexerService,
	retriever *RetrieverService,
	answerer *AnswererService,
	documentPath string,
) *AnalystService {
	return &AnalystService{
		indexer:      indexer,
		retriever:    retriever,
		answerer:     answerer,
		documentPath: documentPath,
		state:        domain.StateUninitialized,
	}
}

// State returns the current index state.
func (s *AnalystService) State() domain.IndexState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Stats returns statistics for the current index. Zero value until
// the first successful build.
func (s *AnalystService) Stats() domain.IndexStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

// Rebuild builds (or reuses) the index for the configured document.
// Only one build runs at a time; a second concurrent call fails with
// ErrIndexing. On failure the previous state is restored, so a
// rebuild that breaks does not take a ready index out of service.
func (s *AnalystService) Rebuild(ctx context.Context) error {
	s.mu.Lock()
	if s.state == domain.StateIndexing {
		s.mu.Unlock()
		return domain.ErrIndexing
	}
	previous := s.state
	s.state = domain.StateIndexing
	s.mu.Unlock()

	stats, err := s.indexer.Build(ctx, s.documentPath, previous == domain.StateReady)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = previous
		return fmt.Errorf("rebuild index: %w", err)
	}
	s.state = domain.StateReady
	s.stats = *stats
	return nil
}

// Ask answers a question against the indexed transcript. Returns
// ErrNotReady before the first build and ErrIndexing while a build is
// in flight. Failures are per-question: the service stays ready.
func (s *AnalystService) Ask(ctx context.Context, question string) (*domain.Answer, error) {
	switch s.State() {
	case domain.StateUninitialized:
		return nil, domain.ErrNotReady
	case domain.StateIndexing:
		return nil, domain.ErrIndexing
	case domain.StateReady:
	}

	chunks, err := s.retriever.Retrieve(ctx, question)
	if err != nil {
		logger.Warn("Question failed during retrieval: %v", err)
		return nil, err
	}

	answer, err := s.answerer.Answer(ctx, question, chunks)
	if err != nil {
		logger.Warn("Question failed during generation: %v", err)
		return nil, err
	}
	return answer, nil
}
