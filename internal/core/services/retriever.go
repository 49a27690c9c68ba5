package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/halcyon-labs/scribe-cli/internal/core/domain"
	"github.com/halcyon-labs/scribe-cli/internal/core/ports/driven"
	"github.com/halcyon-labs/scribe-cli/internal/logger"
)

// RetrieverService finds the chunks most similar to a question.
type RetrieverService struct {
	embedder driven.EmbeddingService
	store    driven.VectorStore
	topK     int
	minScore float64
}

// NewRetrieverService creates a new retriever. topK defaults to 4
// when zero or negative; minScore of 0 keeps every result.
func NewRetrieverService(
	embedder driven.EmbeddingService,
	store driven.VectorStore,
	topK int,
	minScore float64,
) *RetrieverService {
	if topK <= 0 {
		topK = 4
	}
	return &RetrieverService{
		embedder: embedder,
		store:    store,
		topK:     topK,
		minScore: minScore,
	}
}

// Retrieve embeds the question and returns the top-K most similar
// chunks, best first. An empty question returns no results.
func (s *RetrieverService) Retrieve(ctx context.Context, question string) ([]domain.RetrievedChunk, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return []domain.RetrievedChunk{}, nil
	}

	logger.Debug("Retrieval: embedding question (%d chars)", len(question))
	embedding, err := s.embedder.Embed(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("embed question: %w", err)
	}

	results, err := s.store.Search(ctx, embedding, s.topK)
	if err != nil {
		return nil, fmt.Errorf("search index: %w", err)
	}
	logger.Debug("Retrieval: %d candidates", len(results))

	if s.minScore > 0 {
		kept := results[:0]
		for _, r := range results {
			if r.Score >= s.minScore {
				kept = append(kept, r)
			}
		}
		if len(kept) < len(results) {
			logger.Debug("Retrieval: dropped %d below min score %.2f",
				len(results)-len(kept), s.minScore)
		}
		results = kept
	}

	return results, nil
}
