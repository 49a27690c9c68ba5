package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyon-labs/scribe-cli/internal/adapters/driven/index/memory"
	"github.com/halcyon-labs/scribe-cli/internal/core/domain"
	"github.com/halcyon-labs/scribe-cli/internal/core/ports/driven"
)

// stubEmbedder returns a fixed vector for any input.
type stubEmbedder struct {
	fakeEmbedder
	vector []float32
}

func (s *stubEmbedder) Embed(context.Context, string) ([]float32, error) {
	if s.failErr != nil {
		return nil, s.failErr
	}
	return s.vector, nil
}

func seededStore(t *testing.T, chunks []domain.Chunk) *memory.Index {
	t.Helper()
	store := memory.NewIndex()
	require.NoError(t, store.Replace(context.Background(), driven.CorpusInfo{
		ID: "c1", DocumentPath: "/t.txt", Fingerprint: "fp",
		EmbeddingModel: "fake-embed", Dimensions: 2,
	}, chunks))
	return store
}

func TestRetrieve_RanksBestFirst(t *testing.T) {
	store := seededStore(t, []domain.Chunk{
		{ID: "a", Text: "about refunds", Embedding: []float32{1, 0}},
		{ID: "b", Text: "about shipping", Embedding: []float32{0, 1}},
		{ID: "c", Text: "refund policy details", Embedding: []float32{0.9, 0.1}},
	})
	retriever := NewRetrieverService(&stubEmbedder{vector: []float32{1, 0}}, store, 2, 0)

	results, err := retriever.Retrieve(context.Background(), "what is the refund policy?")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "a", results[0].Chunk.ID)
	assert.Equal(t, "c", results[1].Chunk.ID)
}

func TestRetrieve_MinScoreFilters(t *testing.T) {
	store := seededStore(t, []domain.Chunk{
		{ID: "a", Text: "on topic", Embedding: []float32{1, 0}},
		{ID: "b", Text: "off topic", Embedding: []float32{0, 1}},
	})
	retriever := NewRetrieverService(&stubEmbedder{vector: []float32{1, 0}}, store, 4, 0.5)

	results, err := retriever.Retrieve(context.Background(), "question")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "a", results[0].Chunk.ID)
}

func TestRetrieve_EmptyQuestion(t *testing.T) {
	retriever := NewRetrieverService(&stubEmbedder{vector: []float32{1, 0}}, memory.NewIndex(), 4, 0)

	results, err := retriever.Retrieve(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRetrieve_EmptyIndex(t *testing.T) {
	retriever := NewRetrieverService(&stubEmbedder{vector: []float32{1, 0}}, memory.NewIndex(), 4, 0)

	results, err := retriever.Retrieve(context.Background(), "anything at all")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRetrieve_EmbeddingFailure(t *testing.T) {
	embedder := &stubEmbedder{vector: []float32{1, 0}}
	embedder.failErr = domain.ErrEmbeddingUnavailable
	retriever := NewRetrieverService(embedder, memory.NewIndex(), 4, 0)

	_, err := retriever.Retrieve(context.Background(), "question")
	assert.ErrorIs(t, err, domain.ErrEmbeddingUnavailable)
}

func TestNewRetrieverService_DefaultTopK(t *testing.T) {
	retriever := NewRetrieverService(&stubEmbedder{}, memory.NewIndex(), 0, 0)
	assert.Equal(t, 4, retriever.topK)
}
