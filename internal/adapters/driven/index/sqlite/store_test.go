package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyon-labs/scribe-cli/internal/core/domain"
	"github.com/halcyon-labs/scribe-cli/internal/core/ports/driven"
)

func setupTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, dir
}

func testCorpus() driven.CorpusInfo {
	return driven.CorpusInfo{
		ID:             "corpus-1",
		DocumentPath:   "/data/transcript.pdf",
		Fingerprint:    "abc123",
		EmbeddingModel: "mxbai-embed-large",
		Dimensions:     3,
	}
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	store, _ := setupTestStore(t)
	assert.NotEmpty(t, store.Path())
}

func TestCorpus_EmptyStore(t *testing.T) {
	store, _ := setupTestStore(t)

	info, err := store.Corpus(context.Background())
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestReplace_RegistersCorpus(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Replace(ctx, testCorpus(), nil))

	info, err := store.Corpus(ctx)
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "corpus-1", info.ID)
	assert.Equal(t, "/data/transcript.pdf", info.DocumentPath)
	assert.Equal(t, "abc123", info.Fingerprint)
	assert.Equal(t, "mxbai-embed-large", info.EmbeddingModel)
	assert.Equal(t, 3, info.Dimensions)
}

func TestReplace_RejectsMissingIdentity(t *testing.T) {
	store, _ := setupTestStore(t)

	err := store.Replace(context.Background(), driven.CorpusInfo{}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReplace_DropsPreviousCorpus(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Replace(ctx, testCorpus(), []domain.Chunk{
		{ID: "c1", Text: "hello", Embedding: []float32{1, 0, 0}},
	}))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	next := testCorpus()
	next.ID = "corpus-2"
	next.Fingerprint = "def456"
	require.NoError(t, store.Replace(ctx, next, nil))

	count, err = store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	info, err := store.Corpus(ctx)
	require.NoError(t, err)
	assert.Equal(t, "def456", info.Fingerprint)
}

func TestReplace_RejectsMissingEmbedding(t *testing.T) {
	store, _ := setupTestStore(t)

	err := store.Replace(context.Background(), testCorpus(),
		[]domain.Chunk{{ID: "c1", Text: "no vector"}})
	assert.Error(t, err)
}

// A failed swap must roll back: the previous corpus stays registered
// and its chunks remain searchable.
func TestReplace_KeepsPreviousCorpusOnFailure(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Replace(ctx, testCorpus(), []domain.Chunk{
		{ID: "old-chunk", Text: "refund approved", Embedding: []float32{1, 0, 0}},
	}))

	next := testCorpus()
	next.ID = "corpus-2"
	next.Fingerprint = "def456"
	err := store.Replace(ctx, next, []domain.Chunk{
		{ID: "new-1", Text: "first", Embedding: []float32{0, 1, 0}},
		{ID: "new-2", Text: "second"}, // no embedding, fails mid-batch
	})
	require.Error(t, err)

	info, err := store.Corpus(ctx)
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "abc123", info.Fingerprint)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	results, err := store.Search(ctx, []float32{1, 0, 0}, 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "old-chunk", results[0].Chunk.ID)
}

func TestSearch_NoCrossCorpusLeakage(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Replace(ctx, testCorpus(), []domain.Chunk{
		{ID: "doc-a-chunk", Text: "refund approved", Embedding: []float32{1, 0, 0}},
	}))

	next := testCorpus()
	next.ID = "corpus-2"
	next.Fingerprint = "def456"
	require.NoError(t, store.Replace(ctx, next, []domain.Chunk{
		{ID: "doc-b-chunk", Text: "shipping delayed", Embedding: []float32{0, 1, 0}},
	}))

	results, err := store.Search(ctx, []float32{1, 0, 0}, 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "doc-b-chunk", results[0].Chunk.ID)
}

func TestSearch_RanksByCosineSimilarity(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Replace(ctx, testCorpus(), []domain.Chunk{
		{ID: "near", Text: "very close", Position: 0, Embedding: []float32{1, 0.1, 0}},
		{ID: "far", Text: "orthogonal", Position: 1, Embedding: []float32{0, 0, 1}},
		{ID: "exact", Text: "identical", Position: 2, Embedding: []float32{1, 0, 0}},
	}))

	results, err := store.Search(ctx, []float32{1, 0, 0}, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "exact", results[0].Chunk.ID)
	assert.Equal(t, "near", results[1].Chunk.ID)
	assert.Greater(t, results[0].Score, results[1].Score)
	assert.InDelta(t, 1.0, results[0].Score, 1e-6)
}

func TestSearch_KLargerThanCorpus(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Replace(ctx, testCorpus(), []domain.Chunk{
		{ID: "only", Text: "lonely chunk", Embedding: []float32{1, 0, 0}},
	}))

	results, err := store.Search(ctx, []float32{1, 0, 0}, 10)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestSearch_EmptyStore(t *testing.T) {
	store, _ := setupTestStore(t)

	results, err := store.Search(context.Background(), []float32{1, 0, 0}, 4)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearch_ZeroK(t *testing.T) {
	store, _ := setupTestStore(t)

	results, err := store.Search(context.Background(), []float32{1}, 0)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearch_PreservesChunkFields(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Replace(ctx, testCorpus(), []domain.Chunk{
		{ID: "c1", Text: "the meeting opened at nine", Offset: 42, Position: 7,
			Embedding: []float32{0.5, 0.5, 0}},
	}))

	results, err := store.Search(ctx, []float32{0.5, 0.5, 0}, 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	got := results[0].Chunk
	assert.Equal(t, "the meeting opened at nine", got.Text)
	assert.Equal(t, 42, got.Offset)
	assert.Equal(t, 7, got.Position)
	assert.Equal(t, []float32{0.5, 0.5, 0}, got.Embedding)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	store, dir := setupTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Replace(ctx, testCorpus(), []domain.Chunk{
		{ID: "c1", Text: "remember me", Embedding: []float32{1, 0, 0}},
	}))
	require.NoError(t, store.Close())

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	info, err := reopened.Corpus(ctx)
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "abc123", info.Fingerprint)

	count, err := reopened.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestFloat32Roundtrip(t *testing.T) {
	original := []float32{0.1, -0.5, 3.14159, 0, 1e-7}
	assert.Equal(t, original, bytesToFloat32Slice(float32SliceToBytes(original)))
	assert.Nil(t, float32SliceToBytes(nil))
	assert.Nil(t, bytesToFloat32Slice(nil))
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, cosineSimilarity([]float32{1, 0}, []float32{2, 0}), 1e-9)
	assert.InDelta(t, 0.0, cosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, cosineSimilarity([]float32{1, 0}, []float32{-1, 0}), 1e-9)
	assert.Equal(t, 0.0, cosineSimilarity([]float32{1, 0}, []float32{1}))
	assert.Equal(t, 0.0, cosineSimilarity([]float32{0, 0}, []float32{1, 0}))
}
