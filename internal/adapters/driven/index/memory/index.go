// Package memory provides an ephemeral in-memory vector store for
// tests and throwaway sessions; nothing survives process exit.
package memory

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/halcyon-labs/scribe-cli/internal/core/domain"
	"github.com/halcyon-labs/scribe-cli/internal/core/ports/driven"
)

var _ driven.VectorStore = (*Index)(nil)

// Index is an in-memory vector store.
type Index struct {
	mu     sync.RWMutex
	corpus *driven.CorpusInfo
	chunks []domain.Chunk
}

// NewIndex creates an empty in-memory vector store.
func NewIndex() *Index {
	return &Index{}
}

func (idx *Index) Corpus(_ context.Context) (*driven.CorpusInfo, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	if idx.corpus == nil {
		return nil, nil
	}
	info := *idx.corpus
	return &info, nil
}

// Replace swaps the corpus and chunks under one lock. Validation runs
// before any mutation, so a failed call leaves the previous corpus
// intact.
func (idx *Index) Replace(_ context.Context, info driven.CorpusInfo, chunks []domain.Chunk) error {
	if info.ID == "" || info.Fingerprint == "" {
		return domain.ErrInvalidInput
	}
	for _, chunk := range chunks {
		if len(chunk.Embedding) == 0 {
			return fmt.Errorf("chunk %s has no embedding", chunk.ID)
		}
	}
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.corpus = &info
	idx.chunks = append([]domain.Chunk(nil), chunks...)
	return nil
}

func (idx *Index) Search(_ context.Context, query []float32, k int) ([]domain.RetrievedChunk, error) {
	if k <= 0 {
		return []domain.RetrievedChunk{}, nil
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	results := make([]domain.RetrievedChunk, 0, len(idx.chunks))
	for _, chunk := range idx.chunks {
		results = append(results, domain.RetrievedChunk{
			Chunk: chunk,
			Score: cosineSimilarity(query, chunk.Embedding),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > k {
		results = results[:k]
	}
	return results, nil
}

func (idx *Index) Count(_ context.Context) (int, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.chunks), nil
}

func (idx *Index) Close() error {
	return nil
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
