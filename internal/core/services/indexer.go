package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/halcyon-labs/scribe-cli/internal/chunker"
	"github.com/halcyon-labs/scribe-cli/internal/core/domain"
	"github.com/halcyon-labs/scribe-cli/internal/core/ports/driven"
	"github.com/halcyon-labs/scribe-cli/internal/logger"
)

// IndexerService builds the vector index for a single document:
// load, chunk, embed, persist. A corpus whose document fingerprint
// and embedding model both match the stored corpus is reused without
// re-embedding.
type IndexerService struct {
	loader   driven.DocumentLoader
	splitter *chunker.Chunker
	embedder driven.EmbeddingService
	store    driven.VectorStore
}

// NewIndexerService creates a new indexer service.
func NewIndexerService(
	loader driven.DocumentLoader,
	splitter *chunker.Chunker,
	embedder driven.EmbeddingService,
	store driven.VectorStore,
) *IndexerService {
	return &IndexerService{
		loader:   loader,
		splitter: splitter,
		embedder: embedder,
		store:    store,
	}
}

// Build indexes the document at path. When force is false and the
// stored corpus already matches the document fingerprint and the
// embedding model, the existing index is kept and Reused is set.
func (s *IndexerService) Build(ctx context.Context, path string, force bool) (*domain.IndexStats, error) {
	logger.Section("Index Build")
	logger.Info("Document: %s", path)

	doc, err := s.loader.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	logger.Debug("Loaded %d page(s), fingerprint %.12s", len(doc.Pages), doc.Fingerprint)

	model := s.embedder.ModelName()

	if !force {
		existing, err := s.store.Corpus(ctx)
		if err != nil {
			return nil, fmt.Errorf("read corpus: %w", err)
		}
		if existing != nil &&
			existing.DocumentPath == doc.Path &&
			existing.Fingerprint == doc.Fingerprint &&
			existing.EmbeddingModel == model {
			count, err := s.store.Count(ctx)
			if err != nil {
				return nil, fmt.Errorf("count chunks: %w", err)
			}
			logger.Info("Index up to date (%d chunks), reusing", count)
			return &domain.IndexStats{
				DocumentPath: doc.Path,
				Fingerprint:  doc.Fingerprint,
				Chunks:       count,
				Dimensions:   existing.Dimensions,
				Reused:       true,
			}, nil
		}
	}

	chunks := s.splitter.Split(doc)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmptyDocument, doc.Path)
	}
	logger.Info("Split into %d chunks", len(chunks))

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Text
	}

	embeddings, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embed chunks: %w", err)
	}
	if len(embeddings) != len(chunks) {
		return nil, fmt.Errorf("embedding count mismatch: %d chunks, %d vectors",
			len(chunks), len(embeddings))
	}
	for i := range chunks {
		chunks[i].Embedding = embeddings[i]
	}

	dimensions := len(embeddings[0])
	logger.Debug("Embeddings: %d vectors x %d dimensions", len(embeddings), dimensions)

	info := driven.CorpusInfo{
		ID:             uuid.New().String(),
		DocumentPath:   doc.Path,
		Fingerprint:    doc.Fingerprint,
		EmbeddingModel: model,
		Dimensions:     dimensions,
	}
	// Single atomic swap: a failure here leaves the previous corpus
	// in place, so the service can keep answering from it.
	if err := s.store.Replace(ctx, info, chunks); err != nil {
		return nil, fmt.Errorf("store corpus: %w", err)
	}

	logger.Info("Indexed %d chunks", len(chunks))

	return &domain.IndexStats{
		DocumentPath: doc.Path,
		Fingerprint:  doc.Fingerprint,
		Chunks:       len(chunks),
		Dimensions:   dimensions,
		Reused:       false,
	}, nil
}
