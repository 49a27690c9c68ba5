package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	embedollama "github.com/halcyon-labs/scribe-cli/internal/adapters/driven/embedding/ollama"
	"github.com/halcyon-labs/scribe-cli/internal/adapters/driven/index/sqlite"
	llmollama "github.com/halcyon-labs/scribe-cli/internal/adapters/driven/llm/ollama"
	"github.com/halcyon-labs/scribe-cli/internal/chunker"
	"github.com/halcyon-labs/scribe-cli/internal/config"
	"github.com/halcyon-labs/scribe-cli/internal/core/services"
	"github.com/halcyon-labs/scribe-cli/internal/loader"
)

// app holds a fully wired service stack for one command invocation.
type app struct {
	cfg      *config.Config
	analyst  *services.AnalystService
	embedder *embedollama.EmbeddingService
	llm      *llmollama.LLMService
	store    *sqlite.Store
}

// loadConfig resolves the config file path from the flag or default
// location and reads it.
func loadConfig() (*config.Config, error) {
	path := flagConfig
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if flagDocument != "" {
		cfg.Document.Path = flagDocument
	}
	return cfg, nil
}

// buildApp wires the full stack from configuration. The document path
// must be set either in the config file or with --document.
func buildApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	docPath := strings.TrimSpace(cfg.Document.Path)
	if docPath == "" {
		return nil, errors.New("no transcript configured: set document.path in the config file or pass --document")
	}

	docLoader, err := loader.ForPath(docPath)
	if err != nil {
		return nil, err
	}

	embedder := embedollama.NewEmbeddingService(embedollama.Config{
		BaseURL:           cfg.Ollama.BaseURL,
		Model:             cfg.Ollama.EmbeddingModel,
		RequestsPerSecond: cfg.Ollama.EmbedRPS,
	})

	llm := llmollama.NewLLMService(llmollama.LLMConfig{
		BaseURL: cfg.Ollama.BaseURL,
		Model:   cfg.Ollama.LLMModel,
		Timeout: cfg.GenerationTimeout(),
	})

	store, err := sqlite.NewStore(cfg.Index.DataDir)
	if err != nil {
		return nil, fmt.Errorf("opening vector store: %w", err)
	}

	splitter := chunker.New(
		chunker.WithChunkSize(cfg.Index.ChunkSize),
		chunker.WithOverlap(cfg.Index.ChunkOverlap),
	)

	indexer := services.NewIndexerService(docLoader, splitter, embedder, store)
	retriever := services.NewRetrieverService(embedder, store, cfg.Retrieval.TopK, cfg.Retrieval.MinScore)
	answerer := services.NewAnswererService(llm)

	return &app{
		cfg:      cfg,
		analyst:  services.NewAnalystService(indexer, retriever, answerer, docPath),
		embedder: embedder,
		llm:      llm,
		store:    store,
	}, nil
}

// checkOllama verifies the model server answers before committing to
// an index build, so a dead server fails fast with a precise cause
// instead of partway through embedding.
func (a *app) checkOllama(ctx context.Context) error {
	if err := a.embedder.Ping(ctx); err != nil {
		return fmt.Errorf("ollama not reachable at %s (is it running?): %w", a.cfg.Ollama.BaseURL, err)
	}
	if err := a.llm.Ping(ctx); err != nil {
		return fmt.Errorf("ollama not reachable at %s (is it running?): %w", a.cfg.Ollama.BaseURL, err)
	}
	return nil
}

// Close releases the app's resources.
func (a *app) Close() {
	a.embedder.Close() //nolint:errcheck
	a.llm.Close()      //nolint:errcheck
	a.store.Close()    //nolint:errcheck
}
