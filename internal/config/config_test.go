package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultOllamaBaseURL, cfg.Ollama.BaseURL)
	assert.Equal(t, DefaultLLMModel, cfg.Ollama.LLMModel)
	assert.Equal(t, DefaultEmbeddingModel, cfg.Ollama.EmbeddingModel)
	assert.Equal(t, DefaultChunkSize, cfg.Index.ChunkSize)
	assert.Equal(t, DefaultChunkOverlap, cfg.Index.ChunkOverlap)
	assert.Equal(t, DefaultTopK, cfg.Retrieval.TopK)
	assert.Equal(t, DefaultHTTPAddr, cfg.Server.Addr)
	assert.Equal(t, DefaultGenerationTimeout, cfg.GenerationTimeout())
}

func TestLoad_FullFile(t *testing.T) {
	path := writeConfig(t, `
[document]
path = "/data/meeting.pdf"
watch = true

[ollama]
base_url = "http://models.local:11434"
llm_model = "llama3.1:8b"
embedding_model = "nomic-embed-text"
generation_timeout_seconds = 30

[index]
data_dir = "/var/lib/scribe"
chunk_size = 500
chunk_overlap = 50

[retrieval]
top_k = 8
min_score = 0.25

[server]
addr = ":9090"
allowed_origins = ["http://localhost:3000"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/meeting.pdf", cfg.Document.Path)
	assert.True(t, cfg.Document.Watch)
	assert.Equal(t, "http://models.local:11434", cfg.Ollama.BaseURL)
	assert.Equal(t, "llama3.1:8b", cfg.Ollama.LLMModel)
	assert.Equal(t, "nomic-embed-text", cfg.Ollama.EmbeddingModel)
	assert.Equal(t, 30*time.Second, cfg.GenerationTimeout())
	assert.Equal(t, "/var/lib/scribe", cfg.Index.DataDir)
	assert.Equal(t, 500, cfg.Index.ChunkSize)
	assert.Equal(t, 50, cfg.Index.ChunkOverlap)
	assert.Equal(t, 8, cfg.Retrieval.TopK)
	assert.Equal(t, 0.25, cfg.Retrieval.MinScore)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
[document]
path = "/data/meeting.pdf"

[retrieval]
top_k = 2
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/meeting.pdf", cfg.Document.Path)
	assert.Equal(t, 2, cfg.Retrieval.TopK)
	assert.Equal(t, DefaultChunkSize, cfg.Index.ChunkSize)
	assert.Equal(t, DefaultOllamaBaseURL, cfg.Ollama.BaseURL)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, `[document
path =`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_OverlapMustBeSmallerThanChunkSize(t *testing.T) {
	path := writeConfig(t, `
[index]
chunk_size = 100
chunk_overlap = 100
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chunk_overlap")
}

func TestLoad_MinScoreOutOfRange(t *testing.T) {
	path := writeConfig(t, `
[retrieval]
min_score = 1.5
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min_score")
}
