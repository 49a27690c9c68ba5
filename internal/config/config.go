// Package config loads the scribe configuration from a TOML file and
// fills in defaults for anything the file leaves out.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Defaults applied when a setting is absent from the config file.
const (
	DefaultOllamaBaseURL  = "http://localhost:11434"
	DefaultLLMModel       = "llama3.2:3b"
	DefaultEmbeddingModel = "mxbai-embed-large"
	DefaultChunkSize      = 1000
	DefaultChunkOverlap   = 200
	DefaultTopK           = 4
	DefaultHTTPAddr       = ":8000"
	DefaultEmbedRPS       = 10.0
)

// DefaultGenerationTimeout bounds a single LLM generation call.
const DefaultGenerationTimeout = 120 * time.Second

// Config holds all runtime settings.
type Config struct {
	Document  DocumentConfig  `toml:"document"`
	Ollama    OllamaConfig    `toml:"ollama"`
	Index     IndexConfig     `toml:"index"`
	Retrieval RetrievalConfig `toml:"retrieval"`
	Server    ServerConfig    `toml:"server"`
}

// DocumentConfig identifies the transcript to index.
type DocumentConfig struct {
	// Path to the PDF or text transcript.
	Path string `toml:"path"`
	// Watch enables automatic reindexing when the file changes.
	Watch bool `toml:"watch"`
}

// OllamaConfig configures the local model server.
type OllamaConfig struct {
	BaseURL           string  `toml:"base_url"`
	LLMModel          string  `toml:"llm_model"`
	EmbeddingModel    string  `toml:"embedding_model"`
	GenerationTimeout int     `toml:"generation_timeout_seconds"`
	EmbedRPS          float64 `toml:"embed_requests_per_second"`
}

// IndexConfig configures chunking and persistence.
type IndexConfig struct {
	// DataDir holds the vector index database. Empty means
	// ~/.scribe/data.
	DataDir      string `toml:"data_dir"`
	ChunkSize    int    `toml:"chunk_size"`
	ChunkOverlap int    `toml:"chunk_overlap"`
}

// RetrievalConfig configures similarity search.
type RetrievalConfig struct {
	TopK int `toml:"top_k"`
	// MinScore drops chunks below this cosine similarity. Zero keeps
	// everything.
	MinScore float64 `toml:"min_score"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `toml:"addr"`
	// AllowedOrigins for CORS. Empty allows any origin.
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Default returns a Config with every default applied and no document
// configured.
func Default() *Config {
	return &Config{
		Ollama: OllamaConfig{
			BaseURL:           DefaultOllamaBaseURL,
			LLMModel:          DefaultLLMModel,
			EmbeddingModel:    DefaultEmbeddingModel,
			GenerationTimeout: int(DefaultGenerationTimeout.Seconds()),
			EmbedRPS:          DefaultEmbedRPS,
		},
		Index: IndexConfig{
			ChunkSize:    DefaultChunkSize,
			ChunkOverlap: DefaultChunkOverlap,
		},
		Retrieval: RetrievalConfig{
			TopK: DefaultTopK,
		},
		Server: ServerConfig{
			Addr: DefaultHTTPAddr,
		},
	}
}

// DefaultPath returns the default config file location,
// ~/.scribe/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".scribe", "config.toml"), nil
}

// Load reads the config file at path. A missing file yields the
// defaults; a malformed file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults fills zero values left by a partial config file.
func (c *Config) applyDefaults() {
	if c.Ollama.BaseURL == "" {
		c.Ollama.BaseURL = DefaultOllamaBaseURL
	}
	if c.Ollama.LLMModel == "" {
		c.Ollama.LLMModel = DefaultLLMModel
	}
	if c.Ollama.EmbeddingModel == "" {
		c.Ollama.EmbeddingModel = DefaultEmbeddingModel
	}
	if c.Ollama.GenerationTimeout <= 0 {
		c.Ollama.GenerationTimeout = int(DefaultGenerationTimeout.Seconds())
	}
	if c.Ollama.EmbedRPS == 0 {
		c.Ollama.EmbedRPS = DefaultEmbedRPS
	}
	if c.Index.ChunkSize <= 0 {
		c.Index.ChunkSize = DefaultChunkSize
	}
	if c.Index.ChunkOverlap <= 0 {
		c.Index.ChunkOverlap = DefaultChunkOverlap
	}
	if c.Retrieval.TopK <= 0 {
		c.Retrieval.TopK = DefaultTopK
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultHTTPAddr
	}
}

// Validate rejects settings that cannot work.
func (c *Config) Validate() error {
	if c.Index.ChunkOverlap >= c.Index.ChunkSize {
		return fmt.Errorf("chunk_overlap (%d) must be smaller than chunk_size (%d)",
			c.Index.ChunkOverlap, c.Index.ChunkSize)
	}
	if c.Retrieval.MinScore < 0 || c.Retrieval.MinScore > 1 {
		return fmt.Errorf("min_score must be between 0 and 1, got %g", c.Retrieval.MinScore)
	}
	return nil
}

// GenerationTimeout returns the generation timeout as a duration.
func (c *Config) GenerationTimeout() time.Duration {
	return time.Duration(c.Ollama.GenerationTimeout) * time.Second
}
