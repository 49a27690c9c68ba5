// Package httpapi exposes the transcript analyst over HTTP. It
// serves a minimal chat page at the root and a JSON query endpoint
// for programmatic access.
package httpapi

import (
	"context"
	"embed"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/halcyon-labs/scribe-cli/internal/core/domain"
	"github.com/halcyon-labs/scribe-cli/internal/core/ports/driving"
	"github.com/halcyon-labs/scribe-cli/internal/logger"
)

//go:embed web/index.html
var webFS embed.FS

// Server serves the query API.
type Server struct {
	analyst driving.Analyst
	engine  *gin.Engine
	addr    string
}

// Options configures the HTTP server.
type Options struct {
	Addr string
	// AllowedOrigins for CORS. Empty allows any origin, matching a
	// chat page opened straight from disk.
	AllowedOrigins []string
}

// NewServer creates the HTTP server for the given analyst.
func NewServer(analyst driving.Analyst, opts Options) *Server {
	if opts.Addr == "" {
		opts.Addr = ":8000"
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(opts.AllowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = opts.AllowedOrigins
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Content-Type"}
	engine.Use(cors.New(corsCfg))

	s := &Server{
		analyst: analyst,
		engine:  engine,
		addr:    opts.Addr,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.GET("/", s.chatPage)
	s.engine.GET("/healthz", s.health)
	s.engine.POST("/query", s.query)
}

// Handler returns the underlying HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP API listening on %s", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		<-errCh
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) chatPage(c *gin.Context) {
	page, err := webFS.ReadFile("web/index.html")
	if err != nil {
		c.String(http.StatusInternalServerError, "chat page unavailable")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

type healthResponse struct {
	Status string `json:"status"`
	State  string `json:"state"`
	Chunks int    `json:"chunks"`
}

func (s *Server) health(c *gin.Context) {
	state := s.analyst.State()
	resp := healthResponse{
		State:  state.String(),
		Chunks: s.analyst.Stats().Chunks,
	}
	if state == domain.StateReady {
		resp.Status = "ok"
		c.JSON(http.StatusOK, resp)
		return
	}
	resp.Status = "unavailable"
	c.JSON(http.StatusServiceUnavailable, resp)
}

type queryRequest struct {
	Query string `json:"query"`
}

type queryResponse struct {
	Answer          string   `json:"answer"`
	Sources         []string `json:"sources"`
	ContextSnippets []string `json:"context_snippets"`
}

func (s *Server) query(c *gin.Context) {
	var req queryRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body must be JSON with a non-empty \"query\" field"})
		return
	}

	answer, err := s.analyst.Ask(c.Request.Context(), strings.TrimSpace(req.Query))
	if err != nil {
		status, msg := statusForError(err)
		logger.Warn("Query failed (%d): %v", status, err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	snippets := make([]string, len(answer.Context))
	for i, rc := range answer.Context {
		snippets[i] = snippet(rc.Chunk.Text)
	}

	c.JSON(http.StatusOK, queryResponse{
		Answer:          answer.Text,
		Sources:         answer.Sources,
		ContextSnippets: snippets,
	})
}

// snippetLength bounds the context excerpts echoed back to clients.
const snippetLength = 200

func snippet(text string) string {
	runes := []rune(text)
	if len(runes) <= snippetLength {
		return text
	}
	return string(runes[:snippetLength]) + "..."
}

// statusForError maps domain errors to HTTP status codes and
// user-facing guidance.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNotReady):
		return http.StatusServiceUnavailable, "the index has not been built yet; retry shortly"
	case errors.Is(err, domain.ErrIndexing):
		return http.StatusServiceUnavailable, "the index is being rebuilt; retry shortly"
	case errors.Is(err, domain.ErrEmbeddingModelMissing):
		return http.StatusServiceUnavailable, "the embedding model is not installed; pull it with ollama"
	case errors.Is(err, domain.ErrEmbeddingUnavailable),
		errors.Is(err, domain.ErrGenerationUnavailable):
		return http.StatusServiceUnavailable, "could not reach the model server; ensure the local model service is running"
	case errors.Is(err, domain.ErrGenerationTimeout):
		return http.StatusGatewayTimeout, "answer generation timed out; try a simpler question"
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, "invalid question"
	default:
		return http.StatusInternalServerError, "internal error processing the question"
	}
}
