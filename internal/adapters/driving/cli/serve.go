package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/halcyon-labs/scribe-cli/internal/adapters/driving/httpapi"
	"github.com/halcyon-labs/scribe-cli/internal/logger"
	"github.com/halcyon-labs/scribe-cli/internal/watch"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the query API over HTTP",
	Long: `Build the index, then serve the chat page and the JSON query API.

Endpoints:
  GET  /          chat page
  GET  /healthz   readiness (503 until the index is built)
  POST /query     {"query": "..."} -> {"answer", "sources", "context_snippets"}

The index is rebuilt automatically when the transcript file changes if
document.watch is enabled in the config.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config, default :8000)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()

	// A failed initial build is fatal: the server is useless without
	// an index and the operator should see the cause immediately.
	if err := a.checkOllama(ctx); err != nil {
		return err
	}
	if err := a.analyst.Rebuild(ctx); err != nil {
		return fmt.Errorf("initial index build failed (is the model server running?): %w", err)
	}
	stats := a.analyst.Stats()
	logger.Info("Serving %s (%d chunks)", stats.DocumentPath, stats.Chunks)

	addr := a.cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	server := httpapi.NewServer(a.analyst, httpapi.Options{
		Addr:           addr,
		AllowedOrigins: a.cfg.Server.AllowedOrigins,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Run(gctx)
	})

	if a.cfg.Document.Watch {
		watcher, err := watch.New(a.analyst, a.cfg.Document.Path, 0)
		if err != nil {
			return fmt.Errorf("starting document watcher: %w", err)
		}
		g.Go(func() error {
			err := watcher.Run(gctx)
			if err == gctx.Err() {
				return nil
			}
			return err
		})
	}

	cmd.Printf("Listening on %s\n", addr)
	return g.Wait()
}
