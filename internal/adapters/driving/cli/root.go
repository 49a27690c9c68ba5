// Package cli wires the scribe commands. Each command builds the
// service stack from configuration, so the binary stays a thin shell
// around the core services.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/halcyon-labs/scribe-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	flagConfig   string
	flagDocument string
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "scribe",
	Short: "Ask questions about a chat transcript",
	Long: `Scribe indexes a single chat transcript (PDF or plain text) with a
local model server and answers questions grounded strictly in the
transcript content.

Point it at a document once, then ask away:

  scribe reindex --document transcript.pdf
  scribe ask "what did the client complain about?"
  scribe chat
  scribe serve`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default ~/.scribe/config.toml)")
	rootCmd.PersistentFlags().StringVar(&flagDocument, "document", "", "transcript to index (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context so
// long-running commands stop on SIGINT/SIGTERM.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
