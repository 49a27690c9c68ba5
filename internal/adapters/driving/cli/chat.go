package cli

import (
	"github.com/spf13/cobra"

	"github.com/halcyon-labs/scribe-cli/internal/adapters/driving/chat"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat about the transcript",
	Long: `Open an interactive terminal session for asking questions about the
transcript. Type a question and press enter; type "exit" or "quit"
(or press esc) to leave.`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()

	if err := a.checkOllama(ctx); err != nil {
		return err
	}

	cmd.Println("Preparing index...")
	if err := a.analyst.Rebuild(ctx); err != nil {
		return err
	}

	return chat.Run(ctx, a.analyst)
}
