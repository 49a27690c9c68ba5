package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a single question about the transcript",
	Long: `Ask one question and print the grounded answer.

The index is built on first use and reused across invocations as long
as the transcript has not changed.

Example:
  scribe ask "what discount did the CSR offer?"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

var askShowContext bool

func init() {
	askCmd.Flags().BoolVar(&askShowContext, "show-context", false, "print the retrieved excerpts under the answer")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	if err := a.checkOllama(ctx); err != nil {
		return err
	}
	if err := a.analyst.Rebuild(ctx); err != nil {
		return err
	}

	question := strings.Join(args, " ")
	answer, err := a.analyst.Ask(ctx, question)
	if err != nil {
		return err
	}

	cmd.Println(answer.Text)

	if askShowContext && len(answer.Context) > 0 {
		cmd.Println("\n--- Retrieved Contexts ---")
		for i, rc := range answer.Context {
			text := rc.Chunk.Text
			if runes := []rune(text); len(runes) > 200 {
				text = string(runes[:200]) + "..."
			}
			cmd.Printf("[%d] (score %.3f) %s\n", i+1, rc.Score, text)
		}
	}

	return nil
}
