package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/halcyon-labs/scribe-cli/internal/adapters/driving/cli"
	"github.com/halcyon-labs/scribe-cli/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.ExecuteContext(ctx); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}
