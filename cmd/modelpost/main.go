package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/latexnn/modelpost/internal/cliconfig"
)

func main() {
	log := cliconfig.Logger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(os.Stdout, log)
	if err := root.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("modelpost")
		stop()
		os.Exit(1)
	}
}
