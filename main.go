package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fivemoreminix/ameliaview/cli"
	"github.com/fivemoreminix/ameliaview/internal/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cli.Run(ctx, os.Exit, os.Args[1:]...)
	if err != nil {
		logger := log.Base()
		logger.Error().Err(err).Msg("run failed")
		stop()
		os.Exit(1)
	}
}
