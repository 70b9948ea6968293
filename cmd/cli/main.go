package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/projectboard/internal/buildinfo"
	"github.com/dmitrijs2005/projectboard/internal/client/cli"
	"github.com/dmitrijs2005/projectboard/internal/client/config"
	"github.com/dmitrijs2005/projectboard/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig(os.Args[1:])
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "failed to start", "err", err)
		os.Exit(1)
	}

	runErr := app.Run(ctx)
	if err := app.Close(); err != nil {
		logger.Error(ctx, "failed to close the token store", "err", err)
	}
	if runErr != nil {
		logger.Error(ctx, "session failed", "err", runErr)
		os.Exit(1)
	}
}
