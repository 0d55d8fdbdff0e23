package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/gametracker/internal/client/cli"
	"github.com/dmitrijs2005/gametracker/internal/client/config"
	"github.com/dmitrijs2005/gametracker/internal/logging"
)

func main() {
	cfg := config.LoadConfig()

	logger := logging.New(logging.Options{
		Backend: cfg.LogBackend,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.NewApp(cfg, logger)
	app.Run(ctx)
}
