package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/gametracker/internal/logging"
	"github.com/dmitrijs2005/gametracker/internal/server"
	"github.com/dmitrijs2005/gametracker/internal/server/config"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.New(logging.Options{
		Backend: cfg.LogBackend,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
	}
}
