package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/medibook/medibook/internal/server"
	"github.com/medibook/medibook/internal/server/config"
)

func main() {
	ctx := context.Background()

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
