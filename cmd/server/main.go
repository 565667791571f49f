// Command server runs the FinChat HTTP API.
//
// Configuration is read from config.yaml and environment variables;
// a .env file in the working directory is loaded if present.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/finchat/finchat-backend/internal/app"
)

func main() {
	// Ignore the error: a missing .env is fine outside local dev.
	godotenv.Load() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
