package main

import (
	"log"

	"github.com/ironloft/gymd/internal/gym/app"

	"github.com/joho/godotenv"
)

func main() {
	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

	cfg := app.LoadConfig()
	if cfg.Secret == "" {
		log.Fatal("GYM_SECRET must be set")
	}

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
