// Package main is the entry point for Relicfield.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/samdwyer/relicfield/internal/game"
	"github.com/samdwyer/relicfield/internal/logger"
	"github.com/samdwyer/relicfield/internal/telemetry"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_RELICFIELD_API_KEY and RELICFIELD_* available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	seed := flag.Int64("seed", cfg.Seed, "world seed (0 picks a random seed)")
	tick := flag.Int("tick", cfg.TickRate, "frames per second")
	flag.Parse()

	cfg.Seed = *seed
	cfg.TickRate = *tick
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	cfg = cfg.Resolved()

	closeLog, err := logger.Init(logger.Options{})
	if err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer closeLog()

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx, telemetry.Session{ID: cfg.SessionID, Seed: cfg.Seed})
	if err != nil {
		logger.Log.WithError(err).Warn("telemetry setup failed, running without observability")
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Log.WithError(err).Error("telemetry shutdown failed")
			}
		}()
	}

	// Create and run game
	g, err := game.New(cfg)
	if err != nil {
		logger.Log.WithError(err).Error("failed to initialize game")
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		logger.Log.WithError(err).Error("game error")
		fmt.Fprintf(os.Stderr, "Game error: %v\n", err)
		os.Exit(1)
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Headers are built here rather than in .env, where an unexpanded
	// variable reference would not work
	apiKey := os.Getenv("HONEYCOMB_RELICFIELD_API_KEY")
	dataset := os.Getenv("HONEYCOMB_RELICFIELD_DATASET")
	if dataset == "" {
		dataset = "relicfield"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
