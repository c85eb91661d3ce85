// Package main implements the entry point for the First Principles API
// server, which explains graph-algorithm concepts by prompting Gemini for a
// structured answer.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/axiome/firstprinciples-api/internal/platform/gemini"
)

// main is the entry point for the server.
// It initializes configuration, sets up logging, creates the Gemini client,
// injects dependencies and starts the HTTP server.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func run(ctx context.Context) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	generator, err := gemini.NewGenerator(
		ctx,
		logger.With(slog.String("component", "llm_generator")),
		cfg.LLM,
	)
	if err != nil {
		return fmt.Errorf("failed to initialize LLM generator: %w", err)
	}

	app, err := newApplication(cfg, logger, generator)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
