package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/axiome/firstprinciples-api/internal/config"
	"github.com/axiome/firstprinciples-api/internal/explain"
	"github.com/axiome/firstprinciples-api/internal/generation"
)

// application holds all the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	explainer *explain.Service
}

// newApplication creates a new application instance with all dependencies initialized.
// The generator is created by the caller so tests can inject a fake provider.
func newApplication(cfg *config.Config, logger *slog.Logger, generator generation.TextGenerator) (*application, error) {
	genCfg := explain.GenerationConfig(cfg.LLM)

	svc, err := explain.NewService(
		generator,
		genCfg,
		logger.With(slog.String("component", "explain_service")),
		explain.Options(cfg.LLM)...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create explain service: %w", err)
	}

	logger.Info("Application initialized successfully",
		"model", genCfg.Model,
		"schema_enforced", genCfg.ResponseSchema != nil,
		"strict_fields", cfg.LLM.StrictFields)

	return &application{
		config:    cfg,
		logger:    logger,
		explainer: svc,
	}, nil
}

// Run starts the application server and blocks until ctx is canceled or the
// server fails.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
