package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/axiome/firstprinciples-api/internal/config"
	"github.com/axiome/firstprinciples-api/internal/explain"
	"github.com/axiome/firstprinciples-api/internal/generation"
	"github.com/axiome/firstprinciples-api/internal/platform/gemini"
	"github.com/axiome/firstprinciples-api/internal/platform/logger"
	"github.com/spf13/cobra"
)

// errExplainFailed is returned after an error envelope has been printed.
var errExplainFailed = errors.New("explanation failed")

// generatorFactory creates the provider client from the loaded settings.
type generatorFactory func(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (generation.TextGenerator, error)

func newGeminiGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (generation.TextGenerator, error) {
	return gemini.NewGenerator(ctx, logger, cfg)
}

// rootFlags holds the command line overrides.
type rootFlags struct {
	configFile string
	model      string
	strict     bool
	timeout    time.Duration
}

func newRootCmd(newGenerator generatorFactory) *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "explain <topic...>",
		Short: "Explain a graph-algorithm concept using Gemini",
		Long: "Builds the tutor prompt for the given topic, sends it to the configured " +
			"Gemini model and prints the response envelope as JSON.",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplain(cmd, newGenerator, flags, strings.Join(args, " "))
		},
	}

	cmd.Flags().StringVarP(&flags.configFile, "config", "c", "", "Config file (defaults to ./config.yaml when present)")
	cmd.Flags().StringVarP(&flags.model, "model", "m", "", "Override the configured model name")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "Reject answers missing required fields")
	cmd.Flags().DurationVarP(&flags.timeout, "timeout", "t", 0, "Abort the model call after this duration (0 disables)")

	return cmd
}

func runExplain(cmd *cobra.Command, newGenerator generatorFactory, flags rootFlags, topic string) error {
	cfg, err := config.LoadWithOptions(config.LoadOptions{
		ConfigFile: flags.configFile,
		DotEnvFile: ".env",
	})
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if flags.model != "" {
		cfg.LLM.ModelName = flags.model
	}
	if flags.strict {
		cfg.LLM.StrictFields = true
	}

	log, err := logger.Setup(logger.LoggerConfig{
		Level:  cfg.Server.LogLevel,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	generator, err := newGenerator(ctx, log.With(slog.String("component", "llm_generator")), cfg.LLM)
	if err != nil {
		return fmt.Errorf("failed to initialize LLM generator: %w", err)
	}

	svc, err := explain.NewService(
		generator,
		explain.GenerationConfig(cfg.LLM),
		log.With(slog.String("component", "explain_service")),
		explain.Options(cfg.LLM)...,
	)
	if err != nil {
		return fmt.Errorf("failed to create explain service: %w", err)
	}

	if flags.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flags.timeout)
		defer cancel()
	}

	env := svc.Explain(ctx, topic)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(env); err != nil {
		return fmt.Errorf("failed to write envelope: %w", err)
	}

	if !env.OK() {
		return errExplainFailed
	}
	return nil
}
