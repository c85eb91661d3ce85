package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/axiome/firstprinciples-api/internal/config"
	"github.com/axiome/firstprinciples-api/internal/generation"
)

// validateConfig checks the settings NewGenerator needs before a client is created.
// A missing API key is a startup error, never a per-request one.
func validateConfig(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) error {
	if cfg.GeminiAPIKey == "" {
		logger.ErrorContext(ctx, "Missing Gemini API key",
			"error", "GeminiAPIKey is empty")
		return fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		logger.ErrorContext(ctx, "Missing model name",
			"error", "ModelName is empty")
		return fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.MaxOutputTokens <= 0 {
		logger.WarnContext(ctx, "Non-positive MaxOutputTokens value",
			"value", cfg.MaxOutputTokens)
		return fmt.Errorf("%w: max output tokens must be positive", generation.ErrInvalidConfig)
	}

	return nil
}
