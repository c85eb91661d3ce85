package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/axiome/firstprinciples-api/internal/config"
	"github.com/axiome/firstprinciples-api/internal/generation"
	"google.golang.org/genai"
)

// contentGenerator is the subset of the genai client used by Generator.
// *genai.Models satisfies it; tests substitute a fake.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// Generator implements the generation.TextGenerator interface using
// Google's Gemini API.
type Generator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// models issues GenerateContent requests
	models contentGenerator
}

var _ generation.TextGenerator = (*Generator)(nil)

// NewGenerator creates a Generator with a Gemini API client authenticated by
// the configured API key.
//
// Parameters:
//   - ctx: Context for client initialization
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing the API key and model settings
//
// Returns:
//   - A properly initialized Generator or an error if initialization fails
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if err := validateConfig(ctx, logger, cfg); err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	logger.InfoContext(ctx, "Gemini generator initialized", "model", cfg.ModelName)

	return newGenerator(logger, client.Models), nil
}

func newGenerator(logger *slog.Logger, models contentGenerator) *Generator {
	return &Generator{
		logger: logger,
		models: models,
	}
}

// Generate sends prompt to the configured Gemini model and returns the text
// of the first candidate.
//
// Errors wrap a generation sentinel: API, network and context failures are
// classified by classifyError, safety blocks are generation.ErrContentBlocked
// and responses without text are generation.ErrEmptyResponse.
func (g *Generator) Generate(ctx context.Context, prompt string, cfg generation.Config) (string, error) {
	if prompt == "" {
		return "", fmt.Errorf("%w: %v", generation.ErrInvalidArgument, ErrEmptyPrompt)
	}

	g.logger.DebugContext(ctx, "Making Gemini API call",
		"model", cfg.Model,
		"prompt_length", len(prompt),
		"schema_enforced", cfg.ResponseSchema != nil)

	resp, err := g.models.GenerateContent(ctx, cfg.Model, genai.Text(prompt), toGenAIConfig(cfg))
	if err != nil {
		classified := classifyError(err)
		g.logger.ErrorContext(ctx, "Gemini API call error",
			"reason", string(generation.ClassifyFailure(classified)))
		return "", classified
	}

	text, err := extractText(resp)
	if err != nil {
		g.logger.WarnContext(ctx, "Gemini API returned no usable text", "error", err)
		return "", err
	}

	g.logger.DebugContext(ctx, "Gemini API call successful",
		"response_length", len(text),
		"finish_reason", string(resp.Candidates[0].FinishReason))

	return text, nil
}

// extractText returns the concatenated text parts of the first candidate.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrEmptyResponse)
	}

	if len(resp.Candidates) == 0 {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("%w: prompt blocked: %s",
				generation.ErrContentBlocked, resp.PromptFeedback.BlockReason)
		}
		return "", fmt.Errorf("%w: no candidates in response", generation.ErrEmptyResponse)
	}

	candidate := resp.Candidates[0]
	if candidate == nil {
		return "", fmt.Errorf("%w: nil candidate", generation.ErrEmptyResponse)
	}

	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: content blocked by safety filters", generation.ErrContentBlocked)
	}

	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrEmptyResponse)
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}

	if b.Len() == 0 {
		return "", fmt.Errorf("%w: response has no text parts", generation.ErrEmptyResponse)
	}

	return b.String(), nil
}
