package explain_test

import (
	"context"
	"testing"

	"github.com/axiome/firstprinciples-api/internal/config"
	"github.com/axiome/firstprinciples-api/internal/domain"
	"github.com/axiome/firstprinciples-api/internal/explain"
	"github.com/axiome/firstprinciples-api/internal/generation"
	"github.com/axiome/firstprinciples-api/internal/mocks"
	"github.com/axiome/firstprinciples-api/internal/platform/logger"
	"github.com/axiome/firstprinciples-api/internal/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerationConfig(t *testing.T) {
	t.Parallel()

	llm := config.LLMConfig{
		GeminiAPIKey:    "key",
		ModelName:       "gemini-2.0-flash",
		Temperature:     0.1,
		MaxOutputTokens: 8192,
		EnforceSchema:   true,
	}

	cfg := explain.GenerationConfig(llm)

	assert.Equal(t, "gemini-2.0-flash", cfg.Model)
	assert.InDelta(t, 0.1, cfg.Temperature, 1e-6)
	assert.Equal(t, int32(8192), cfg.MaxOutputTokens)
	assert.Equal(t, generation.MIMETypeJSON, cfg.ResponseMIMEType)
	assert.Equal(t, prompt.SystemInstruction, cfg.SystemInstruction)
	require.NotNil(t, cfg.ResponseSchema)
	assert.Equal(t, domain.RequiredFields(), cfg.ResponseSchema.Required)
	assert.NoError(t, cfg.Validate())

	llm.EnforceSchema = false
	llm.SystemInstruction = "Answer tersely."
	cfg = explain.GenerationConfig(llm)
	assert.Nil(t, cfg.ResponseSchema)
	assert.Equal(t, "Answer tersely.", cfg.SystemInstruction)
}

func TestOptions_StrictFields(t *testing.T) {
	t.Parallel()

	partial := `{"concept_name":"Graph"}`
	l, _ := logger.NewTestLogger()
	llm := config.LLMConfig{ModelName: "m", Temperature: 0.1, MaxOutputTokens: 10}

	lenient, err := explain.NewService(mocks.NewMockTextGeneratorWithText(partial), explain.GenerationConfig(llm), l, explain.Options(llm)...)
	require.NoError(t, err)
	assert.True(t, lenient.Explain(context.Background(), "Graph").OK())

	llm.StrictFields = true
	strict, err := explain.NewService(mocks.NewMockTextGeneratorWithText(partial), explain.GenerationConfig(llm), l, explain.Options(llm)...)
	require.NoError(t, err)
	env := strict.Explain(context.Background(), "Graph")
	require.NotNil(t, env.Failure)
	assert.Equal(t, explain.KindIncompleteResponse, env.Failure.Kind)
}
