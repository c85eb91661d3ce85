package explain

import (
	"github.com/axiome/firstprinciples-api/internal/config"
	"github.com/axiome/firstprinciples-api/internal/generation"
	"github.com/axiome/firstprinciples-api/internal/prompt"
)

// GenerationConfig derives the fixed generation configuration from the LLM settings.
func GenerationConfig(llm config.LLMConfig) generation.Config {
	cfg := generation.Config{
		Model:             llm.ModelName,
		Temperature:       llm.Temperature,
		MaxOutputTokens:   llm.MaxOutputTokens,
		ResponseMIMEType:  generation.MIMETypeJSON,
		SystemInstruction: prompt.SystemInstruction,
	}
	if llm.SystemInstruction != "" {
		cfg.SystemInstruction = llm.SystemInstruction
	}
	if llm.EnforceSchema {
		cfg.ResponseSchema = prompt.ResponseSchema()
	}
	return cfg
}

// Options derives the Service options from the LLM settings.
func Options(llm config.LLMConfig) []Option {
	var opts []Option
	if llm.StrictFields {
		opts = append(opts, WithStrictFields())
	}
	return opts
}
