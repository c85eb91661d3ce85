package gemini

import (
	"github.com/axiome/firstprinciples-api/internal/generation"
	"google.golang.org/genai"
)

// toGenAIConfig converts the provider-neutral configuration into the genai request config.
func toGenAIConfig(cfg generation.Config) *genai.GenerateContentConfig {
	temperature := cfg.Temperature

	gc := &genai.GenerateContentConfig{
		Temperature:      &temperature,
		MaxOutputTokens:  cfg.MaxOutputTokens,
		ResponseMIMEType: cfg.ResponseMIMEType,
	}

	if cfg.SystemInstruction != "" {
		gc.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: cfg.SystemInstruction}},
		}
	}

	if cfg.ResponseSchema != nil {
		gc.ResponseSchema = toGenAISchema(cfg.ResponseSchema)
	}

	return gc
}

// toGenAISchema converts a generation.Schema tree into a genai.Schema tree.
func toGenAISchema(s *generation.Schema) *genai.Schema {
	if s == nil {
		return nil
	}

	out := &genai.Schema{
		Type:        toGenAIType(s.Type),
		Description: s.Description,
	}

	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toGenAISchema(prop)
		}
	}
	if len(s.Required) > 0 {
		out.Required = append([]string(nil), s.Required...)
	}
	if len(s.PropertyOrdering) > 0 {
		out.PropertyOrdering = append([]string(nil), s.PropertyOrdering...)
	}

	return out
}

func toGenAIType(t generation.SchemaType) genai.Type {
	switch t {
	case generation.TypeObject:
		return genai.TypeObject
	case generation.TypeString:
		return genai.TypeString
	default:
		return genai.TypeUnspecified
	}
}
