package generation

import (
	"context"
	"fmt"
)

// MIMETypeJSON is the response format hint asking for a JSON document.
const MIMETypeJSON = "application/json"

// TextGenerator defines the interface for producing text from a prompt.
// This interface serves as a boundary between the application core and
// external AI/LLM services, following the hexagonal architecture pattern.
type TextGenerator interface {
	// Generate sends prompt to the provider using cfg and returns the raw
	// text it produced. Failures wrap one of the sentinel errors in this
	// package.
	Generate(ctx context.Context, prompt string, cfg Config) (string, error)
}

// Config is the fixed generation configuration sent with every call.
// It is built once at startup and passed by value.
type Config struct {
	// Model is the provider model identifier.
	Model string

	// Temperature controls sampling randomness. Kept low for consistent,
	// schema-compliant output.
	Temperature float32

	// MaxOutputTokens caps the length of the generated text.
	MaxOutputTokens int32

	// ResponseMIMEType is the output format hint, usually MIMETypeJSON.
	ResponseMIMEType string

	// SystemInstruction is optional text sent as the system turn.
	SystemInstruction string

	// ResponseSchema optionally constrains the output structure.
	ResponseSchema *Schema
}

// Validate checks that cfg can be sent to a provider.
func (c Config) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("%w: model cannot be empty", ErrInvalidConfig)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("%w: temperature %.2f out of range [0, 2]", ErrInvalidConfig, c.Temperature)
	}
	if c.MaxOutputTokens <= 0 {
		return fmt.Errorf("%w: max output tokens must be positive", ErrInvalidConfig)
	}
	if c.ResponseSchema != nil && c.ResponseMIMEType != MIMETypeJSON {
		return fmt.Errorf("%w: response schema requires MIME type %s", ErrInvalidConfig, MIMETypeJSON)
	}
	return nil
}

// SchemaType is the JSON type of a schema node.
type SchemaType string

// Schema types used by structured responses.
const (
	TypeObject SchemaType = "object"
	TypeString SchemaType = "string"
)

// Schema is a provider-neutral description of a structured response.
type Schema struct {
	Type        SchemaType
	Description string

	// Properties and Required apply to TypeObject nodes.
	Properties map[string]*Schema
	Required   []string

	// PropertyOrdering lists property names in the order the model should emit them.
	PropertyOrdering []string
}
