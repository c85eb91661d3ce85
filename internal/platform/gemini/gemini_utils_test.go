package gemini

import (
	"testing"

	"github.com/axiome/firstprinciples-api/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestToGenAIConfig(t *testing.T) {
	cfg := generation.Config{
		Model:             "gemini-2.0-flash",
		Temperature:       0.1,
		MaxOutputTokens:   8192,
		ResponseMIMEType:  generation.MIMETypeJSON,
		SystemInstruction: "You are a tutor.",
		ResponseSchema: &generation.Schema{
			Type:     generation.TypeObject,
			Required: []string{"concept_name"},
			Properties: map[string]*generation.Schema{
				"concept_name": {Type: generation.TypeString, Description: "name"},
			},
			PropertyOrdering: []string{"concept_name"},
		},
	}

	gc := toGenAIConfig(cfg)

	require.NotNil(t, gc.Temperature)
	assert.InDelta(t, 0.1, *gc.Temperature, 1e-6)
	assert.EqualValues(t, 8192, gc.MaxOutputTokens)
	assert.Equal(t, generation.MIMETypeJSON, gc.ResponseMIMEType)

	require.NotNil(t, gc.SystemInstruction)
	require.Len(t, gc.SystemInstruction.Parts, 1)
	assert.Equal(t, "You are a tutor.", gc.SystemInstruction.Parts[0].Text)

	require.NotNil(t, gc.ResponseSchema)
	assert.Equal(t, genai.TypeObject, gc.ResponseSchema.Type)
	assert.Equal(t, []string{"concept_name"}, gc.ResponseSchema.Required)
	assert.Equal(t, []string{"concept_name"}, gc.ResponseSchema.PropertyOrdering)
	require.Contains(t, gc.ResponseSchema.Properties, "concept_name")
	assert.Equal(t, genai.TypeString, gc.ResponseSchema.Properties["concept_name"].Type)
	assert.Equal(t, "name", gc.ResponseSchema.Properties["concept_name"].Description)
}

func TestToGenAIConfig_OmitsOptionalParts(t *testing.T) {
	gc := toGenAIConfig(generation.Config{
		Model:           "gemini-2.0-flash",
		MaxOutputTokens: 100,
	})

	assert.Nil(t, gc.SystemInstruction)
	assert.Nil(t, gc.ResponseSchema)
	require.NotNil(t, gc.Temperature)
	assert.Zero(t, *gc.Temperature)
}

func TestToGenAISchema_Nil(t *testing.T) {
	assert.Nil(t, toGenAISchema(nil))
}
