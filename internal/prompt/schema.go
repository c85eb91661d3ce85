package prompt

import (
	"github.com/axiome/firstprinciples-api/internal/domain"
	"github.com/axiome/firstprinciples-api/internal/generation"
)

var fieldDescriptions = map[string]string{
	domain.FieldConceptName:    "The name of the concept being explained.",
	domain.FieldExplanation:    "An incremental explanation of the concept in markdown.",
	domain.FieldMermaidDiagram: "A Mermaid graph definition visualizing the concept.",
	domain.FieldCodeExample:    "A short code example demonstrating the concept.",
	domain.FieldNextStepPrompt: "A suggested follow-up topic or question.",
}

// ResponseSchema returns the structured output schema matching the keys
// enumerated in the prompt. Each call returns a fresh value.
func ResponseSchema() *generation.Schema {
	fields := domain.RequiredFields()
	properties := make(map[string]*generation.Schema, len(fields))
	for _, field := range fields {
		properties[field] = &generation.Schema{
			Type:        generation.TypeString,
			Description: fieldDescriptions[field],
		}
	}

	return &generation.Schema{
		Type:             generation.TypeObject,
		Description:      "A structured explanation of one graph algorithms concept.",
		Properties:       properties,
		Required:         fields,
		PropertyOrdering: domain.RequiredFields(),
	}
}
