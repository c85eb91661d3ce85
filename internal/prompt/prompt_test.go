package prompt

import (
	"strings"
	"testing"

	"github.com/axiome/firstprinciples-api/internal/domain"
	"github.com/axiome/firstprinciples-api/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_ContainsTopicAndFields(t *testing.T) {
	t.Parallel()

	topics := []string{
		"directed graph",
		"What is a Graph?",
		"Graph Traversal",
		"<script>alert('x')</script> & \"quotes\"",
		"  leading and trailing  ",
		"グラフ理論",
		"",
	}

	for _, topic := range topics {
		t.Run(topic, func(t *testing.T) {
			t.Parallel()

			got := Build(topic)

			assert.Contains(t, got, topic, "prompt should embed the topic verbatim")
			for _, field := range domain.RequiredFields() {
				assert.Contains(t, got, field)
			}
			assert.Contains(t, got, "graph algorithms")
			assert.Contains(t, got, "JSON object")
		})
	}
}

func TestBuild_Deterministic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Build("Graph Representations"), Build("Graph Representations"))
	assert.NotEqual(t, Build("Graph Representations"), Build("Traversal Types"))
}

func TestBuild_EmptyTopicIsWellFormed(t *testing.T) {
	t.Parallel()

	got := Build("")
	assert.Contains(t, got, `concept to your student: ""`)
	assert.Equal(t, strings.Count(Build("x"), "\n"), strings.Count(got, "\n"))
}

func TestResponseSchema(t *testing.T) {
	t.Parallel()

	schema := ResponseSchema()
	require.NotNil(t, schema)
	assert.Equal(t, generation.TypeObject, schema.Type)
	assert.ElementsMatch(t, domain.RequiredFields(), schema.Required)
	assert.Equal(t, domain.RequiredFields(), schema.PropertyOrdering)

	for _, field := range domain.RequiredFields() {
		prop, ok := schema.Properties[field]
		require.True(t, ok, "schema should describe %s", field)
		assert.Equal(t, generation.TypeString, prop.Type)
		assert.NotEmpty(t, prop.Description)
	}

	// Each call must return an independent value.
	schema.Required[0] = "mutated"
	assert.Equal(t, domain.FieldConceptName, ResponseSchema().Required[0])
}
