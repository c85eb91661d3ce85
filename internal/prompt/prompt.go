package prompt

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates/concept.tmpl
var conceptTemplateText string

// conceptTemplate is parsed once at package initialization. text/template is
// used so the topic is embedded verbatim, without HTML escaping.
var conceptTemplate = template.Must(template.New("concept").Parse(conceptTemplateText))

// SystemInstruction is the default system turn sent alongside the prompt.
const SystemInstruction = "You are an expert tutor in graph theory and graph algorithms. " +
	"You always answer with a single valid JSON object and nothing else."

// promptData represents the data passed to the prompt template
type promptData struct {
	Topic string
}

// Build returns the full instruction text for topic.
//
// It does not reject an empty topic; that is left to the request intake
// boundary. The result always contains the topic verbatim and the five
// answer keys.
func Build(topic string) string {
	var b strings.Builder
	if err := conceptTemplate.Execute(&b, promptData{Topic: topic}); err != nil {
		// Execute only fails on writer errors, and strings.Builder never returns one.
		panic(fmt.Sprintf("prompt: executing concept template: %v", err))
	}
	return b.String()
}
