package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Keys of the structured answer, exactly as the model is asked to emit them.
const (
	FieldConceptName    = "concept_name"
	FieldExplanation    = "explanation"
	FieldMermaidDiagram = "mermaid_diagram"
	FieldCodeExample    = "code_example"
	FieldNextStepPrompt = "next_step_prompt"
)

// RequiredFields returns the keys every complete answer carries, in the
// order they are presented to the model.
func RequiredFields() []string {
	return []string{
		FieldConceptName,
		FieldExplanation,
		FieldMermaidDiagram,
		FieldCodeExample,
		FieldNextStepPrompt,
	}
}

// ConceptAnswer is the structured explanation of one topic.
// All fields are plain text; Explanation is markdown and MermaidDiagram is a
// Mermaid graph description.
type ConceptAnswer struct {
	ConceptName    string `json:"concept_name"`
	Explanation    string `json:"explanation"`
	MermaidDiagram string `json:"mermaid_diagram"`
	CodeExample    string `json:"code_example"`
	NextStepPrompt string `json:"next_step_prompt"`
}

// Field returns the value of the answer field named by key, or "" for an
// unknown key.
func (a ConceptAnswer) Field(key string) string {
	switch key {
	case FieldConceptName:
		return a.ConceptName
	case FieldExplanation:
		return a.Explanation
	case FieldMermaidDiagram:
		return a.MermaidDiagram
	case FieldCodeExample:
		return a.CodeExample
	case FieldNextStepPrompt:
		return a.NextStepPrompt
	default:
		return ""
	}
}

func (a *ConceptAnswer) setField(key, value string) {
	switch key {
	case FieldConceptName:
		a.ConceptName = value
	case FieldExplanation:
		a.Explanation = value
	case FieldMermaidDiagram:
		a.MermaidDiagram = value
	case FieldCodeExample:
		a.CodeExample = value
	case FieldNextStepPrompt:
		a.NextStepPrompt = value
	}
}

// ParseConceptAnswer decodes text as a single JSON object into a ConceptAnswer.
//
// It returns the decoded answer and the required keys that were absent (or
// null) in the object. A missing key is not an error here; callers decide
// whether a partial answer is acceptable. Field values are not validated: a
// non-string value such as a nested object is kept as its compact JSON text.
// Only text that is not a single JSON object is an error, wrapped in
// ErrInvalidFormat.
func ParseConceptAnswer(text string) (*ConceptAnswer, []string, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if fields == nil {
		return nil, nil, fmt.Errorf("%w: expected a JSON object, got null", ErrInvalidFormat)
	}

	var answer ConceptAnswer
	var missing []string
	for _, key := range RequiredFields() {
		raw, ok := fields[key]
		if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			missing = append(missing, key)
			continue
		}
		answer.setField(key, fieldText(raw))
	}

	return &answer, missing, nil
}

// fieldText returns raw as a string when it is a JSON string, otherwise as
// compact JSON text.
func fieldText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

// ValidateComplete reports ErrIncompleteAnswer naming the given missing keys, or nil
// when none are missing.
func ValidateComplete(missing []string) error {
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrIncompleteAnswer, strings.Join(missing, ", "))
}
