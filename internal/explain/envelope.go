package explain

import (
	"encoding/json"
	"time"

	"github.com/axiome/firstprinciples-api/internal/domain"
	"github.com/axiome/firstprinciples-api/internal/generation"
)

// ErrorKind classifies a failed Envelope.
type ErrorKind string

// The closed set of envelope error kinds.
const (
	// KindProviderFailure: the provider call did not produce text.
	KindProviderFailure ErrorKind = "provider_failure"

	// KindInvalidResponseFormat: text was produced but is not a JSON object.
	KindInvalidResponseFormat ErrorKind = "invalid_response_format"

	// KindIncompleteResponse: the answer lacks required fields (strict mode only).
	KindIncompleteResponse ErrorKind = "incomplete_response"

	// KindInvalidRequest: the request was rejected before reaching the pipeline.
	KindInvalidRequest ErrorKind = "invalid_request"
)

// Wire values of the status field.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Success is the populated variant of a successful Envelope.
type Success struct {
	Answer domain.ConceptAnswer

	// MissingFields lists required keys absent from the model output.
	// Always empty in strict mode.
	MissingFields []string

	Elapsed time.Duration
}

// Failure is the populated variant of a failed Envelope.
type Failure struct {
	Kind ErrorKind

	// Reason is set for KindProviderFailure only.
	Reason generation.FailureKind

	Detail string

	// RawText is the unparsed model output. It is nil unless the provider
	// returned text, i.e. never set for KindProviderFailure.
	RawText *string

	Elapsed time.Duration
}

// Envelope is the uniform result of one explanation request. Exactly one of
// Success and Failure is non-nil.
type Envelope struct {
	Success *Success
	Failure *Failure
}

// Succeeded builds a success Envelope.
func Succeeded(answer domain.ConceptAnswer, missing []string, elapsed time.Duration) Envelope {
	return Envelope{Success: &Success{Answer: answer, MissingFields: missing, Elapsed: elapsed}}
}

// Failed builds a failure Envelope without raw text.
func Failed(kind ErrorKind, detail string, elapsed time.Duration) Envelope {
	return Envelope{Failure: &Failure{Kind: kind, Detail: detail, Elapsed: elapsed}}
}

// OK reports whether e is a success.
func (e Envelope) OK() bool {
	return e.Success != nil
}

// Elapsed returns the duration recorded in whichever variant is populated.
func (e Envelope) Elapsed() time.Duration {
	switch {
	case e.Success != nil:
		return e.Success.Elapsed
	case e.Failure != nil:
		return e.Failure.Elapsed
	default:
		return 0
	}
}

// Message returns the caller-facing error text for f.
func (f *Failure) Message() string {
	switch f.Kind {
	case KindProviderFailure:
		return "Failed to generate a response from the language model: " + f.Detail
	case KindInvalidResponseFormat:
		return "Invalid JSON response from the language model: " + f.Detail
	case KindIncompleteResponse:
		return "Incomplete response from the language model: " + f.Detail
	case KindInvalidRequest:
		return "Invalid request: " + f.Detail
	default:
		return f.Detail
	}
}

// successPayload is the wire shape of a successful envelope.
type successPayload struct {
	Status         string        `json:"status"`
	GeminiResponse answerPayload `json:"gemini_response"`
	MissingFields  []string      `json:"missing_fields,omitempty"`
	ProcessingTime float64       `json:"processing_time"`
}

// answerPayload carries only the keys the model actually produced.
type answerPayload struct {
	ConceptName    *string `json:"concept_name,omitempty"`
	Explanation    *string `json:"explanation,omitempty"`
	MermaidDiagram *string `json:"mermaid_diagram,omitempty"`
	CodeExample    *string `json:"code_example,omitempty"`
	NextStepPrompt *string `json:"next_step_prompt,omitempty"`
}

func newAnswerPayload(answer domain.ConceptAnswer, missing []string) answerPayload {
	absent := make(map[string]bool, len(missing))
	for _, key := range missing {
		absent[key] = true
	}
	present := func(key string) *string {
		if absent[key] {
			return nil
		}
		v := answer.Field(key)
		return &v
	}

	return answerPayload{
		ConceptName:    present(domain.FieldConceptName),
		Explanation:    present(domain.FieldExplanation),
		MermaidDiagram: present(domain.FieldMermaidDiagram),
		CodeExample:    present(domain.FieldCodeExample),
		NextStepPrompt: present(domain.FieldNextStepPrompt),
	}
}

// errorPayload is the wire shape of a failed envelope.
type errorPayload struct {
	Status         string  `json:"status"`
	Error          string  `json:"error"`
	ErrorType      string  `json:"error_type,omitempty"`
	ErrorReason    string  `json:"error_reason,omitempty"`
	RawResponse    *string `json:"raw_response,omitempty"`
	ProcessingTime float64 `json:"processing_time"`
}

// MarshalJSON encodes e in the shape the frontend consumes, with
// processing_time in seconds. Keys listed in MissingFields are left out of
// gemini_response and named in missing_fields.
func (e Envelope) MarshalJSON() ([]byte, error) {
	if e.Success != nil {
		return json.Marshal(successPayload{
			Status:         StatusSuccess,
			GeminiResponse: newAnswerPayload(e.Success.Answer, e.Success.MissingFields),
			MissingFields:  e.Success.MissingFields,
			ProcessingTime: e.Success.Elapsed.Seconds(),
		})
	}

	f := e.Failure
	if f == nil {
		f = &Failure{Detail: "empty envelope"}
	}
	return json.Marshal(errorPayload{
		Status:         StatusError,
		Error:          f.Message(),
		ErrorType:      string(f.Kind),
		ErrorReason:    string(f.Reason),
		RawResponse:    f.RawText,
		ProcessingTime: f.Elapsed.Seconds(),
	})
}
