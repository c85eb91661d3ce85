package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/axiome/firstprinciples-api/internal/generation"
)

// MockTextGenerator implements generation.TextGenerator for testing
type MockTextGenerator struct {
	// GenerateFn allows test cases to mock the Generate behavior
	GenerateFn func(ctx context.Context, prompt string, cfg generation.Config) (string, error)

	// Default response values
	Text string
	Err  error

	// Delay is waited before returning, to simulate provider latency.
	Delay time.Duration

	// Call tracking for verification
	GenerateCalls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times Generate was called
		Count int

		// Prompts contains all prompts passed to Generate calls
		Prompts []string

		// Configs contains all configs passed to Generate calls
		Configs []generation.Config
	}
}

var _ generation.TextGenerator = (*MockTextGenerator)(nil)

// Generate implements the generation.TextGenerator interface
func (m *MockTextGenerator) Generate(
	ctx context.Context,
	prompt string,
	cfg generation.Config,
) (string, error) {
	m.GenerateCalls.mu.Lock()
	m.GenerateCalls.Count++
	m.GenerateCalls.Prompts = append(m.GenerateCalls.Prompts, prompt)
	m.GenerateCalls.Configs = append(m.GenerateCalls.Configs, cfg)
	m.GenerateCalls.mu.Unlock()

	if m.Delay > 0 {
		timer := time.NewTimer(m.Delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %v", generation.ErrCanceled, ctx.Err())
		}
	}

	// Use custom function if provided
	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, prompt, cfg)
	}

	return m.Text, m.Err
}

// CallCount returns how many times Generate has been called.
func (m *MockTextGenerator) CallCount() int {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()
	return m.GenerateCalls.Count
}

// LastPrompt returns the prompt of the most recent call, or "" if none.
func (m *MockTextGenerator) LastPrompt() string {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()
	if len(m.GenerateCalls.Prompts) == 0 {
		return ""
	}
	return m.GenerateCalls.Prompts[len(m.GenerateCalls.Prompts)-1]
}

// NewMockTextGeneratorWithText creates a MockTextGenerator that returns text
func NewMockTextGeneratorWithText(text string) *MockTextGenerator {
	return &MockTextGenerator{Text: text}
}

// NewMockTextGeneratorWithError creates a MockTextGenerator that returns the specified error
func NewMockTextGeneratorWithError(err error) *MockTextGenerator {
	return &MockTextGenerator{Err: err}
}

// NewMockTextGeneratorWithDefaultAnswer creates a MockTextGenerator returning a
// complete, well-formed answer.
func NewMockTextGeneratorWithDefaultAnswer() *MockTextGenerator {
	return &MockTextGenerator{Text: DefaultAnswerJSON}
}

// DefaultAnswerJSON is a complete answer as the model would emit it.
const DefaultAnswerJSON = `{
  "concept_name": "Graph",
  "explanation": "A **graph** is a set of vertices connected by edges.",
  "mermaid_diagram": "graph TD; A-->B; B-->C; C-->A",
  "code_example": "graph = {'A': ['B'], 'B': ['C'], 'C': ['A']}",
  "next_step_prompt": "Graph Representations"
}`

// Reset resets the call tracking state
func (m *MockTextGenerator) Reset() {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()

	m.GenerateCalls.Count = 0
	m.GenerateCalls.Prompts = nil
	m.GenerateCalls.Configs = nil
}
