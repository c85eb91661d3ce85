package explain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/axiome/firstprinciples-api/internal/domain"
	"github.com/axiome/firstprinciples-api/internal/generation"
	"github.com/axiome/firstprinciples-api/internal/prompt"
	"github.com/axiome/firstprinciples-api/internal/redact"
)

// Service runs the explanation pipeline against a TextGenerator using a fixed
// generation configuration. It holds no mutable state and is safe for
// concurrent use.
type Service struct {
	generator    generation.TextGenerator
	config       generation.Config
	logger       *slog.Logger
	now          func() time.Time
	strictFields bool
}

// Option customizes a Service.
type Option func(*Service)

// WithClock replaces the clock used to measure elapsed time.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithStrictFields makes the service reject answers that lack any required
// field with KindIncompleteResponse. By default such answers are returned as
// successes and the missing fields are logged.
func WithStrictFields() Option {
	return func(s *Service) {
		s.strictFields = true
	}
}

// NewService creates a Service. The configuration is validated once here and
// used unchanged for every call.
func NewService(
	generator generation.TextGenerator,
	cfg generation.Config,
	logger *slog.Logger,
	opts ...Option,
) (*Service, error) {
	if generator == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Service{
		generator: generator,
		config:    cfg,
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Explain builds the prompt for topic and generates the answer.
func (s *Service) Explain(ctx context.Context, topic string) Envelope {
	return s.GenerateAnswer(ctx, prompt.Build(topic))
}

// GenerateAnswer sends promptText to the provider and normalizes the result.
// Elapsed time is measured from entry to return on every path.
func (s *Service) GenerateAnswer(ctx context.Context, promptText string) Envelope {
	start := s.now()

	text, err := s.callProvider(ctx, promptText)
	if err != nil {
		reason := generation.ClassifyFailure(err)
		env := Failed(KindProviderFailure, redact.Error(err), s.since(start))
		env.Failure.Reason = reason
		s.logger.ErrorContext(ctx, "language model call failed",
			"reason", string(reason),
			"error", redact.Error(err),
			"elapsed_ms", env.Failure.Elapsed.Milliseconds())
		return env
	}

	answer, missing, err := domain.ParseConceptAnswer(text)
	if err != nil {
		env := Failed(KindInvalidResponseFormat, err.Error(), s.since(start))
		env.Failure.RawText = &text
		s.logger.WarnContext(ctx, "language model returned invalid JSON",
			"error", err,
			"response_length", len(text),
			"elapsed_ms", env.Failure.Elapsed.Milliseconds())
		return env
	}

	if len(missing) > 0 {
		if s.strictFields {
			env := Failed(KindIncompleteResponse, domain.ValidateComplete(missing).Error(), s.since(start))
			env.Failure.RawText = &text
			s.logger.WarnContext(ctx, "language model answer rejected as incomplete",
				"missing_fields", missing)
			return env
		}
		s.logger.WarnContext(ctx, "language model answer is missing fields",
			"missing_fields", missing)
	}

	env := Succeeded(*answer, missing, s.since(start))
	s.logger.InfoContext(ctx, "concept explanation generated",
		"concept_name", answer.ConceptName,
		"elapsed_ms", env.Success.Elapsed.Milliseconds())
	return env
}

// callProvider invokes the generator, turning a panic into an ErrProviderError.
func (s *Service) callProvider(ctx context.Context, promptText string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: provider panicked: %v", generation.ErrProviderError, r)
		}
	}()

	s.logger.DebugContext(ctx, "calling language model",
		"model", s.config.Model,
		"prompt_length", len(promptText))

	return s.generator.Generate(ctx, promptText, s.config)
}

// since returns the non-negative time elapsed from start.
func (s *Service) since(start time.Time) time.Duration {
	elapsed := s.now().Sub(start)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}
