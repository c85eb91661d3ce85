package generation

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want FailureKind
	}{
		{"timeout", fmt.Errorf("%w: deadline", ErrTimeout), FailureTimeout},
		{"canceled", fmt.Errorf("%w: canceled", ErrCanceled), FailureCanceled},
		{"network", fmt.Errorf("%w: dial tcp", ErrNetwork), FailureNetwork},
		{"authentication", fmt.Errorf("%w: 401", ErrAuthentication), FailureAuthentication},
		{"quota", fmt.Errorf("%w: 429", ErrQuotaExceeded), FailureQuotaExceeded},
		{"invalid argument", fmt.Errorf("%w: 400", ErrInvalidArgument), FailureInvalidArgument},
		{"blocked", ErrContentBlocked, FailureContentBlocked},
		{"empty", ErrEmptyResponse, FailureEmptyResponse},
		{"provider", ErrProviderError, FailureProviderError},
		{"double wrapped", fmt.Errorf("outer: %w", fmt.Errorf("%w: inner", ErrQuotaExceeded)), FailureQuotaExceeded},
		{"unknown error", errors.New("boom"), FailureProviderError},
		{"raw context error", context.DeadlineExceeded, FailureProviderError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ClassifyFailure(tc.err))
		})
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	valid := Config{
		Model:            "gemini-2.0-flash",
		Temperature:      0.1,
		MaxOutputTokens:  8192,
		ResponseMIMEType: MIMETypeJSON,
		ResponseSchema:   &Schema{Type: TypeObject},
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty model", func(c *Config) { c.Model = "" }},
		{"negative temperature", func(c *Config) { c.Temperature = -0.5 }},
		{"temperature too high", func(c *Config) { c.Temperature = 2.5 }},
		{"zero max tokens", func(c *Config) { c.MaxOutputTokens = 0 }},
		{"schema without json", func(c *Config) { c.ResponseMIMEType = "text/plain" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := valid
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
