package gemini

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/axiome/firstprinciples-api/internal/generation"
	"google.golang.org/genai"
)

// Error definitions for the gemini package.
var (
	// ErrEmptyPrompt is returned when Generate is called with an empty prompt.
	ErrEmptyPrompt = errors.New("prompt cannot be empty")
)

// classifyError wraps err, as returned by the genai client, in the
// generation sentinel describing its cause.
func classifyError(err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%w: %v", generation.ErrCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", generation.ErrTimeout, err)
	}

	if apiErr, ok := asAPIError(err); ok {
		return fmt.Errorf("%w: %v", sentinelForAPIError(apiErr), err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return fmt.Errorf("%w: %v", generation.ErrTimeout, err)
		}
		return fmt.Errorf("%w: %v", generation.ErrNetwork, err)
	}

	return fmt.Errorf("%w: %v", generation.ErrProviderError, err)
}

func asAPIError(err error) (genai.APIError, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return *apiErrPtr, true
	}
	return genai.APIError{}, false
}

// sentinelForAPIError maps an HTTP status code and canonical status string
// onto a generation sentinel.
func sentinelForAPIError(apiErr genai.APIError) error {
	switch strings.ToUpper(apiErr.Status) {
	case "UNAUTHENTICATED", "PERMISSION_DENIED":
		return generation.ErrAuthentication
	case "RESOURCE_EXHAUSTED":
		return generation.ErrQuotaExceeded
	case "INVALID_ARGUMENT", "FAILED_PRECONDITION", "NOT_FOUND":
		return generation.ErrInvalidArgument
	case "DEADLINE_EXCEEDED":
		return generation.ErrTimeout
	}

	switch {
	case apiErr.Code == http.StatusUnauthorized, apiErr.Code == http.StatusForbidden:
		return generation.ErrAuthentication
	case apiErr.Code == http.StatusTooManyRequests:
		return generation.ErrQuotaExceeded
	case apiErr.Code == http.StatusGatewayTimeout, apiErr.Code == http.StatusRequestTimeout:
		return generation.ErrTimeout
	case apiErr.Code >= 400 && apiErr.Code < 500:
		return generation.ErrInvalidArgument
	default:
		return generation.ErrProviderError
	}
}
