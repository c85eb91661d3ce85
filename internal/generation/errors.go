package generation

import (
	"errors"
)

// Errors that provider adapters wrap to signal why a generation call did not
// produce text. The set is closed: adapters map anything they cannot
// classify onto ErrProviderError.
var (
	// ErrTimeout is returned when the call exceeded a deadline.
	ErrTimeout = errors.New("generation request timed out")

	// ErrCanceled is returned when the caller canceled the request.
	ErrCanceled = errors.New("generation request canceled")

	// ErrNetwork is returned when the provider could not be reached.
	ErrNetwork = errors.New("network error calling language model")

	// ErrAuthentication is returned when the provider rejected the credentials.
	ErrAuthentication = errors.New("language model authentication failed")

	// ErrQuotaExceeded is returned when the provider rate limit or quota is exhausted.
	ErrQuotaExceeded = errors.New("language model quota exceeded")

	// ErrInvalidArgument is returned when the provider rejected the request as malformed.
	ErrInvalidArgument = errors.New("language model rejected the request")

	// ErrContentBlocked is returned when the provider blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrEmptyResponse is returned when the provider answered without any content.
	ErrEmptyResponse = errors.New("language model returned no content")

	// ErrProviderError is returned for provider-side failures and anything unclassified.
	ErrProviderError = errors.New("language model provider error")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// FailureKind names the reason a provider call failed.
type FailureKind string

// The closed set of provider failure kinds.
const (
	FailureTimeout         FailureKind = "timeout"
	FailureCanceled        FailureKind = "canceled"
	FailureNetwork         FailureKind = "network"
	FailureAuthentication  FailureKind = "authentication"
	FailureQuotaExceeded   FailureKind = "quota_exceeded"
	FailureInvalidArgument FailureKind = "invalid_argument"
	FailureContentBlocked  FailureKind = "content_blocked"
	FailureEmptyResponse   FailureKind = "empty_response"
	FailureProviderError   FailureKind = "provider_error"
)

var failureKinds = []struct {
	sentinel error
	kind     FailureKind
}{
	{ErrTimeout, FailureTimeout},
	{ErrCanceled, FailureCanceled},
	{ErrNetwork, FailureNetwork},
	{ErrAuthentication, FailureAuthentication},
	{ErrQuotaExceeded, FailureQuotaExceeded},
	{ErrInvalidArgument, FailureInvalidArgument},
	{ErrContentBlocked, FailureContentBlocked},
	{ErrEmptyResponse, FailureEmptyResponse},
	{ErrProviderError, FailureProviderError},
}

// ClassifyFailure maps an error returned by a TextGenerator onto its
// FailureKind. Errors that wrap none of the package sentinels are
// FailureProviderError.
func ClassifyFailure(err error) FailureKind {
	for _, fk := range failureKinds {
		if errors.Is(err, fk.sentinel) {
			return fk.kind
		}
	}
	return FailureProviderError
}
