// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrInvalidFormat is returned when model output is not a JSON object
	// of the expected shape. It is usually wrapped with the decoder's message.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrIncompleteAnswer is returned when a decoded answer lacks one or more
	// required fields.
	ErrIncompleteAnswer = errors.New("answer is missing required fields")
)
