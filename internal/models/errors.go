package models

import (
	"errors"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrDisabled   = errors.New("feature disabled")

	// ErrMalformedDuration marks a catalog phase whose duration cannot be parsed.
	// The catalog is fixed, so this is an internal invariant violation.
	ErrMalformedDuration = errors.New("malformed phase duration")
)
