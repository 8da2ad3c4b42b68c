package domain

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid registration request")
	ErrSecretNotFound = errors.New("secret not found")

	// ErrStepConflict means the most recent execution is past step 1, so
	// this workflow cannot safely resume or skip it. A logic precondition
	// failure, not a transient one.
	ErrStepConflict = errors.New("execution is not eligible for step 1")
)
