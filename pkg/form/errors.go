package form

import "errors"

var (
	// ErrValidatorPanicked wraps a panic recovered from a field validator.
	ErrValidatorPanicked = errors.New("validator panicked")
	// ErrValidatorFailed marks a validator error that is not a rule violation.
	ErrValidatorFailed = errors.New("validator failed")
	// ErrSubmitFailed wraps the error returned by the submit callback.
	ErrSubmitFailed = errors.New("submit failed")
)
