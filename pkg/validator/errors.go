package validator

import "errors"

var (
	// ErrValidationFailed matches every ValidationErrors value.
	ErrValidationFailed = errors.New("validation failed")

	ErrUnknownRule       = errors.New("unknown validation rule")
	ErrInvalidRuleParams = errors.New("invalid validation rule parameters")
)
