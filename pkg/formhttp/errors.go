package formhttp

import "errors"

var (
	ErrFormNotFound   = errors.New("form not found")
	ErrFormExpired    = errors.New("form expired")
	ErrInvalidRequest = errors.New("invalid request")
	ErrFieldRequired  = errors.New("event requires a field name")
)
