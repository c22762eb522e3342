package binder

import "errors"

var (
	// ErrMissingContentType is returned for a body without a Content-Type header.
	ErrMissingContentType = errors.New("missing content type")
	// ErrUnsupportedMediaType is returned for bodies other than JSON and forms.
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	// ErrInvalidJSON is returned when the body is not a single JSON object.
	ErrInvalidJSON = errors.New("request body is not a valid JSON object")
	// ErrInvalidForm is returned when a urlencoded or multipart body cannot be parsed.
	ErrInvalidForm = errors.New("request body is not valid form data")
	// ErrRequestTooLarge is returned when the body exceeds the size limit.
	ErrRequestTooLarge = errors.New("request body too large")
)
