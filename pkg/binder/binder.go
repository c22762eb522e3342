package binder

import (
	"fmt"
	"mime"
	"net/http"
)

// Binder decodes the body of r into a loosely typed value map.
type Binder func(r *http.Request) (map[string]any, error)

// Values decodes the request body according to its content type. JSON
// objects, urlencoded forms and multipart forms are supported.
//
// Form fields with a single value are returned as string, repeated fields
// as []string. JSON values keep their decoded types.
func Values(r *http.Request) (map[string]any, error) {
	mediaType, err := mediaTypeOf(r)
	if err != nil {
		return nil, err
	}

	switch mediaType {
	case MIMEApplicationJSON:
		return JSON()(r)
	case MIMEApplicationForm, MIMEMultipartForm:
		return Form()(r)
	default:
		return nil, fmt.Errorf("%w: got %s", ErrUnsupportedMediaType, mediaType)
	}
}

// Only returns the entries of values whose keys are in fields.
func Only(values map[string]any, fields []string) map[string]any {
	out := make(map[string]any, len(fields))
	for _, field := range fields {
		if v, ok := values[field]; ok {
			out[field] = v
		}
	}
	return out
}

const (
	MIMEApplicationJSON = "application/json"
	MIMEApplicationForm = "application/x-www-form-urlencoded"
	MIMEMultipartForm   = "multipart/form-data"
)

func mediaTypeOf(r *http.Request) (string, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return "", ErrMissingContentType
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
	}
	return mediaType, nil
}
