package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20 // 1 MB

// JSON creates a binder for application/json bodies holding a single object.
func JSON() Binder {
	return func(r *http.Request) (map[string]any, error) {
		if err := r.Context().Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}

		mediaType, err := mediaTypeOf(r)
		if err != nil {
			return nil, err
		}
		if mediaType != MIMEApplicationJSON {
			return nil, fmt.Errorf("%w: got %s, expected %s", ErrUnsupportedMediaType, mediaType, MIMEApplicationJSON)
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxJSONSize+1))
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read request body: %v", ErrInvalidJSON, err)
		}
		if len(body) > DefaultMaxJSONSize {
			return nil, fmt.Errorf("%w: max %d bytes", ErrRequestTooLarge, DefaultMaxJSONSize)
		}

		var out map[string]any
		if err := json.Unmarshal(body, &out); err != nil {
			var syntaxErr *json.SyntaxError
			var typeErr *json.UnmarshalTypeError
			switch {
			case len(body) == 0:
				return nil, fmt.Errorf("%w: empty body", ErrInvalidJSON)
			case errors.As(err, &typeErr):
				return nil, fmt.Errorf("%w: expected a JSON object", ErrInvalidJSON)
			case errors.As(err, &syntaxErr):
				return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
			default:
				return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
			}
		}
		if out == nil {
			out = make(map[string]any)
		}
		return out, nil
	}
}
