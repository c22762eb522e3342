package binder

import (
	"fmt"
	"mime"
	"net/http"
)

// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20 // 10 MB

// Form creates a binder for application/x-www-form-urlencoded and
// multipart/form-data bodies. Uploaded files are ignored.
func Form() Binder {
	return func(r *http.Request) (map[string]any, error) {
		mediaType, err := mediaTypeOf(r)
		if err != nil {
			return nil, err
		}

		var values map[string][]string

		switch mediaType {
		case MIMEApplicationForm:
			if err := r.ParseForm(); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			values = r.PostForm

		case MIMEMultipartForm:
			_, params, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
			if !validBoundary(params["boundary"]) {
				return nil, fmt.Errorf("%w: invalid boundary parameter", ErrInvalidForm)
			}
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			values = r.MultipartForm.Value

		default:
			return nil, fmt.Errorf("%w: got %s, expected %s or %s",
				ErrUnsupportedMediaType, mediaType, MIMEApplicationForm, MIMEMultipartForm)
		}

		out := make(map[string]any, len(values))
		for key, vals := range values {
			switch len(vals) {
			case 0:
				continue
			case 1:
				out[key] = vals[0]
			default:
				out[key] = append([]string(nil), vals...)
			}
		}
		return out, nil
	}
}

// validBoundary checks the multipart boundary against RFC 2046:
// 1 to 70 characters from the allowed set, not ending with a space.
func validBoundary(boundary string) bool {
	if len(boundary) == 0 || len(boundary) > 70 || boundary[len(boundary)-1] == ' ' {
		return false
	}
	for _, c := range boundary {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '\'' || c == '(' || c == ')' || c == '+' || c == '_' || c == ',' ||
			c == '-' || c == '.' || c == '/' || c == ':' || c == '=' || c == '?' || c == ' ':
		default:
			return false
		}
	}
	return true
}
