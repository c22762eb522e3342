// Package binder decodes HTTP request bodies into loosely typed value maps
// suitable for form state.
//
// Values picks the decoder from the Content-Type header:
//
//   - application/json: a single JSON object, at most DefaultMaxJSONSize bytes.
//   - application/x-www-form-urlencoded: body parameters.
//   - multipart/form-data: text parts only; files are ignored.
//
// Form fields posted once become strings, repeated fields become []string.
// Only restricts a decoded map to a known set of field names.
//
//	values, err := binder.Values(r)
//	if err != nil {
//	    http.Error(w, err.Error(), http.StatusBadRequest)
//	    return
//	}
//	f.SetValues(binder.Only(values, f.Fields()))
//
// # Error Handling
//
// Errors wrap ErrMissingContentType, ErrUnsupportedMediaType,
// ErrInvalidJSON, ErrInvalidForm or ErrRequestTooLarge and can
// be matched with errors.Is.
package binder
