// Package sanitizer provides small string transforms applied to raw form
// input before it reaches the form state.
//
// Transforms have the shape func(string) string and are combined with Apply
// or Compose. Fields runs a transform per field over a decoded value map:
//
//	clean := sanitizer.Fields(values, map[string]func(string) string{
//	    "email": sanitizer.NormalizeEmail,
//	    "name":  sanitizer.Compose(sanitizer.StripHTML, sanitizer.SingleLine),
//	    "bio":   sanitizer.Compose(sanitizer.UserInput, sanitizer.MaxLength(500)),
//	})
//
// Sanitizing never rejects input; validation is the job of package validator.
package sanitizer
