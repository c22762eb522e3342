package sanitizer

// Apply creates functional composition pipeline for sanitization transformations.
// Useful for building complex sanitization chains while maintaining type safety.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value

	for _, transform := range transforms {
		result = transform(result)
	}

	return result
}

// Compose creates reusable sanitization pipelines that can be stored and reused.
// Preferred over repeated Apply calls when the same transformation chain is used multiple times.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}

// Fields applies per-field transforms to the string entries of values.
// Repeated values ([]string) are transformed element by element; other
// types and fields without a transform are copied unchanged. The input map
// is not modified.
func Fields(values map[string]any, transforms map[string]func(string) string) map[string]any {
	out := make(map[string]any, len(values))
	for field, value := range values {
		transform, ok := transforms[field]
		if !ok || transform == nil {
			out[field] = value
			continue
		}

		switch v := value.(type) {
		case string:
			out[field] = transform(v)
		case []string:
			cleaned := make([]string, len(v))
			for i, s := range v {
				cleaned[i] = transform(s)
			}
			out[field] = cleaned
		default:
			out[field] = value
		}
	}
	return out
}
