package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// newRule assembles a Rule whose translation values always carry the field
// name plus the given key/value pairs.
func newRule(field string, check func() bool, message, key string, kv ...any) Rule {
	params := map[string]any{"field": field}
	for i := 0; i+1 < len(kv); i += 2 {
		params[kv[i].(string)] = kv[i+1]
	}
	return Rule{
		Check: check,
		Error: ValidationError{
			Field:             field,
			Message:           message,
			TranslationKey:    key,
			TranslationValues: params,
		},
	}
}

// Required fails for empty or whitespace-only input.
func Required(field, value string) Rule {
	return newRule(field,
		func() bool { return strings.TrimSpace(value) != "" },
		"field is required", "validation.required",
	)
}

// Lengths are counted in runes, so multi-byte input is measured as typed.

func MinLen(field, value string, min int) Rule {
	return newRule(field,
		func() bool { return utf8.RuneCountInString(value) >= min },
		fmt.Sprintf("must be at least %d characters long", min), "validation.min_length",
		"min", min,
	)
}

func MaxLen(field, value string, max int) Rule {
	return newRule(field,
		func() bool { return utf8.RuneCountInString(value) <= max },
		fmt.Sprintf("must be at most %d characters long", max), "validation.max_length",
		"max", max,
	)
}

func Len(field, value string, exact int) Rule {
	return newRule(field,
		func() bool { return utf8.RuneCountInString(value) == exact },
		fmt.Sprintf("must be exactly %d characters long", exact), "validation.exact_length",
		"length", exact,
	)
}
