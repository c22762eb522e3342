package validator

import "strings"

// Cross-field rules compare a field with a sibling value taken from the
// same Values set. The sibling's name is passed to translations as "other".

// SameAs fails unless value equals the other field's value, e.g. a
// password confirmation.
func SameAs(field, value, otherField, otherValue string) Rule {
	return newRule(field,
		func() bool { return value == otherValue },
		"must match "+otherField, "validation.same",
		"other", otherField,
	)
}

func DifferentFrom(field, value, otherField, otherValue string) Rule {
	return newRule(field,
		func() bool { return value != otherValue },
		"must differ from "+otherField, "validation.different",
		"other", otherField,
	)
}

// RequiredWith makes value mandatory once the other field is filled in.
func RequiredWith(field, value, otherField, otherValue string) Rule {
	return newRule(field,
		func() bool {
			return strings.TrimSpace(otherValue) == "" || strings.TrimSpace(value) != ""
		},
		"is required when "+otherField+" is present", "validation.required_with",
		"other", otherField,
	)
}
