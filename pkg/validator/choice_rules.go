package validator

import (
	"fmt"
	"slices"
	"strings"
)

func InList[T comparable](field string, value T, allowed []T) Rule {
	return newRule(field,
		func() bool { return slices.Contains(allowed, value) },
		fmt.Sprintf("must be one of: %v", allowed), "validation.in_list",
		"allowed_values", allowed,
	)
}

func NotInList[T comparable](field string, value T, forbidden []T) Rule {
	return newRule(field,
		func() bool { return !slices.Contains(forbidden, value) },
		fmt.Sprintf("must not be one of: %v", forbidden), "validation.not_in_list",
		"forbidden_values", forbidden,
	)
}

// InListCaseInsensitive is InList for strings compared with strings.EqualFold.
func InListCaseInsensitive(field, value string, allowed []string) Rule {
	return newRule(field,
		func() bool {
			return slices.ContainsFunc(allowed, func(a string) bool { return strings.EqualFold(value, a) })
		},
		"must be one of: "+strings.Join(allowed, ", "), "validation.in_list",
		"allowed_values", allowed,
	)
}
