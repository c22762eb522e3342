package validator

import "fmt"

// NumericValue reports the outcome of converting loosely typed input to a
// number, usually the ok result of Values.Number.
func NumericValue(field string, ok bool) Rule {
	return newRule(field, func() bool { return ok }, "must be a number", "validation.numeric")
}

// Min fails when value is below min.
func Min[T Numeric](field string, value, min T) Rule {
	return newRule(field,
		func() bool { return value >= min },
		fmt.Sprintf("must be at least %v", min), "validation.min",
		"min", min,
	)
}

// Max fails when value is above max.
func Max[T Numeric](field string, value, max T) Rule {
	return newRule(field,
		func() bool { return value <= max },
		fmt.Sprintf("must be at most %v", max), "validation.max",
		"max", max,
	)
}
