package validator

import (
	"context"
)

// Schema validates one field in the context of the full value set, so
// cross-field rules can read sibling values.
//
// Both methods return nil on success, ValidationErrors carrying every
// violated rule (evaluation never stops at the first failure), or any other
// error when the check itself could not run.
type Schema[V any] interface {
	ValidateSync(field string, values Values[V]) error
	Validate(ctx context.Context, field string, values Values[V]) error
}

// RuleFunc builds the rules for field from the current values.
type RuleFunc[V any] func(field string, values Values[V]) []Rule

// Rules adapts a rule builder into a Schema.
//
// Example:
//
//	validator.Rules(func(field string, v validator.Values[any]) []validator.Rule {
//		return []validator.Rule{
//			validator.Required(field, v.String(field)),
//			validator.ValidEmail(field, v.String(field)),
//		}
//	})
func Rules[V any](fn func(field string, values Values[V]) []Rule) Schema[V] {
	return RuleFunc[V](fn)
}

func (fn RuleFunc[V]) ValidateSync(field string, values Values[V]) error {
	return Apply(fn(field, values)...)
}

func (fn RuleFunc[V]) Validate(ctx context.Context, field string, values Values[V]) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn.ValidateSync(field, values)
}

// CheckFunc is a context-aware check, typically backed by I/O such as a
// uniqueness lookup. It should return ValidationErrors for rule violations.
type CheckFunc[V any] func(ctx context.Context, field string, values Values[V]) error

// Check adapts fn into a Schema. The synchronous path runs fn with a
// background context.
func Check[V any](fn func(ctx context.Context, field string, values Values[V]) error) Schema[V] {
	return CheckFunc[V](fn)
}

func (fn CheckFunc[V]) ValidateSync(field string, values Values[V]) error {
	return fn(context.Background(), field, values)
}

func (fn CheckFunc[V]) Validate(ctx context.Context, field string, values Values[V]) error {
	return fn(ctx, field, values)
}

type composite[V any] []Schema[V]

// Compose runs every schema in order and merges their violations.
// A non-validation error from any schema is returned as is.
func Compose[V any](schemas ...Schema[V]) Schema[V] {
	clean := make(composite[V], 0, len(schemas))
	for _, s := range schemas {
		if s != nil {
			clean = append(clean, s)
		}
	}
	return clean
}

func (c composite[V]) ValidateSync(field string, values Values[V]) error {
	return c.run(func(s Schema[V]) error { return s.ValidateSync(field, values) })
}

func (c composite[V]) Validate(ctx context.Context, field string, values Values[V]) error {
	return c.run(func(s Schema[V]) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return s.Validate(ctx, field, values)
	})
}

func (c composite[V]) run(validate func(Schema[V]) error) error {
	var errs ValidationErrors
	for _, s := range c {
		err := validate(s)
		if err == nil {
			continue
		}
		verrs := ExtractValidationErrors(err)
		if verrs == nil {
			return err
		}
		errs = append(errs, verrs...)
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// Fail builds a ValidationErrors value with a single error for field.
// Handy inside CheckFunc implementations.
func Fail(field, message, translationKey string) error {
	return ValidationErrors{{
		Field:          field,
		Message:        message,
		TranslationKey: translationKey,
		TranslationValues: map[string]any{
			"field": field,
		},
	}}
}
