// Package validator provides composable validation rules and field schemas
// used by forms to validate one field at a time against the full set of form
// values.
//
// The package is built around two layers:
//
//   - Rule: a small value holding a Check function and rich,
//     translation-friendly error metadata. Rules are evaluated with Apply,
//     which collects every failure into ValidationErrors (it never stops at
//     the first violated rule).
//   - Schema: validates a named field in the context of all form values,
//     synchronously (ValidateSync) or with a context (Validate). Schemas are
//     what a form registers per field.
//
// Schemas can be built from a rule builder (Rules), from a context-aware
// check such as a uniqueness lookup (Check), combined (Compose) or declared
// as a compact tag spec (Tags):
//
//	schema := map[string]validator.Schema[any]{
//	    "email":    validator.Tags[any]("required;email"),
//	    "age":      validator.Tags[any]("required;min:18"),
//	    "confirm":  validator.Tags[any]("required;same:password"),
//	    "username": validator.Compose(
//	        validator.Tags[any]("required;minlen:3"),
//	        validator.Check(func(ctx context.Context, field string, v validator.Values[any]) error {
//	            if exists(ctx, v.String(field)) {
//	                return validator.Fail(field, "is already taken", "validation.taken")
//	            }
//	            return nil
//	        }),
//	    ),
//	}
//
// Values gives rules typed access to loosely typed input; conversion is
// delegated to github.com/spf13/cast so "42" and 42 are both numbers.
//
// # Error Handling
//
// A schema returns nil, ValidationErrors or any other error. Only
// ValidationErrors describe rule violations; anything else means the check
// itself failed. Use IsValidationError or ExtractValidationErrors to tell
// them apart. ParseTags reports ErrUnknownRule and ErrInvalidRuleParams.
//
// Rules and schemas hold no shared mutable state apart from the tag
// registry, which is guarded by a mutex, so they are safe for concurrent use.
package validator
