// Package form manages the state of a single form: current values,
// per-field error lists, touched flags and pending flags, plus the
// validation and event entry points that update them.
//
// A form is created from its initial values and an optional validation
// schema. The set of fields is fixed for the life of the form.
//
//	f := form.New(form.Options[any]{
//	    InitialValues: map[string]any{"email": "", "age": 0},
//	    ValidationSchema: map[string]validator.Schema[any]{
//	        "email": validator.Tags[any]("required;email"),
//	        "age":   validator.Tags[any]("required;min:18"),
//	    },
//	})
//
//	f.HandleFocusIn(form.FieldEvent{Name: "email"})
//	f.SetValues(map[string]any{"email": "a@b.com", "age": 20})
//	f.HandleFocusOut(ctx, form.FieldEvent{Name: "email"})
//
//	if ok, err := f.Submit(ctx); err == nil && ok {
//	    // valid
//	}
//
// # Validation
//
// ValidateField and Validate run validators synchronously. ValidateFieldAsync
// and ValidateAsync run them in goroutines and return async futures;
// ValidateAsync waits for every field before it settles. Validators always
// see a snapshot of all values, so cross-field rules can read siblings.
// A successful validation clears the field's previous errors.
//
// Rule violations are rendered into messages, by default the violation's own
// Message or through WithMessageFunc. A validator that returns any other
// error, or panics, leaves the error text as the field's only message; the
// failure is logged and reported to the hook set with WithFailureHook.
// Validation errors are stored, never returned.
//
// # Concurrency
//
// State is guarded by a mutex. Overlapping validations of the same field are
// not ordered: the last one to settle wins, and the first one to settle
// clears the field's pending flag. The form-level pending flag is a single
// boolean shared by Wait, HandleSubmit and Submit, so when submissions
// overlap the first one to finish clears it while the others still run.
package form
