// Package formhttp serves a form definition over HTTP.
//
// A Handler keeps no form in memory between requests. Each request loads
// the form's draft from a draft.Store, rebuilds a form.Form from the
// definition, restores the saved state, merges the submitted values, applies
// one event and saves the new snapshot:
//
//	h := formhttp.NewHandler(formhttp.Definition{
//		InitialValues: map[string]any{"email": "", "age": ""},
//		Schema: map[string]validator.Schema[any]{
//			"email": validator.Tags[any]("required;email"),
//			"age":   validator.Tags[any]("required;min:18"),
//		},
//	}, draft.NewMemoryStore(time.Minute),
//		formhttp.WithCatalog(catalog),
//		formhttp.WithSanitizers(map[string]func(string) string{"email": sanitizer.NormalizeEmail}),
//	)
//	r.Mount("/signup", h.Routes())
//
// Events carry the field they concern and the values entered so far, either
// as DataStar signals ({"field": "email", "values": {...}}), as a JSON body
// or as a urlencoded form where "field" sits next to the values. Only values
// of fields the form knows are taken.
//
// DataStar requests are answered with a signal patch of the View, so
// templates can bind inputs to $values.email and show $errors.first.email.
// Other clients get the View wrapped in a JSON Response; a failed submit
// answers 422 with the messages of every field in the error details.
package formhttp
