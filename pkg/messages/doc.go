// Package messages renders validation errors into human readable,
// translated messages.
//
// A Catalog stores templates per language under dotted keys matching the
// translation keys of validator rules ("validation.required",
// "validation.min", ...). Templates use %{name} placeholders filled from the
// rule's TranslationValues:
//
//	en:
//	  fields:
//	    email: Email address
//	  validation:
//	    required: "%{field} is required"
//
// When a "fields.<name>" key exists it replaces the raw field name in
// %{field} and %{other} placeholders.
//
// Catalogs load from YAML (gopkg.in/yaml.v3), JSON or an fs.FS. NewDefault
// returns a catalog with English and German messages for the built-in rules.
//
// # Usage with forms
//
//	catalog, _ := messages.NewDefault()
//	lang := catalog.Match(r.Header.Get("Accept-Language"))
//	f := form.New(opts, form.WithMessageFunc(catalog.Message(lang)))
//
// Match negotiates the language with golang.org/x/text/language. Lookups fall
// back from a regional variant to its base language and then to the default
// language; keys missing everywhere keep the rule's own message.
package messages
