package main

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/dmitrymomot/formstate/pkg/formhttp"
	"github.com/dmitrymomot/formstate/pkg/sanitizer"
	"github.com/dmitrymomot/formstate/pkg/validator"
)

// directory stands in for the user database the availability check queries.
type directory struct {
	taken   []string
	latency time.Duration
}

func (d directory) exists(ctx context.Context, email string) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case <-time.After(d.latency):
	}
	return slices.Contains(d.taken, strings.ToLower(email)), nil
}

func signupForm(dir directory) formhttp.Definition {
	return formhttp.Definition{
		InitialValues: map[string]any{
			"email":    "",
			"password": "",
			"confirm":  "",
			"age":      "",
		},
		Schema: map[string]validator.Schema[any]{
			"email": validator.Compose(
				validator.Tags[any]("required;email"),
				validator.Check(func(ctx context.Context, field string, v validator.Values[any]) error {
					email := v.String(field)
					if email == "" {
						return nil
					}
					taken, err := dir.exists(ctx, email)
					if err != nil {
						return err
					}
					if taken {
						return validator.Fail(field, "is already taken", "validation.taken")
					}
					return nil
				}),
			),
			"password": validator.Tags[any]("required;minlen:8"),
			"confirm":  validator.Tags[any]("required;same:password"),
			"age":      validator.Tags[any]("required;min:18"),
		},
	}
}

func signupSanitizers() map[string]func(string) string {
	return map[string]func(string) string{
		"email": sanitizer.NormalizeEmail,
		"age":   sanitizer.Compose(sanitizer.Trim, sanitizer.MaxLength(3)),
	}
}

var fieldLabels = map[string]map[string]string{
	"en": {
		"fields.email":    "Email",
		"fields.password": "Password",
		"fields.confirm":  "Password confirmation",
		"fields.age":      "Age",
	},
	"de": {
		"fields.email":    "E-Mail",
		"fields.password": "Passwort",
		"fields.confirm":  "Passwortbestätigung",
		"fields.age":      "Alter",
	},
}
