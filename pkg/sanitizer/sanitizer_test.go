package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formstate/pkg/sanitizer"
)

func TestTransforms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		transform func(string) string
		input     string
		want      string
	}{
		{"trim", sanitizer.Trim, "  a b  ", "a b"},
		{"trim to lower", sanitizer.TrimToLower, " ABC ", "abc"},
		{"max length", sanitizer.MaxLength(3), "héllo", "hél"},
		{"max length zero", sanitizer.MaxLength(0), "abc", ""},
		{"extra whitespace", sanitizer.RemoveExtraWhitespace, " a \t\n b ", "a b"},
		{"control chars", sanitizer.RemoveControlChars, "a\x00b\x1bc\n", "abc\n"},
		{"strip html", sanitizer.StripHTML, "<b>Tom &amp; Jerry</b>", "Tom & Jerry"},
		{"single line", sanitizer.SingleLine, "a\r\nb\nc", "a b c"},
		{"email", sanitizer.NormalizeEmail, "  John..Doe.@Example.COM ", "john.doe@example.com"},
		{"email without at", sanitizer.NormalizeEmail, " Foo ", "foo"},
		{"phone", sanitizer.NormalizePhone, "+1 (555) 123-4567", "+15551234567"},
		{"phone local", sanitizer.NormalizePhone, "555-1234", "5551234"},
		{"user input", sanitizer.UserInput, " \x00hi\x07 ", "hi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.transform(tt.input))
		})
	}
}

func TestCompose(t *testing.T) {
	t.Parallel()
	clean := sanitizer.Compose(sanitizer.StripHTML, sanitizer.SingleLine, sanitizer.MaxLength(5))
	assert.Equal(t, "a b c", clean("<p>a\nb</p>  c d"))
	assert.Equal(t, "x", sanitizer.Apply("x"))
}

func TestFields(t *testing.T) {
	t.Parallel()
	values := map[string]any{
		"email": " A@B.COM ",
		"tags":  []string{" x ", "y "},
		"age":   float64(20),
		"note":  " keep ",
	}

	out := sanitizer.Fields(values, map[string]func(string) string{
		"email": sanitizer.NormalizeEmail,
		"tags":  sanitizer.Trim,
		"age":   sanitizer.Trim,
	})

	assert.Equal(t, map[string]any{
		"email": "a@b.com",
		"tags":  []string{"x", "y"},
		"age":   float64(20),
		"note":  " keep ",
	}, out)
	assert.Equal(t, " A@B.COM ", values["email"])
}
