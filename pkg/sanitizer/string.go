package sanitizer

import (
	"html"
	"regexp"
	"strings"
	"unicode"
)

var (
	dotRegex        = regexp.MustCompile(`\.+`)
	nonDigitRegex   = regexp.MustCompile(`\D`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
	htmlTagRegex    = regexp.MustCompile(`<[^>]*>`)
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// TrimToLower removes leading and trailing whitespace and converts to lowercase.
func TrimToLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// MaxLength returns a transform truncating input to maxLen runes.
func MaxLength(maxLen int) func(string) string {
	return func(s string) string {
		if maxLen <= 0 {
			return ""
		}
		runes := []rune(s)
		if len(runes) <= maxLen {
			return s
		}
		return string(runes[:maxLen])
	}
}

// RemoveExtraWhitespace collapses runs of whitespace into a single space and trims.
func RemoveExtraWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// RemoveControlChars removes control characters except common whitespace.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// StripHTML removes HTML tags and unescapes HTML entities.
func StripHTML(s string) string {
	return html.UnescapeString(htmlTagRegex.ReplaceAllString(s, ""))
}

// SingleLine replaces line breaks with spaces and normalizes whitespace.
func SingleLine(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return RemoveExtraWhitespace(s)
}

// NormalizeEmail trims and lowercases an address and consolidates
// consecutive dots in the local part. Input without exactly one "@" is only
// trimmed and lowercased.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}

	local = strings.Trim(dotRegex.ReplaceAllString(local, "."), ".")
	return local + "@" + domain
}

// NormalizePhone keeps the digits of a phone number and a leading "+".
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	digits := nonDigitRegex.ReplaceAllString(phone, "")
	if strings.HasPrefix(phone, "+") {
		return "+" + digits
	}
	return digits
}

// UserInput removes control characters, trims and caps input at 10000 runes.
func UserInput(s string) string {
	return Apply(s, RemoveControlChars, Trim, MaxLength(10000))
}
