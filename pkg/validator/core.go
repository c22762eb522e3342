package validator

import (
	"errors"
	"slices"
	"strings"
)

// Numeric lists the types numeric rules accept.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ValidationError is one rule violation. Message is the English fallback;
// TranslationKey and TranslationValues let a catalog render it in another
// language.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors is the error returned for rule violations, in the order
// the rules were evaluated. It matches ErrValidationFailed with errors.Is.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidationFailed.Error()
	}

	var b strings.Builder
	b.WriteString(ErrValidationFailed.Error())
	for i, err := range ve {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(err.Field)
		b.WriteString(": ")
		b.WriteString(err.Message)
	}
	return b.String()
}

func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	return slices.ContainsFunc(ve, func(err ValidationError) bool { return err.Field == field })
}

// Get returns the raw messages recorded for field, in rule order.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Messages renders every error with format, preserving order.
// A nil format falls back to the raw Message.
func (ve ValidationErrors) Messages(format func(ValidationError) string) []string {
	if format == nil {
		format = func(err ValidationError) string { return err.Message }
	}
	messages := make([]string, len(ve))
	for i, err := range ve {
		messages[i] = format(err)
	}
	return messages
}

// Fields returns the distinct field names in order of first appearance.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	for _, err := range ve {
		if !slices.Contains(fields, err.Field) {
			fields = append(fields, err.Field)
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule pairs a deferred check with the violation it reports.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply evaluates every rule and returns all failures as ValidationErrors,
// or nil. Rules without a Check are skipped.
func Apply(rules ...Rule) error {
	var failed ValidationErrors
	for _, rule := range rules {
		if rule.Check != nil && !rule.Check() {
			failed = append(failed, rule.Error)
		}
	}
	if failed.IsEmpty() {
		return nil
	}
	return failed
}

// ExtractValidationErrors returns the ValidationErrors wrapped in err, or nil.
func ExtractValidationErrors(err error) ValidationErrors {
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs
	}
	return nil
}

// IsValidationError reports whether err wraps ValidationErrors.
func IsValidationError(err error) bool {
	var verrs ValidationErrors
	return errors.As(err, &verrs)
}
