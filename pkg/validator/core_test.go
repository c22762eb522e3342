package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formstate/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		assert.Equal(t, "validation failed: email: is required", errs.Error())
	})

	t.Run("joins multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "password", Message: "too short"})

		msg := errs.Error()
		assert.Contains(t, msg, "email: is required")
		assert.Contains(t, msg, "password: too short")
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "email", Message: "is required", TranslationKey: "validation.required"})
	errs.Add(validator.ValidationError{Field: "email", Message: "invalid format", TranslationKey: "validation.email"})
	errs.Add(validator.ValidationError{Field: "password", Message: "too short"})

	t.Run("Has", func(t *testing.T) {
		assert.True(t, errs.Has("email"))
		assert.False(t, errs.Has("name"))
	})

	t.Run("Get keeps rule order", func(t *testing.T) {
		assert.Equal(t, []string{"is required", "invalid format"}, errs.Get("email"))
		assert.Empty(t, errs.Get("name"))
	})

	t.Run("Fields are unique", func(t *testing.T) {
		assert.Equal(t, []string{"email", "password"}, errs.Fields())
	})

	t.Run("Messages with nil formatter uses raw messages", func(t *testing.T) {
		assert.Equal(t, []string{"is required", "invalid format", "too short"}, errs.Messages(nil))
	})

	t.Run("Messages with formatter", func(t *testing.T) {
		got := errs.Messages(func(e validator.ValidationError) string {
			return e.Field + ":" + e.TranslationKey
		})
		assert.Equal(t, []string{"email:validation.required", "email:validation.email", "password:"}, got)
	})

	t.Run("IsEmpty", func(t *testing.T) {
		assert.False(t, errs.IsEmpty())
		assert.True(t, validator.ValidationErrors{}.IsEmpty())
	})
}

func TestApply(t *testing.T) {
	pass := validator.Rule{Check: func() bool { return true }}
	fail := func(field, msg string) validator.Rule {
		return validator.Rule{
			Check: func() bool { return false },
			Error: validator.ValidationError{Field: field, Message: msg},
		}
	}

	t.Run("returns nil when all rules pass", func(t *testing.T) {
		assert.NoError(t, validator.Apply(pass, pass))
	})

	t.Run("returns nil for no rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})

	t.Run("collects every failure without stopping early", func(t *testing.T) {
		err := validator.Apply(fail("email", "first"), pass, fail("email", "second"))
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, []string{"first", "second"}, verrs.Get("email"))
	})

	t.Run("ignores rules without a check", func(t *testing.T) {
		assert.NoError(t, validator.Apply(validator.Rule{}))
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(nil))
	})

	t.Run("plain error", func(t *testing.T) {
		err := errors.New("boom")
		assert.Nil(t, validator.ExtractValidationErrors(err))
		assert.False(t, validator.IsValidationError(err))
	})

	t.Run("wrapped validation errors", func(t *testing.T) {
		verrs := validator.ValidationErrors{{Field: "age", Message: "too young"}}
		err := fmt.Errorf("signup: %w", verrs)

		assert.True(t, validator.IsValidationError(err))
		assert.Equal(t, verrs, validator.ExtractValidationErrors(err))
	})
}

func TestValidationErrors_Is(t *testing.T) {
	err := fmt.Errorf("signup: %w", validator.ValidationErrors{{Field: "age", Message: "too young"}})
	assert.ErrorIs(t, err, validator.ErrValidationFailed)
	assert.NotErrorIs(t, errors.New("boom"), validator.ErrValidationFailed)
}
