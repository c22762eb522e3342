package form_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formstate/pkg/async"
	"github.com/dmitrymomot/formstate/pkg/form"
	"github.com/dmitrymomot/formstate/pkg/validator"
)

func newSignupForm(opts ...form.Option) *form.Form[any] {
	return form.New(form.Options[any]{
		InitialValues:    map[string]any{"email": "", "age": 5},
		ValidationSchema: signupSchema(),
	}, opts...)
}

func TestHandleFocusIn(t *testing.T) {
	t.Parallel()
	f := newSignupForm()
	require.False(t, f.Validate())

	f.HandleFocusIn(form.FieldEvent{Name: "email"})

	assert.Equal(t, []string{}, f.FieldErrors("email"))
	assert.True(t, f.IsTouched("email"))
	assert.True(t, f.Errors().Any["age"])
	assert.False(t, f.IsTouched("age"))

	t.Run("events without a name are ignored", func(t *testing.T) {
		before := f.Snapshot()
		f.HandleFocusIn(form.FieldEvent{})
		f.HandleFocusIn(nil)
		assert.Equal(t, before, f.Snapshot())
	})

	t.Run("unknown field", func(t *testing.T) {
		f.HandleFocusIn(form.FieldEvent{Name: "ghost"})
		_, exists := f.Touched()["ghost"]
		assert.False(t, exists)
	})
}

func TestHandleFocusOut(t *testing.T) {
	t.Parallel()
	f := newSignupForm()

	f.HandleFocusOut(context.Background(), form.FieldEvent{Name: "email"})
	assert.Equal(t, []string{"field is required"}, f.FieldErrors("email"))
	assert.Equal(t, []string{}, f.FieldErrors("age"))

	f.SetValues(map[string]any{"email": "a@b.com", "age": 5})
	f.HandleFocusOut(context.Background(), form.FieldEvent{Name: "email"})
	assert.Equal(t, []string{}, f.FieldErrors("email"))

	t.Run("empty name is ignored", func(t *testing.T) {
		f.HandleFocusOut(context.Background(), form.FieldEvent{})
		f.HandleFocusOut(context.Background(), nil)
		assert.True(t, f.IsValid())
	})
}

func TestHandleSubmit(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	f := form.New(form.Options[any]{
		InitialValues: map[string]any{"email": "", "age": 5},
		ValidationSchema: map[string]validator.Schema[any]{
			"email": validator.Compose(
				validator.Check(func(ctx context.Context, field string, v validator.Values[any]) error {
					<-release
					return nil
				}),
				validator.Tags[any]("required;email"),
			),
			"age": validator.Tags[any]("required;min:18"),
		},
	})

	f.HandleSubmit(context.Background())
	assert.True(t, f.IsFormPending(), "form is pending as soon as submit returns")

	close(release)
	require.Eventually(t, func() bool { return !f.IsFormPending() }, time.Second, time.Millisecond)

	assert.False(t, f.IsValid())
	assert.True(t, f.Errors().Any["email"])
	assert.True(t, f.Errors().Any["age"])
}

// The form pending flag is shared: a Submit finishing during an in-flight
// HandleSubmit clears it before the background validation settles.
func TestOverlappingSubmitsShareFormPending(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	release := make(chan struct{})
	f := form.New(form.Options[any]{
		InitialValues: map[string]any{"email": "a@b.com"},
		ValidationSchema: map[string]validator.Schema[any]{
			"email": validator.Check(func(ctx context.Context, field string, v validator.Values[any]) error {
				if calls.Add(1) == 1 {
					<-release
				}
				return nil
			}),
		},
	})

	f.HandleSubmit(context.Background())
	require.True(t, f.IsFormPending())

	ok, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, f.IsFormPending(), "cleared while the first submit still validates")
	assert.Equal(t, int32(2), calls.Load())

	close(release)
}

func TestSubmit(t *testing.T) {
	t.Parallel()

	t.Run("invalid form skips callback", func(t *testing.T) {
		called := false
		f := form.New(form.Options[any]{
			InitialValues:    map[string]any{"email": "", "age": 5},
			ValidationSchema: signupSchema(),
			OnSubmit: func(ctx context.Context, values map[string]any, validate func() bool, validateAsync func(context.Context) *async.Future[bool]) error {
				called = true
				return nil
			},
		})

		ok, err := f.Submit(context.Background())
		require.NoError(t, err)
		assert.False(t, ok)
		assert.False(t, called)
		assert.False(t, f.IsFormPending())
	})

	t.Run("valid form invokes callback", func(t *testing.T) {
		var got map[string]any
		f := form.New(form.Options[any]{
			InitialValues:    map[string]any{"email": "a@b.com", "age": 20},
			ValidationSchema: signupSchema(),
			OnSubmit: func(ctx context.Context, values map[string]any, validate func() bool, validateAsync func(context.Context) *async.Future[bool]) error {
				got = values
				assert.True(t, validate())
				ok, err := validateAsync(ctx).Await()
				assert.NoError(t, err)
				assert.True(t, ok)
				return nil
			},
		})

		ok, err := f.Submit(context.Background())
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, map[string]any{"email": "a@b.com", "age": 20}, got)
	})

	t.Run("callback error", func(t *testing.T) {
		saveErr := errors.New("db down")
		f := form.New(form.Options[any]{
			InitialValues: map[string]any{"email": "a@b.com"},
			OnSubmit: func(context.Context, map[string]any, func() bool, func(context.Context) *async.Future[bool]) error {
				return saveErr
			},
		})

		ok, err := f.Submit(context.Background())
		assert.True(t, ok)
		assert.ErrorIs(t, err, saveErr)
		assert.ErrorIs(t, err, form.ErrSubmitFailed)
	})

	t.Run("without callback", func(t *testing.T) {
		f := form.New(form.Options[any]{InitialValues: map[string]any{"email": "a@b.com"}})
		ok, err := f.Submit(context.Background())
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("cancelled context", func(t *testing.T) {
		f := newSignupForm()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		ok, err := f.Submit(ctx)
		assert.False(t, ok)
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, f.IsFormPending())
	})
}
