package form

import "slices"

// ErrorsView is a derived, read-only view of the error lists keyed by field.
// It is recomputed on every call to Errors and never shares memory with
// the form.
type ErrorsView struct {
	// Count is the number of messages per field.
	Count map[string]int `json:"count"`
	// First is the first message per field, "" when there is none.
	First map[string]string `json:"first"`
	// Last is the last message per field, "" when there is none.
	Last map[string]string `json:"last"`
	// Any reports whether a field has at least one message.
	Any map[string]bool `json:"any"`
	// All holds every message per field.
	All map[string][]string `json:"all"`
}

// Errors computes the error views for every field.
func (f *Form[V]) Errors() ErrorsView {
	f.mu.RLock()
	defer f.mu.RUnlock()

	view := ErrorsView{
		Count: make(map[string]int, len(f.errors)),
		First: make(map[string]string, len(f.errors)),
		Last:  make(map[string]string, len(f.errors)),
		Any:   make(map[string]bool, len(f.errors)),
		All:   make(map[string][]string, len(f.errors)),
	}

	for field, messages := range f.errors {
		view.Count[field] = len(messages)
		view.Any[field] = len(messages) > 0
		view.All[field] = slices.Clone(messages)
		if view.All[field] == nil {
			view.All[field] = []string{}
		}
		if len(messages) > 0 {
			view.First[field] = messages[0]
			view.Last[field] = messages[len(messages)-1]
		} else {
			view.First[field] = ""
			view.Last[field] = ""
		}
	}

	return view
}

// FieldErrors returns a copy of the messages recorded for field.
func (f *Form[V]) FieldErrors(field string) []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Clone(f.errors[field])
}

// IsValid reports whether every field has an empty error list.
// A form without fields is valid.
func (f *Form[V]) IsValid() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.isValid()
}

// IsInvalid is the negation of IsValid.
func (f *Form[V]) IsInvalid() bool {
	return !f.IsValid()
}

func (f *Form[V]) isValid() bool {
	for _, messages := range f.errors {
		if len(messages) > 0 {
			return false
		}
	}
	return true
}

// ClearFieldErrors empties the error list of field.
// Unknown fields are ignored.
func (f *Form[V]) ClearFieldErrors(field string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clearField(field)
}

// ClearErrors empties the error lists of the given fields, or of every
// field when called without arguments.
func (f *Form[V]) ClearErrors(fields ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(fields) == 0 {
		for field := range f.errors {
			f.errors[field] = []string{}
		}
		return
	}
	for _, field := range fields {
		f.clearField(field)
	}
}

func (f *Form[V]) clearField(field string) {
	if _, ok := f.errors[field]; ok {
		f.errors[field] = []string{}
	}
}
