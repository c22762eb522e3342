package form

import "maps"

// FormPendingKey is the key of the form-level flag in the map returned by
// Pending.
const FormPendingKey = "form"

func (f *Form[V]) IsFormPending() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.formPending
}

// Wait marks the whole form as pending.
func (f *Form[V]) Wait() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.formPending = true
}

// Continue clears the form-level pending flag.
func (f *Form[V]) Continue() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.formPending = false
}

// WaitForField marks field as pending. Unknown fields are ignored.
func (f *Form[V]) WaitForField(field string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setFieldPending(field, true)
}

// ContinueForField clears the pending flag of field. Unknown fields are ignored.
func (f *Form[V]) ContinueForField(field string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setFieldPending(field, false)
}

// IsFieldPending reports whether a validation of field is in flight.
func (f *Form[V]) IsFieldPending(field string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.pending[field]
}

// Pending returns the form-level flag under FormPendingKey merged with the
// per-field flags. Field entries are written last, so a field named "form"
// shadows the form-level flag.
func (f *Form[V]) Pending() map[string]bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make(map[string]bool, len(f.pending)+1)
	out[FormPendingKey] = f.formPending
	maps.Copy(out, f.pending)
	return out
}

func (f *Form[V]) setFieldPending(field string, pending bool) {
	if _, ok := f.pending[field]; ok {
		f.pending[field] = pending
	}
}
