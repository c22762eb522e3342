package form

import (
	"maps"
	"slices"
)

// State is a plain copy of everything a form tracks, suitable for
// rendering or serialising between requests.
type State[V any] struct {
	Values  map[string]V        `json:"values"`
	Errors  map[string][]string `json:"errors"`
	Touched map[string]bool     `json:"touched"`
	Pending map[string]bool     `json:"pending"`
	Valid   bool                `json:"valid"`
}

// Snapshot returns the current state. The result shares no memory with the form.
func (f *Form[V]) Snapshot() State[V] {
	f.mu.RLock()
	defer f.mu.RUnlock()

	errs := make(map[string][]string, len(f.errors))
	for field, messages := range f.errors {
		errs[field] = slices.Clone(messages)
		if errs[field] == nil {
			errs[field] = []string{}
		}
	}

	pending := make(map[string]bool, len(f.pending)+1)
	pending[FormPendingKey] = f.formPending
	maps.Copy(pending, f.pending)

	return State[V]{
		Values:  maps.Clone(f.values),
		Errors:  errs,
		Touched: maps.Clone(f.touched),
		Pending: pending,
		Valid:   f.isValid(),
	}
}

// Restore loads values, errors and touched flags from a previously taken
// snapshot. Entries for unknown fields are ignored and pending flags are
// not restored. A nil Values map keeps the current values.
func (f *Form[V]) Restore(s State[V]) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if s.Values != nil {
		f.values = maps.Clone(s.Values)
	}
	for field, messages := range s.Errors {
		if _, ok := f.errors[field]; ok {
			f.errors[field] = append([]string{}, messages...)
		}
	}
	for field, touched := range s.Touched {
		if _, ok := f.touched[field]; ok {
			f.touched[field] = touched
		}
	}
}
