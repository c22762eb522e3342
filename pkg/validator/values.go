package validator

import "github.com/spf13/cast"

// Values is the full set of form values a rule is evaluated against.
// Typed accessors coerce loosely typed input (for example strings posted
// by a browser) and return the zero value when the field is missing or
// cannot be converted.
type Values[V any] map[string]V

func (v Values[V]) Has(field string) bool {
	_, ok := v[field]
	return ok
}

func (v Values[V]) Get(field string) (V, bool) {
	val, ok := v[field]
	return val, ok
}

// Any returns the field value boxed as any, nil when missing.
func (v Values[V]) Any(field string) any {
	val, ok := v[field]
	if !ok {
		return nil
	}
	return any(val)
}

func (v Values[V]) String(field string) string {
	return cast.ToString(v.Any(field))
}

func (v Values[V]) Int(field string) int {
	return cast.ToInt(v.Any(field))
}

func (v Values[V]) Float(field string) float64 {
	return cast.ToFloat64(v.Any(field))
}

func (v Values[V]) Bool(field string) bool {
	return cast.ToBool(v.Any(field))
}

// Number reports the field as float64 and whether the conversion succeeded.
func (v Values[V]) Number(field string) (float64, bool) {
	val := v.Any(field)
	if val == nil {
		return 0, false
	}
	n, err := cast.ToFloat64E(val)
	return n, err == nil
}

// Boxed converts the values to Values[any] for rules that are not generic.
func (v Values[V]) Boxed() Values[any] {
	out := make(Values[any], len(v))
	for field, val := range v {
		out[field] = any(val)
	}
	return out
}
