// Package optional distinguishes "field absent" from "field null" in
// PATCH bodies, which encoding/json pointers cannot express on their
// own. Absent fields leave the stored value untouched; explicit nulls
// clear it.
package optional

import "encoding/json"

type Value[T any] struct {
	set   bool
	value T
}

// Of builds a set value, mainly for tests.
func Of[T any](v T) Value[T] {
	return Value[T]{set: true, value: v}
}

func (v *Value[T]) UnmarshalJSON(data []byte) error {
	v.set = true
	if string(data) == "null" {
		var zero T
		v.value = zero
		return nil
	}
	return json.Unmarshal(data, &v.value)
}

func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.set {
		return []byte("null"), nil
	}
	return json.Marshal(v.value)
}

// IsSet reports whether the field appeared in the body at all.
func (v Value[T]) IsSet() bool {
	return v.set
}

// Get returns the decoded value; the zero value when unset or null.
func (v Value[T]) Get() T {
	return v.value
}
