// SPDX-License-Identifier: MIT
//
// File: attrs.go
// Role: Attribute store and typed accessors.
// Policy:
//   - Stored maps are never mutated; Clone/Merge always allocate.
//   - Typed accessors never panic on a mismatched type.

package core

import "maps"

// Attrs is the attribute store owned by every node and edge.
//
// Values are untyped; a single attribute key is expected to hold values of one
// type across the graph. Mixing types under one key is caller error and makes
// Get report ok=false for the mismatching entries.
type Attrs map[string]any

// Clone returns a shallow copy of a. A nil store clones to an empty, non-nil one.
// Complexity: O(len(a)).
func (a Attrs) Clone() Attrs {
	out := make(Attrs, len(a))
	maps.Copy(out, a)

	return out
}

// Merge returns a new store holding a's entries overwritten by other's.
// Keys present only in a are preserved. Neither input is modified.
// Complexity: O(len(a)+len(other)).
func (a Attrs) Merge(other Attrs) Attrs {
	out := make(Attrs, len(a)+len(other))
	maps.Copy(out, a)
	maps.Copy(out, other)

	return out
}

// Has reports whether key is present.
func (a Attrs) Has(key string) bool {
	_, ok := a[key]
	return ok
}

// With returns a copy of a with key set to value.
func (a Attrs) With(key string, value any) Attrs {
	out := a.Clone()
	out[key] = value

	return out
}

// Get returns the value stored under key as a T.
// ok is false when the key is absent or holds a value of another type.
func Get[T any](a Attrs, key string) (T, bool) {
	v, ok := a[key]
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := v.(T)

	return t, ok
}

// GetOr returns the value stored under key as a T, or def when it is absent
// or of another type.
func GetOr[T any](a Attrs, key string, def T) T {
	if t, ok := Get[T](a, key); ok {
		return t
	}

	return def
}
