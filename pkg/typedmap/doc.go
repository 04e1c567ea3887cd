// Package typedmap provides a map from string keys to values of arbitrary,
// independently chosen types, with type-checked retrieval.
//
// Each stored value lives in a Slot tagged with the TypeID of its type (see
// package registry). Typed lookups compare that TypeID with the requested
// type's before handing out a pointer, and report a *TypeMismatchError when
// they differ.
//
// # Basic Usage
//
//	m := typedmap.New()
//	typedmap.Set(m, "count", 42)
//	typedmap.Set(m, "name", "gopher")
//
//	n, err := typedmap.GetAs[int](m, "count") // *n == 42
//	_, err = typedmap.GetAs[string](m, "count") // errors.Is(err, typedmap.ErrTypeMismatch)
//	p, err := typedmap.GetAs[int](m, "missing") // p == nil, err == nil
//
// Go methods cannot take type parameters, so the typed operations (Set,
// SetFunc, SetZero, GetAs, MustGetAs) are package functions taking the Map.
//
// # Absent Keys
//
// Lookups never modify the map. Get and At return nil for an absent key,
// GetAs returns (nil, nil), and TypeID returns an error wrapping
// ErrKeyNotFound.
//
// # Replacement
//
// Set replaces any existing entry under the key, even one of a different
// type. Pointers obtained from GetAs before the replacement keep referring
// to the old value.
//
// # Thread Safety
//
// TypeID assignment is safe for concurrent use. A Map itself is not
// synchronized; guard shared maps with a mutex.
//
// # Copying
//
// Maps are used through pointers and must not be copied by value. Clone
// produces an independent map whose values are copied by assignment.
package typedmap
