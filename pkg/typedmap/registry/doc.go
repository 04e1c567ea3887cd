// Package registry assigns a unique, stable TypeID to each distinct Go type.
//
// A Registry hands out IDs from an atomic counter the first time a type is
// seen and caches them, so every later request for the same type returns the
// same ID. IDs from different registries are unrelated; create a fresh
// Registry to get an isolated ID space (useful in tests).
//
// # Basic Usage
//
//	r := registry.New()
//	intID := registry.Of[int](r)
//	strID := registry.Of[string](r)
//	// intID != strID, and registry.Of[int](r) == intID forever
//
// The process-wide registry is available through Default:
//
//	id := registry.Of[int](registry.Default())
//
// # Thread Safety
//
// All Registry methods are safe for concurrent use. Concurrent first
// requests for the same type observe the same ID: the per-type cache entry
// is created exactly once under a write lock, and the counter is only
// advanced by the goroutine that creates it.
package registry
