package typedmap

import (
	"context"
	"log/slog"

	"github.com/randalmurphal/typedmap/pkg/typedmap/observability"
	"github.com/randalmurphal/typedmap/pkg/typedmap/registry"
)

// Map stores values of arbitrary types under string keys.
//
// Map is not safe for concurrent use: callers that share a Map between
// goroutines must serialize Set and Get themselves. A Map must not be copied
// after first use; use Clone instead. The zero value is an empty map using
// registry.Default().
type Map struct {
	_ noCopy

	entries map[string]Slot
	reg     *registry.Registry
	name    string
	logger  *slog.Logger
	metrics observability.MetricsRecorder
}

// New creates an empty Map.
func New(opts ...Option) *Map {
	m := &Map{
		entries: make(map[string]Slot),
		reg:     registry.Default(),
		logger:  slog.Default(),
		metrics: observability.NoopMetrics{},
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = observability.EnrichLogger(m.logger, m.reg.InstanceID(), m.name)
	return m
}

// TypeIDOf returns the TypeID of T in the default registry.
func TypeIDOf[T any]() registry.TypeID {
	return registry.Of[T](registry.Default())
}

// Set stores a copy of v under key, replacing any previous entry whatever
// its type.
func Set[T any](m *Map, key string, v T) {
	m.store(key, NewSlot(m.Registry(), v))
}

// SetFunc stores the value returned by ctor under key.
func SetFunc[T any](m *Map, key string, ctor func() T) {
	m.store(key, NewSlot(m.Registry(), ctor()))
}

// SetZero stores the zero value of T under key.
func SetZero[T any](m *Map, key string) {
	m.store(key, ZeroSlot[T](m.Registry()))
}

// GetAs returns a pointer to the T stored under key.
//
// An absent key yields (nil, nil). A key holding another type yields a
// *TypeMismatchError. The pointer is valid until the entry is replaced.
func GetAs[T any](m *Map, key string) (*T, error) {
	s, ok := m.Lookup(key)
	if !ok {
		return nil, nil
	}
	v, mismatch := valueOf[T](s)
	if mismatch != nil {
		mismatch.Key = key
		observability.LogTypeMismatch(m.logger, key, typeName(mismatch.ExpectedType), typeName(mismatch.ActualType))
		m.recorder().RecordTypeMismatch(context.Background(), typeName(mismatch.ExpectedType), typeName(mismatch.ActualType))
		return nil, mismatch
	}
	return v, nil
}

// MustGetAs is like GetAs but panics on a type mismatch.
// It returns nil for an absent key.
func MustGetAs[T any](m *Map, key string) *T {
	v, err := GetAs[T](m, key)
	if err != nil {
		panic(err)
	}
	return v
}

// Get returns the slot stored under key, or nil if the key is absent.
// It never modifies the map.
func (m *Map) Get(key string) Slot {
	s, _ := m.Lookup(key)
	return s
}

// At is index-style shorthand for Get.
func (m *Map) At(key string) Slot {
	return m.Get(key)
}

// Lookup returns the slot stored under key and whether it was present.
func (m *Map) Lookup(key string) (Slot, bool) {
	s, ok := m.entries[key]
	m.recorder().RecordLookup(context.Background(), ok)
	return s, ok
}

// TypeID returns the TypeID of the value stored under key.
// It returns a *KeyError wrapping ErrKeyNotFound if the key is absent.
func (m *Map) TypeID(key string) (registry.TypeID, error) {
	s, ok := m.entries[key]
	if !ok {
		return 0, &KeyError{Key: key, Op: "type id"}
	}
	return s.TypeID(), nil
}

// Has reports whether key is set.
func (m *Map) Has(key string) bool {
	_, ok := m.entries[key]
	return ok
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.entries)
}

// Registry returns the registry that assigns TypeIDs for this map.
func (m *Map) Registry() *registry.Registry {
	if m.reg == nil {
		m.reg = registry.Default()
	}
	return m.reg
}

// Clone returns an independent copy of m with the same registry and
// options. Each stored value is copied by assignment, so pointers, slices
// and maps inside values are shared with the original.
func (m *Map) Clone() *Map {
	c := &Map{
		entries: make(map[string]Slot, len(m.entries)),
		reg:     m.reg,
		name:    m.name,
		logger:  m.logger,
		metrics: m.metrics,
	}
	for k, s := range m.entries {
		c.entries[k] = s.clone()
	}
	return c
}

func (m *Map) store(key string, s Slot) {
	if m.entries == nil {
		m.entries = make(map[string]Slot)
	}
	old, replaced := m.entries[key]
	m.entries[key] = s

	if replaced && old.TypeID() != s.TypeID() {
		observability.LogReplace(m.logger, key, old.Type().String(), s.Type().String())
	}
	m.recorder().RecordSet(context.Background(), s.Type().String(), replaced)
}

func (m *Map) recorder() observability.MetricsRecorder {
	if m.metrics == nil {
		return observability.NoopMetrics{}
	}
	return m.metrics
}

// noCopy flags copies of a Map after first use under go vet's copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
