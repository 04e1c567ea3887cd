package registry

import (
	"context"
	"log/slog"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/randalmurphal/typedmap/pkg/typedmap/observability"
)

// TypeID identifies a Go type within a Registry.
type TypeID uint64

// anyType stands in for a nil reflect.Type.
var anyType = reflect.TypeFor[any]()

// Registry maps Go types to TypeIDs.
// It uses sync.RWMutex for read-heavy workloads: lookups of known types
// only take the read lock.
type Registry struct {
	mu     sync.RWMutex
	ids    map[reflect.Type]TypeID
	types  map[TypeID]reflect.Type
	nextID atomic.Uint64

	instanceID string
	name       string
	logger     *slog.Logger
	metrics    observability.MetricsRecorder
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used to report type registrations.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(r *Registry) {
		if m != nil {
			r.metrics = m
		}
	}
}

// WithName labels the registry in log output.
func WithName(name string) Option {
	return func(r *Registry) {
		r.name = name
	}
}

// New creates an empty registry. The first type registered gets ID 0.
func New(opts ...Option) *Registry {
	r := &Registry{
		ids:        make(map[reflect.Type]TypeID),
		types:      make(map[TypeID]reflect.Type),
		instanceID: uuid.New().String(),
		logger:     slog.Default(),
		metrics:    observability.NoopMetrics{},
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = observability.EnrichLogger(r.logger, r.instanceID, "")
	if r.name != "" {
		r.logger = r.logger.With(slog.String("registry", r.name))
	}
	return r
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide registry, creating it on first use.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = New(WithName("default"))
	})
	return defaultRegistry
}

// Of returns the TypeID of T in r, registering T if needed.
func Of[T any](r *Registry) TypeID {
	return r.ID(reflect.TypeFor[T]())
}

// ID returns the TypeID for t, registering t if it has not been seen.
// A nil t is treated as the empty interface type.
func (r *Registry) ID(t reflect.Type) TypeID {
	if t == nil {
		t = anyType
	}

	// Fast path: already registered
	r.mu.RLock()
	id, ok := r.ids[t]
	r.mu.RUnlock()
	if ok {
		return id
	}

	// Slow path: register with write lock
	r.mu.Lock()
	if id, ok := r.ids[t]; ok {
		r.mu.Unlock()
		return id
	}
	id = TypeID(r.nextID.Add(1) - 1)
	r.ids[t] = id
	r.types[id] = t
	r.mu.Unlock()

	observability.LogTypeRegistered(r.logger, t.String(), uint64(id))
	r.metrics.RecordTypeRegistered(context.Background(), t.String())
	return id
}

// Lookup returns the TypeID for t without registering it.
func (r *Registry) Lookup(t reflect.Type) (TypeID, bool) {
	if t == nil {
		t = anyType
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.ids[t]
	return id, ok
}

// TypeOf returns the type registered under id.
func (r *Registry) TypeOf(id TypeID) (reflect.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.types[id]
	return t, ok
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ids)
}

// InstanceID returns the unique identifier of this registry instance.
func (r *Registry) InstanceID() string {
	return r.instanceID
}

// Name returns the label set with WithName.
func (r *Registry) Name() string {
	return r.name
}

// Logger returns the registry's logger, enriched with its instance ID.
func (r *Registry) Logger() *slog.Logger {
	return r.logger
}

// Metrics returns the registry's metrics recorder.
func (r *Registry) Metrics() observability.MetricsRecorder {
	return r.metrics
}
