package typedmap

import (
	"log/slog"

	"github.com/randalmurphal/typedmap/pkg/typedmap/observability"
	"github.com/randalmurphal/typedmap/pkg/typedmap/registry"
)

// Option configures a Map.
type Option func(*Map)

// WithRegistry sets the registry that assigns TypeIDs to stored values.
// Maps sharing a registry agree on TypeIDs; the default is registry.Default().
func WithRegistry(r *registry.Registry) Option {
	return func(m *Map) {
		if r != nil {
			m.reg = r
		}
	}
}

// WithLogger sets the logger. It is enriched with the registry instance ID
// and the map name.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Map) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(rec observability.MetricsRecorder) Option {
	return func(m *Map) {
		if rec != nil {
			m.metrics = rec
		}
	}
}

// WithName labels the map in log output.
func WithName(name string) Option {
	return func(m *Map) {
		m.name = name
	}
}
