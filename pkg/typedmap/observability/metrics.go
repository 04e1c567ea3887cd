package observability

import (
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records typedmap metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordTypeRegistered records the first registration of a type.
	RecordTypeRegistered(ctx context.Context, typeName string)

	// RecordSet records a value stored into a map.
	RecordSet(ctx context.Context, typeName string, replaced bool)

	// RecordLookup records a typed or untyped lookup and whether the key was present.
	RecordLookup(ctx context.Context, hit bool)

	// RecordTypeMismatch records a typed lookup that failed the type check.
	RecordTypeMismatch(ctx context.Context, expected, actual string)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	typesRegistered metric.Int64Counter
	sets            metric.Int64Counter
	lookups         metric.Int64Counter
	mismatches      metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics lazily initializes the shared OTel instruments.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("typedmap")

	typesRegistered, err := meter.Int64Counter("typedmap.registry.types",
		metric.WithDescription("Number of distinct types assigned a type ID"),
	)
	if err != nil {
		return nil, err
	}

	sets, err := meter.Int64Counter("typedmap.map.sets",
		metric.WithDescription("Number of values stored"),
	)
	if err != nil {
		return nil, err
	}

	lookups, err := meter.Int64Counter("typedmap.map.lookups",
		metric.WithDescription("Number of key lookups"),
	)
	if err != nil {
		return nil, err
	}

	mismatches, err := meter.Int64Counter("typedmap.map.type_mismatches",
		metric.WithDescription("Number of typed lookups rejected by the type check"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		typesRegistered: typesRegistered,
		sets:            sets,
		lookups:         lookups,
		mismatches:      mismatches,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordTypeRegistered records a type registration.
func (m *otelMetrics) RecordTypeRegistered(ctx context.Context, typeName string) {
	m.typesRegistered.Add(ctx, 1, metric.WithAttributes(attribute.String("type", typeName)))
}

// RecordSet records a stored value.
func (m *otelMetrics) RecordSet(ctx context.Context, typeName string, replaced bool) {
	m.sets.Add(ctx, 1, metric.WithAttributes(
		attribute.String("type", typeName),
		attribute.Bool("replaced", replaced),
	))
}

// RecordLookup records a lookup.
func (m *otelMetrics) RecordLookup(ctx context.Context, hit bool) {
	m.lookups.Add(ctx, 1, metric.WithAttributes(attribute.Bool("hit", hit)))
}

// RecordTypeMismatch records a failed type check.
func (m *otelMetrics) RecordTypeMismatch(ctx context.Context, expected, actual string) {
	m.mismatches.Add(ctx, 1, metric.WithAttributes(
		attribute.String("expected", expected),
		attribute.String("actual", actual),
	))
}
