package observability

import "context"

// NoopMetrics is a MetricsRecorder that does nothing.
// Use when metrics are disabled to avoid overhead.
type NoopMetrics struct{}

// Compile-time interface check.
var _ MetricsRecorder = NoopMetrics{}

// RecordTypeRegistered does nothing.
func (NoopMetrics) RecordTypeRegistered(_ context.Context, _ string) {}

// RecordSet does nothing.
func (NoopMetrics) RecordSet(_ context.Context, _ string, _ bool) {}

// RecordLookup does nothing.
func (NoopMetrics) RecordLookup(_ context.Context, _ bool) {}

// RecordTypeMismatch does nothing.
func (NoopMetrics) RecordTypeMismatch(_ context.Context, _, _ string) {}
