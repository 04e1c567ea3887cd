// Package observability provides logging and metrics helpers for typedmap.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//
// Both are opt-in and have no-op behavior when disabled.
package observability

import (
	"log/slog"
)

// EnrichLogger adds registry and map context to a logger.
// Empty values are omitted.
//
// Example:
//
//	enriched := EnrichLogger(logger, reg.InstanceID(), "settings")
//	enriched.Debug("value stored") // includes registry_id and map
func EnrichLogger(logger *slog.Logger, registryID, mapName string) *slog.Logger {
	if logger == nil {
		return nil
	}
	var attrs []any
	if registryID != "" {
		attrs = append(attrs, slog.String("registry_id", registryID))
	}
	if mapName != "" {
		attrs = append(attrs, slog.String("map", mapName))
	}
	if len(attrs) == 0 {
		return logger
	}
	return logger.With(attrs...)
}

// LogTypeRegistered logs the first registration of a type.
func LogTypeRegistered(logger *slog.Logger, typeName string, typeID uint64) {
	if logger == nil {
		return
	}
	logger.Debug("type registered",
		slog.String("type", typeName),
		slog.Uint64("type_id", typeID),
	)
}

// LogReplace logs a Set that replaced an entry holding a different type.
func LogReplace(logger *slog.Logger, key, oldType, newType string) {
	if logger == nil {
		return
	}
	logger.Debug("entry replaced with different type",
		slog.String("key", key),
		slog.String("old_type", oldType),
		slog.String("new_type", newType),
	)
}

// LogTypeMismatch logs a typed lookup that found a value of another type.
func LogTypeMismatch(logger *slog.Logger, key, expected, actual string) {
	if logger == nil {
		return
	}
	logger.Warn("type mismatch",
		slog.String("key", key),
		slog.String("expected", expected),
		slog.String("actual", actual),
	)
}
