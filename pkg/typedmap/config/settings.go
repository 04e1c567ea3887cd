package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/randalmurphal/typedmap/pkg/typedmap"
	"github.com/randalmurphal/typedmap/pkg/typedmap/observability"
	"github.com/randalmurphal/typedmap/pkg/typedmap/registry"
)

// Settings configures a Map and its Registry.
type Settings struct {
	// Name labels the map and registry in log output.
	Name string `yaml:"name" json:"name"`

	// Metrics enables OpenTelemetry metrics.
	Metrics bool `yaml:"metrics" json:"metrics"`

	// LogLevel is one of debug, info, warn, error (case-insensitive).
	LogLevel string `yaml:"log_level" json:"log_level"`
}

// Default returns the settings used when a field is not specified.
func Default() Settings {
	return Settings{LogLevel: "info"}
}

// Validate reports an invalid log level.
func (s Settings) Validate() error {
	if _, err := s.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel. An empty level means info.
func (s Settings) Level() (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(s.LogLevel) == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q: %w", s.LogLevel, err)
	}
	return level, nil
}

// Logger returns logger if non-nil, otherwise a text logger on stderr at
// the configured level.
func (s Settings) Logger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	level, _ := s.Level()
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func (s Settings) metrics() observability.MetricsRecorder {
	if s.Metrics {
		return observability.NewMetricsRecorder()
	}
	return observability.NoopMetrics{}
}

// RegistryOptions converts the settings into registry options.
func (s Settings) RegistryOptions(logger *slog.Logger) []registry.Option {
	return []registry.Option{
		registry.WithName(s.Name),
		registry.WithLogger(s.Logger(logger)),
		registry.WithMetrics(s.metrics()),
	}
}

// MapOptions converts the settings into map options. The map uses the
// default registry unless a WithRegistry option is appended.
func (s Settings) MapOptions(logger *slog.Logger) []typedmap.Option {
	return []typedmap.Option{
		typedmap.WithName(s.Name),
		typedmap.WithLogger(s.Logger(logger)),
		typedmap.WithMetrics(s.metrics()),
	}
}

// NewMap creates a Map with its own Registry, both configured from s.
func (s Settings) NewMap(logger *slog.Logger) *typedmap.Map {
	logger = s.Logger(logger)
	reg := registry.New(s.RegistryOptions(logger)...)
	return typedmap.New(append(s.MapOptions(logger), typedmap.WithRegistry(reg))...)
}
