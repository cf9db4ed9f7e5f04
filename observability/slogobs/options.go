package slogobs

import (
	"io"
	"log/slog"
	"os"
)

type config struct {
	level  slog.Level
	output io.Writer
	logger *slog.Logger
	json   bool
}

// Option configures the observer returned by [New].
type Option func(*config)

// WithLevel sets the minimum log level. Defaults to slog.LevelInfo.
func WithLevel(level slog.Level) Option {
	return func(c *config) { c.level = level }
}

// WithOutput sets the destination for log records. Defaults to os.Stderr.
func WithOutput(w io.Writer) Option {
	return func(c *config) { c.output = w }
}

// WithJSON switches output to JSON records instead of logfmt-style text.
func WithJSON() Option {
	return func(c *config) { c.json = true }
}

// WithLogger uses an existing slog.Logger instead of constructing one.
// When set, the level, output, and JSON options are ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

func applyOptions(opts ...Option) config {
	cfg := config{
		level:  slog.LevelInfo,
		output: os.Stderr,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
