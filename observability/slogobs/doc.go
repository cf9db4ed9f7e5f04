// Package slogobs provides an observability.Observer implementation backed by
// Go's standard library log/slog package. It routes span events and log
// records through a structured slog.Logger, making it suitable for
// lightweight observability without external dependencies.
// The main entry point is [New]; output and verbosity can be tuned with
// [WithLevel], [WithOutput], and [WithLogger].
package slogobs
