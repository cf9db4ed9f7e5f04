// Package observability defines the tracing and structured-logging interfaces
// used by the provider adapters, together with the context plumbing that
// carries an [Observer] and [Span] through a call. The package holds
// interfaces only; a ready-made slog-backed implementation lives in the
// slogobs subpackage. When no observer is attached to the context the
// adapters emit nothing, so instrumentation is strictly opt-in.
package observability
