// Package utils provides shared low-level helpers used throughout the
// transformrs internals: the single HTTP POST round-trip every adapter call
// is built on, and string helpers for log output and error snippets.
//
// Key entry points: [PostJSON] for the JSON round-trip, with [WithBearer] and
// [WithHeader] request options, and [TruncateString] for bounded snippets.
package utils
