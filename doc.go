// Package transformrs normalizes access to multiple third-party AI provider
// HTTP APIs behind a unified request/response model. It currently covers two
// operations, each implemented as an independent adapter in its own
// subpackage: chat completion (chat) and text-to-speech (tts).
//
// The root package holds the shared vocabulary both adapters build on:
// the closed [Provider] set, the [Key] credential value, the [KeyStore]
// loaded from a .env-style secrets file, and the typed error kinds
// ([APIError], [MalformedResponseError], [UnsupportedOperationError])
// that replace any abort-on-bad-input behavior. A provider response can
// always be inspected raw before structured extraction, and a failed
// extraction is always a recoverable error value, never a crash.
//
// Each call issues exactly one HTTP POST. The library imposes no timeout,
// retry, or streaming policy; pass an *http.Client configured to taste.
package transformrs
