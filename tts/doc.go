// Package tts implements the text-to-speech adapter. It shapes a
// provider-specific synthesis request, issues a single HTTP POST, and parses
// the provider's divergent response schema into a uniform [Speech] result.
//
// Each supported provider is a variant implementing the same capability set
// (endpoint resolution, body construction, response parsing), selected at one
// dispatch point from the key's provider tag. The main entry point is
// [Synthesize], which returns a [SpeechResponse] wrapper exposing both the
// raw payload and the structured [Speech] extraction.
package tts
