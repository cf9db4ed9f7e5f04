// Package chat implements the chat-completion adapter for OpenAI-compatible
// providers. All supported providers expose the same /v1/chat/completions
// request and response shape, so unlike text-to-speech there is no
// per-provider body or parser variance: only the endpoint domain and the
// credential differ.
//
// The main entry point is [Complete], which returns a [Response] wrapper
// exposing the raw payload and the structured [Completion] extraction.
package chat
