package transformrs

import (
	"fmt"
	"strings"
)

// Provider identifies a third-party vendor exposing an HTTP API for chat
// completion or speech synthesis. The set of providers is closed: adapters
// dispatch on the provider tag to pick endpoint, body shape, and response
// schema, so an unknown value yields an [UnsupportedOperationError] rather
// than a guessed request.
type Provider string

const (
	OpenAI     Provider = "openai"
	DeepInfra  Provider = "deepinfra"
	Hyperbolic Provider = "hyperbolic"
	Google     Provider = "google"
	Groq       Provider = "groq"
	TogetherAI Provider = "togetherai"
)

// Providers returns all supported providers.
func Providers() []Provider {
	return []Provider{OpenAI, DeepInfra, Hyperbolic, Google, Groq, TogetherAI}
}

// Known reports whether p is one of the supported providers.
func (p Provider) Known() bool {
	switch p {
	case OpenAI, DeepInfra, Hyperbolic, Google, Groq, TogetherAI:
		return true
	}
	return false
}

func (p Provider) String() string {
	return string(p)
}

// Domain returns the provider's base URL for OpenAI-compatible endpoints.
// Paths like /v1/chat/completions are appended to this value. Google's
// domain points at its OpenAI-compatibility layer; its text-to-speech API
// lives on a separate fixed host handled inside the tts package.
func (p Provider) Domain() string {
	switch p {
	case OpenAI:
		return "https://api.openai.com"
	case DeepInfra:
		return "https://api.deepinfra.com"
	case Hyperbolic:
		return "https://api.hyperbolic.xyz"
	case Google:
		return "https://generativelanguage.googleapis.com/v1beta/openai"
	case Groq:
		return "https://api.groq.com/openai"
	case TogetherAI:
		return "https://api.together.xyz"
	}
	return ""
}

// keyEnvVar returns the environment variable holding the provider's API key,
// e.g. DEEPINFRA_KEY for [DeepInfra].
func (p Provider) keyEnvVar() string {
	return strings.ToUpper(string(p)) + "_KEY"
}

// ParseProvider converts a case-insensitive provider name into a [Provider].
func ParseProvider(s string) (Provider, error) {
	p := Provider(strings.ToLower(strings.TrimSpace(s)))
	if !p.Known() {
		return "", fmt.Errorf("unknown provider %q", s)
	}
	return p, nil
}
