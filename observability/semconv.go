package observability

// Semantic conventions for observability attributes.
// These constants define standard attribute names so that every adapter
// emits the same keys for the same concepts.

// --- Provider attributes ---

const (
	// AttrProvider is the name of the AI provider (e.g., "openai", "deepinfra").
	AttrProvider = "provider"

	// AttrModel is the model identifier (e.g., "tts-1", "hexgrad/Kokoro-82M").
	AttrModel = "model"

	// AttrEndpoint is the resolved API endpoint URL.
	AttrEndpoint = "endpoint"

	// AttrRequestID is the request identifier reported by the provider.
	AttrRequestID = "request.id"
)

// --- HTTP attributes ---

const (
	// AttrHTTPMethod is the HTTP request method.
	AttrHTTPMethod = "http.method"

	// AttrHTTPURL is the full request URL.
	AttrHTTPURL = "http.url"

	// AttrHTTPStatusCode is the response status code.
	AttrHTTPStatusCode = "http.status_code"

	// AttrHTTPContentType is the response Content-Type header.
	AttrHTTPContentType = "http.content_type"

	// AttrHTTPRequestBodySize is the serialized request body size in bytes.
	AttrHTTPRequestBodySize = "http.request.body_size"

	// AttrHTTPResponseBodySize is the response body size in bytes.
	AttrHTTPResponseBodySize = "http.response.body_size"
)

// --- Chat attributes ---

const (
	// AttrChatMessagesCount is the number of messages in a chat request.
	AttrChatMessagesCount = "chat.messages_count"

	// AttrChatFinishReason is the finish reason of the first choice.
	AttrChatFinishReason = "chat.finish_reason"
)

// --- Text-to-speech attributes ---

const (
	// AttrTTSVoice is the requested voice name.
	AttrTTSVoice = "tts.voice"

	// AttrTTSOutputFormat is the requested audio output format.
	AttrTTSOutputFormat = "tts.output_format"

	// AttrTTSAudioBytes is the size of the decoded audio payload.
	AttrTTSAudioBytes = "tts.audio_bytes"
)

// --- Span event names ---

const (
	// EventRequestStart marks the beginning of a provider request.
	EventRequestStart = "provider.request.start"

	// EventRequestEnd marks the completion of a provider request.
	EventRequestEnd = "provider.request.end"
)
