package tts

// Config holds the optional knobs for a synthesis request. A zero field is
// omitted from the request body entirely, so the provider-side default
// applies; the library never fills in defaults of its own.
type Config struct {
	// OutputFormat selects the audio container/codec, e.g. "mp3".
	OutputFormat string

	// Voice selects the provider's voice. Field name and shape in the wire
	// body differ per provider (flat string, nested object, preset name).
	Voice string

	// Speed scales speaking rate. Nil means provider default.
	Speed *float64

	// LanguageCode qualifies the voice for providers that require it
	// (currently only Google).
	LanguageCode string

	// Other is an open extension map merged into the body after all typed
	// fields, so entries can add or override arbitrary provider-specific
	// fields. It bypasses all validation: a misused entry produces a request
	// the provider will reject at the HTTP layer.
	Other map[string]any
}

// applyCommon appends the provider-independent body fields: model, speed,
// output format, and finally the Other extension map.
func applyCommon(body map[string]any, cfg Config, model string) {
	if model != "" {
		body["model"] = model
	}
	if cfg.Speed != nil {
		body["speed"] = *cfg.Speed
	}
	if cfg.OutputFormat != "" {
		body["output_format"] = cfg.OutputFormat
	}
	for key, value := range cfg.Other {
		body[key] = value
	}
}
