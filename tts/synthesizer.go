package tts

import (
	"context"
	"encoding/base64"
	"net/http"

	"github.com/rikhuijzer/transformrs"
	"github.com/rikhuijzer/transformrs/internal/utils"
	"github.com/rikhuijzer/transformrs/observability"
)

// synthesizer is the capability set every supported provider implements:
// endpoint resolution, request body construction, and response parsing.
// forProvider is the single dispatch point over the closed provider set.
type synthesizer interface {
	address(key transformrs.Key, model string) string
	body(cfg Config, model, text string) (map[string]any, error)
	parse(resp *SpeechResponse) (*Speech, error)
}

func forProvider(p transformrs.Provider) (synthesizer, error) {
	switch p {
	case transformrs.DeepInfra:
		return deepInfra{}, nil
	case transformrs.Hyperbolic:
		return hyperbolic{}, nil
	case transformrs.OpenAI:
		return openAI{}, nil
	case transformrs.Google:
		return google{}, nil
	default:
		return nil, &transformrs.UnsupportedOperationError{
			Provider:  p,
			Operation: "text-to-speech",
		}
	}
}

// Synthesize converts text to speech via the provider identified by key.
// An empty model selects the provider's default. The returned
// [SpeechResponse] exposes the raw payload via Bytes and RawValue, and the
// normalized [Speech] via Structured. A nil client uses http.DefaultClient;
// timeouts and cancellation are the caller's, via client and ctx.
func Synthesize(ctx context.Context, client *http.Client, key transformrs.Key, cfg Config, model, text string) (*SpeechResponse, error) {
	synth, err := forProvider(key.Provider)
	if err != nil {
		return nil, err
	}

	url := synth.address(key, model)
	body, err := synth.body(cfg, model, text)
	if err != nil {
		return nil, err
	}

	if span := observability.SpanFromContext(ctx); span != nil {
		span.AddEvent(observability.EventRequestStart)
		span.SetAttributes(
			observability.String(observability.AttrProvider, key.Provider.String()),
			observability.String(observability.AttrEndpoint, utils.SanitizeURL(url)),
			observability.String(observability.AttrModel, model),
		)
		defer span.AddEvent(observability.EventRequestEnd)
	}

	if observer := observability.ObserverFromContext(ctx); observer != nil {
		observer.Debug(ctx, "Requesting text-to-speech",
			observability.String(observability.AttrProvider, key.Provider.String()),
			observability.String(observability.AttrEndpoint, utils.SanitizeURL(url)),
			observability.String(observability.AttrModel, model),
			observability.String(observability.AttrTTSVoice, cfg.Voice),
			observability.String(observability.AttrTTSOutputFormat, cfg.OutputFormat),
		)
	}

	// Google authenticates through the key query parameter, so the bearer
	// header must not be attached.
	var opts []utils.RequestOption
	if key.Provider != transformrs.Google {
		opts = append(opts, utils.WithBearer(key.APIKey))
	}

	result, err := utils.PostJSON(ctx, client, url, body, opts...)
	if err != nil {
		return nil, err
	}

	return &SpeechResponse{
		provider: key.Provider,
		synth:    synth,
		result:   result,
	}, nil
}

// decodeBase64 strictly decodes a base64 audio payload. Decode failure is a
// malformed response, not a fatal condition.
func decodeBase64(p transformrs.Provider, audio string) ([]byte, error) {
	decoded, err := base64.StdEncoding.DecodeString(audio)
	if err != nil {
		return nil, &transformrs.MalformedResponseError{
			Provider: p,
			Reason:   "audio payload is not valid base64",
			Snippet:  utils.TruncateString(audio, 80),
		}
	}
	return decoded, nil
}

// errorMessage renders a provider error value (string or object) as text.
func errorMessage(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return utils.JSONToString(value)
}
