package chat

import (
	"context"
	"net/http"

	"github.com/rikhuijzer/transformrs"
	"github.com/rikhuijzer/transformrs/internal/utils"
	"github.com/rikhuijzer/transformrs/observability"
)

// Config holds the optional generation knobs for a chat request. A zero field
// is omitted from the request body entirely; the provider-side default
// applies.
type Config struct {
	// Temperature sets the sampling temperature. Nil means provider default.
	Temperature *float64

	// MaxTokens caps the completion length. Nil means provider default.
	MaxTokens *int

	// Other is an open extension map merged into the body after all typed
	// fields, so entries can add or override arbitrary provider-specific
	// fields. It bypasses all validation.
	Other map[string]any
}

// address resolves the chat-completions endpoint for the key's provider.
func address(key transformrs.Key) (string, error) {
	if !key.Provider.Known() {
		return "", &transformrs.UnsupportedOperationError{
			Provider:  key.Provider,
			Operation: "chat completion",
		}
	}
	return key.Provider.Domain() + "/v1/chat/completions", nil
}

// buildBody assembles the request document field by field. All supported
// providers accept the same OpenAI-compatible shape.
func buildBody(cfg Config, model string, messages []Message) map[string]any {
	body := map[string]any{
		"model":    model,
		"messages": messages,
	}
	if cfg.Temperature != nil {
		body["temperature"] = *cfg.Temperature
	}
	if cfg.MaxTokens != nil {
		body["max_tokens"] = *cfg.MaxTokens
	}
	for key, value := range cfg.Other {
		body[key] = value
	}
	return body
}

// Complete sends messages to the provider identified by key and returns the
// response wrapper. The returned [Response] exposes the raw payload via
// Bytes and RawValue, and the normalized [Completion] via Structured.
// A nil client uses http.DefaultClient; timeouts and cancellation are the
// caller's, via client and ctx.
func Complete(ctx context.Context, client *http.Client, key transformrs.Key, cfg Config, model string, messages []Message) (*Response, error) {
	url, err := address(key)
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
		observer.Debug(ctx, "Requesting chat completion",
			observability.String(observability.AttrProvider, key.Provider.String()),
			observability.String(observability.AttrEndpoint, utils.SanitizeURL(url)),
			observability.String(observability.AttrModel, model),
			observability.Int(observability.AttrChatMessagesCount, len(messages)),
		)
	}

	result, err := utils.PostJSON(ctx, client, url, buildBody(cfg, model, messages),
		utils.WithBearer(key.APIKey))
	if err != nil {
		return nil, err
	}

	return &Response{
		provider: key.Provider,
		result:   result,
	}, nil
}
