package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/rikhuijzer/transformrs/observability"
)

// HTTPResult carries everything a provider-specific parser needs from a
// completed exchange: the status code and content type that discriminate
// error payloads from binary ones, and the full response body.
type HTTPResult struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// RequestOption mutates the outgoing request before it is sent.
type RequestOption func(*http.Request)

// WithBearer attaches an Authorization: Bearer header. An empty key is a
// no-op, which covers providers that authenticate via query parameter.
func WithBearer(apiKey string) RequestOption {
	return func(req *http.Request) {
		if apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+apiKey)
		}
	}
}

// WithHeader sets an arbitrary request header.
func WithHeader(key, value string) RequestOption {
	return func(req *http.Request) {
		req.Header.Set(key, value)
	}
}

// PostJSON performs a synchronous HTTP POST with a JSON body and reads the
// full response. It handles observability span events, header options, and
// resource cleanup.
//
// Error handling strategy:
//   - Context errors (timeout, cancellation) are propagated immediately
//   - Transport errors return the error with no result
//   - A non-2xx status is NOT an error here: the response body still reaches
//     the caller, whose provider-specific parser owns status interpretation
//   - Response body close errors are logged but don't override primary errors
func PostJSON(ctx context.Context, client *http.Client, url string, body any, opts ...RequestOption) (*HTTPResult, error) {
	span := observability.SpanFromContext(ctx)

	httpClient := client
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("error marshaling body: %w", err)
	}

	if span != nil {
		span.AddEvent("http.request.prepared",
			observability.String(observability.AttrHTTPMethod, "POST"),
			observability.String(observability.AttrHTTPURL, SanitizeURL(url)),
			observability.Int(observability.AttrHTTPRequestBodySize, len(jsonBody)),
		)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	for _, opt := range opts {
		opt(req)
	}

	requestStart := time.Now()
	res, err := httpClient.Do(req)
	requestDuration := time.Since(requestStart)

	if err != nil {
		if span != nil {
			span.AddEvent("http.request.error",
				observability.Error(err),
				observability.Duration("http.request.duration", requestDuration),
			)
		}
		return nil, fmt.Errorf("error sending request: %w", err)
	}
	defer func(body io.ReadCloser) {
		if closeErr := body.Close(); closeErr != nil {
			// Log the close error, but don't override the main error
			slog.Warn("failed to close response body", "error", closeErr.Error(), "url", url)
		}
	}(res.Body)

	respBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	if span != nil {
		span.AddEvent("http.response.received",
			observability.Int(observability.AttrHTTPStatusCode, res.StatusCode),
			observability.String(observability.AttrHTTPContentType, res.Header.Get("Content-Type")),
			observability.Int(observability.AttrHTTPResponseBodySize, len(respBody)),
			observability.Duration("http.request.duration", requestDuration),
		)
	}

	return &HTTPResult{
		StatusCode:  res.StatusCode,
		ContentType: res.Header.Get("Content-Type"),
		Body:        respBody,
	}, nil
}

// IsJSON reports whether a Content-Type header names a JSON payload.
func (r *HTTPResult) IsJSON() bool {
	return r != nil && hasJSONContentType(r.ContentType)
}

// OK reports whether the status code is in the 2xx range.
func (r *HTTPResult) OK() bool {
	return r != nil && r.StatusCode >= 200 && r.StatusCode < 300
}

func hasJSONContentType(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), "application/json")
}
