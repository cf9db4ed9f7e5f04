package chat

import (
	"encoding/json"

	"github.com/rikhuijzer/transformrs"
	"github.com/rikhuijzer/transformrs/internal/utils"
)

// Response wraps the raw provider response together with the provider tag
// that issued the request. The tag is fixed at request time, so extraction
// always attributes errors to the right provider.
type Response struct {
	provider transformrs.Provider
	result   *utils.HTTPResult
}

// Provider returns the provider that produced this response.
func (r *Response) Provider() transformrs.Provider {
	return r.provider
}

// StatusCode returns the HTTP status code of the exchange.
func (r *Response) StatusCode() int {
	return r.result.StatusCode
}

// Bytes returns the raw response body.
func (r *Response) Bytes() []byte {
	return r.result.Body
}

// RawValue parses the response body as a JSON document.
func (r *Response) RawValue() (map[string]any, error) {
	var value map[string]any
	if err := json.Unmarshal(r.result.Body, &value); err != nil {
		return nil, &transformrs.MalformedResponseError{
			Provider: r.provider,
			Reason:   "body is not valid JSON",
			Snippet:  utils.TruncateStringDefault(string(r.result.Body)),
		}
	}
	return value, nil
}

// Structured extracts the normalized [Completion]. A provider error payload
// ("error" key or non-2xx status) surfaces as [transformrs.APIError]; a body
// that is not JSON or lacks choices as [transformrs.MalformedResponseError].
func (r *Response) Structured() (*Completion, error) {
	raw, err := r.RawValue()
	if err != nil {
		return nil, err
	}
	if value, ok := raw["error"]; ok {
		return nil, &transformrs.APIError{
			Provider:   r.provider,
			StatusCode: r.result.StatusCode,
			Message:    errorMessage(value),
		}
	}
	if !r.result.OK() {
		return nil, &transformrs.APIError{
			Provider:   r.provider,
			StatusCode: r.result.StatusCode,
			Message:    utils.TruncateStringDefault(string(r.result.Body)),
		}
	}

	var completion Completion
	if err := json.Unmarshal(r.result.Body, &completion); err != nil {
		return nil, &transformrs.MalformedResponseError{
			Provider: r.provider,
			Reason:   "body does not match the chat completion schema",
			Snippet:  utils.TruncateStringDefault(string(r.result.Body)),
		}
	}
	if len(completion.Choices) == 0 {
		return nil, &transformrs.MalformedResponseError{
			Provider: r.provider,
			Reason:   "no choices in response",
			Snippet:  utils.TruncateStringDefault(string(r.result.Body)),
		}
	}
	return &completion, nil
}

// errorMessage renders a provider error value (string or object) as text.
func errorMessage(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return utils.JSONToString(value)
}
