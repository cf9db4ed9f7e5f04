package tts

import (
	"encoding/json"

	"github.com/rikhuijzer/transformrs"
	"github.com/rikhuijzer/transformrs/internal/utils"
)

// Speech is the normalized result of a synthesis call: decoded audio bytes
// plus the format tag, and the provider's request identifier when the
// provider reports one (empty otherwise).
type Speech struct {
	RequestID  string
	FileFormat string
	Audio      []byte
}

// SpeechResponse wraps the raw provider response together with the provider
// tag that issued the request. The tag is set when the request is issued and
// never changes afterwards, so structured extraction always runs the branch
// matching the payload's actual schema.
type SpeechResponse struct {
	provider transformrs.Provider
	synth    synthesizer
	result   *utils.HTTPResult
}

// Provider returns the provider that produced this response.
func (r *SpeechResponse) Provider() transformrs.Provider {
	return r.provider
}

// StatusCode returns the HTTP status code of the exchange.
func (r *SpeechResponse) StatusCode() int {
	return r.result.StatusCode
}

// Bytes returns the raw response body.
func (r *SpeechResponse) Bytes() []byte {
	return r.result.Body
}

// RawValue parses the response body as a JSON document. For providers that
// return raw audio bytes on success (OpenAI), this only succeeds when the
// body happens to be JSON, i.e. an error payload.
func (r *SpeechResponse) RawValue() (map[string]any, error) {
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

// Structured performs the provider-specific extraction of the response into
// a [Speech]. Provider-reported failures surface as [transformrs.APIError];
// shape violations as [transformrs.MalformedResponseError].
func (r *SpeechResponse) Structured() (*Speech, error) {
	return r.synth.parse(r)
}
