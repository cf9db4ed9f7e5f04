package tts

import (
	"github.com/rikhuijzer/transformrs"
	"github.com/rikhuijzer/transformrs/internal/utils"
)

type openAI struct{}

func (openAI) address(key transformrs.Key, _ string) string {
	return key.Provider.Domain() + "/v1/audio/speech"
}

func (openAI) body(cfg Config, model, text string) (map[string]any, error) {
	body := map[string]any{"input": text}
	if cfg.Voice != "" {
		body["voice"] = cfg.Voice
	}
	applyCommon(body, cfg, model)
	return body, nil
}

// parse discriminates error payloads from audio by status code and
// Content-Type rather than by whether the body parses as JSON: a successful
// call returns the raw audio bytes as the whole body, so parse success alone
// cannot tell an error apart from binary data that resembles JSON.
func (openAI) parse(resp *SpeechResponse) (*Speech, error) {
	if !resp.result.OK() || resp.result.IsJSON() {
		raw, err := resp.RawValue()
		if err != nil {
			if resp.result.OK() {
				return nil, err
			}
			return nil, &transformrs.APIError{
				Provider:   resp.provider,
				StatusCode: resp.result.StatusCode,
				Message:    utils.TruncateStringDefault(string(resp.result.Body)),
			}
		}
		if value, ok := raw["error"]; ok {
			return nil, &transformrs.APIError{
				Provider:   resp.provider,
				StatusCode: resp.result.StatusCode,
				Message:    errorMessage(value),
			}
		}
		return nil, malformed(resp, "expected audio bytes, got a JSON body without an error field")
	}

	return &Speech{
		FileFormat: "mp3",
		Audio:      resp.result.Body,
	}, nil
}
