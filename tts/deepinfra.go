package tts

import (
	"fmt"
	"strings"

	"github.com/rikhuijzer/transformrs"
	"github.com/rikhuijzer/transformrs/internal/utils"
)

// defaultDeepInfraModel is used when the caller does not name a model.
const defaultDeepInfraModel = "hexgrad/Kokoro-82M"

// deepInfraAudioPrefix is the data-URL prefix DeepInfra puts in front of its
// base64 audio payload. It must be stripped before decoding.
const deepInfraAudioPrefix = "data:audio/mp3;base64,"

type deepInfra struct{}

func (deepInfra) address(key transformrs.Key, model string) string {
	if model == "" {
		model = defaultDeepInfraModel
	}
	return fmt.Sprintf("%s/v1/inference/%s", key.Provider.Domain(), model)
}

func (deepInfra) body(cfg Config, model, text string) (map[string]any, error) {
	body := map[string]any{"text": text}
	if cfg.Voice != "" {
		body["preset_voice"] = cfg.Voice
	}
	applyCommon(body, cfg, model)
	return body, nil
}

func (deepInfra) parse(resp *SpeechResponse) (*Speech, error) {
	raw, err := resp.RawValue()
	if err != nil {
		return nil, err
	}
	if detail, ok := raw["detail"]; ok {
		return nil, &transformrs.APIError{
			Provider:   resp.provider,
			StatusCode: resp.result.StatusCode,
			Message:    errorMessage(detail),
		}
	}

	audio, ok := raw["audio"].(string)
	if !ok {
		return nil, malformed(resp, "missing audio field")
	}
	stripped, found := strings.CutPrefix(audio, deepInfraAudioPrefix)
	if !found {
		return nil, malformed(resp, "audio payload lacks the "+deepInfraAudioPrefix+" prefix")
	}
	decoded, err := decodeBase64(resp.provider, stripped)
	if err != nil {
		return nil, err
	}

	requestID, ok := raw["request_id"].(string)
	if !ok {
		return nil, malformed(resp, "missing request_id field")
	}
	outputFormat, ok := raw["output_format"].(string)
	if !ok {
		return nil, malformed(resp, "missing output_format field")
	}

	return &Speech{
		RequestID:  requestID,
		FileFormat: outputFormat,
		Audio:      decoded,
	}, nil
}

func malformed(resp *SpeechResponse, reason string) *transformrs.MalformedResponseError {
	return &transformrs.MalformedResponseError{
		Provider: resp.provider,
		Reason:   reason,
		Snippet:  utils.TruncateStringDefault(string(resp.result.Body)),
	}
}
