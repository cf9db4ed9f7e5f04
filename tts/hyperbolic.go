package tts

import (
	"github.com/rikhuijzer/transformrs"
)

type hyperbolic struct{}

func (hyperbolic) address(key transformrs.Key, _ string) string {
	return key.Provider.Domain() + "/v1/audio/generation"
}

func (hyperbolic) body(cfg Config, model, text string) (map[string]any, error) {
	if cfg.Voice != "" {
		return nil, &transformrs.UnsupportedOperationError{
			Provider:  transformrs.Hyperbolic,
			Operation: "voice selection for text-to-speech",
		}
	}
	body := map[string]any{"text": text}
	applyCommon(body, cfg, model)
	return body, nil
}

func (hyperbolic) parse(resp *SpeechResponse) (*Speech, error) {
	raw, err := resp.RawValue()
	if err != nil {
		return nil, err
	}
	audio, ok := raw["audio"].(string)
	if !ok {
		return nil, malformed(resp, "missing audio field")
	}
	decoded, err := decodeBase64(resp.provider, audio)
	if err != nil {
		return nil, err
	}
	return &Speech{
		FileFormat: "mp3",
		Audio:      decoded,
	}, nil
}
