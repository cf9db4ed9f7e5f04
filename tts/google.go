package tts

import (
	"fmt"

	"github.com/rikhuijzer/transformrs"
)

// googleTTSEndpoint is Google's dedicated text-to-speech host. It is separate
// from the OpenAI-compatibility domain used for chat, and authenticates via
// the key query parameter instead of an Authorization header.
const googleTTSEndpoint = "https://texttospeech.googleapis.com/v1beta1/text:synthesize"

type google struct{}

func (google) address(key transformrs.Key, _ string) string {
	return fmt.Sprintf("%s?key=%s", googleTTSEndpoint, key.APIKey)
}

func (google) body(cfg Config, model, text string) (map[string]any, error) {
	body := map[string]any{
		"input": map[string]any{"text": text},
	}
	if cfg.Voice != "" {
		voice := map[string]any{"name": cfg.Voice}
		if cfg.LanguageCode != "" {
			voice["languageCode"] = cfg.LanguageCode
		}
		body["voice"] = voice
		body["audioConfig"] = map[string]any{
			"audioEncoding": "LINEAR16",
			"pitch":         0,
			"speakingRate":  1,
		}
	}
	applyCommon(body, cfg, model)
	return body, nil
}

func (google) parse(resp *SpeechResponse) (*Speech, error) {
	raw, err := resp.RawValue()
	if err != nil {
		return nil, err
	}
	if value, ok := raw["error"]; ok {
		return nil, &transformrs.APIError{
			Provider:   resp.provider,
			StatusCode: resp.result.StatusCode,
			Message:    errorMessage(value),
		}
	}
	audio, ok := raw["audioContent"].(string)
	if !ok {
		return nil, malformed(resp, "missing audioContent field")
	}
	decoded, err := decodeBase64(resp.provider, audio)
	if err != nil {
		return nil, err
	}
	// The response also carries a timepoints array; nothing downstream
	// consumes it, so it stays in the raw view only.
	return &Speech{
		FileFormat: "mp3",
		Audio:      decoded,
	}, nil
}
