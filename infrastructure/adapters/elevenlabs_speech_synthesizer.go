package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/SomSamantray/AI-Script-Creator/application/ports/outbound"
	"github.com/SomSamantray/AI-Script-Creator/config"
)

const requestIDHeader = "Request-Id"

type elevenLabsRequest struct {
	Text               string        `json:"text"`
	ModelId            string        `json:"model_id"`
	VoiceSettings      voiceSettings `json:"voice_settings"`
	PreviousRequestIds []string      `json:"previous_request_ids,omitempty"`
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

// elevenLabsSpeechSynthesizer turns one script piece into MPEG audio. The
// previous request ids of the same script ride along so the voice stays
// continuous across piece boundaries.
type elevenLabsSpeechSynthesizer struct {
	ContentFetcher
	logger    outbound.LoggerPort
	ttsConfig *config.TTSConfig
}

func NewElevenLabsSpeechSynthesizer(contentFetcher ContentFetcher, ttsConfig *config.TTSConfig, logger outbound.LoggerPort) outbound.SpeechSynthesizerPort {
	return &elevenLabsSpeechSynthesizer{
		ContentFetcher: contentFetcher,
		logger:         logger,
		ttsConfig:      ttsConfig,
	}
}

func (a *elevenLabsSpeechSynthesizer) Synthesize(ctx context.Context, synthReq outbound.SynthesizeSpeechRequest) (*outbound.SynthesizeSpeechResult, error) {
	req, err := a.getRequest(ctx, synthReq)
	if err != nil {
		a.logger.ErrorWithFields(err, "Failed to construct the HTTP request for speech synthesis", map[string]interface{}{
			"text_length": len(synthReq.Text),
		})
		return nil, err
	}

	audio, header, err := a.FetchContentWithHeader(req)
	if err != nil {
		return nil, err
	}

	return &outbound.SynthesizeSpeechResult{
		Audio:     audio,
		RequestID: header.Get(requestIDHeader),
	}, nil
}

func (a *elevenLabsSpeechSynthesizer) getRequest(ctx context.Context, synthReq outbound.SynthesizeSpeechRequest) (*http.Request, error) {
	reqBody := elevenLabsRequest{
		Text:    synthReq.Text,
		ModelId: a.ttsConfig.ModelId,
		VoiceSettings: voiceSettings{
			Stability:       a.ttsConfig.Stability,
			SimilarityBoost: a.ttsConfig.SimilarityBoost,
		},
		PreviousRequestIds: synthReq.PreviousRequestIDs,
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		a.logger.Error(err, "Failed to marshal the request body for the speech service")
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.ttsConfig.ApiUrl+"/"+a.ttsConfig.VoiceId, bytes.NewBuffer(jsonPayload))
	if err != nil {
		a.logger.Error(err, "Failed to create the HTTP POST request")
		return nil, err
	}

	req.Header.Add("Accept", "audio/mpeg")
	req.Header.Add("xi-api-key", a.ttsConfig.ApiKey)
	req.Header.Add("Content-Type", "application/json")

	return req, nil
}
