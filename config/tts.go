package config

import (
	"fmt"
	"os"
	"strconv"
)

type TTSConfig struct {
	ApiUrl          string
	ApiKey          string
	ModelId         string
	VoiceId         string
	Stability       float64
	SimilarityBoost float64
}

func GetTTSConfig() (*TTSConfig, error) {
	apiUrl := os.Getenv("TTS_API_URL")
	if apiUrl == "" {
		return nil, fmt.Errorf("TTS_API_URL must be set")
	}
	apiKey := os.Getenv("TTS_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("TTS_API_KEY must be set")
	}
	modelId := os.Getenv("TTS_MODEL_ID")
	if modelId == "" {
		return nil, fmt.Errorf("TTS_MODEL_ID must be set")
	}
	voiceId := os.Getenv("TTS_VOICE_ID")
	if voiceId == "" {
		return nil, fmt.Errorf("TTS_VOICE_ID must be set")
	}
	stability := os.Getenv("TTS_STABILITY")
	if stability == "" {
		return nil, fmt.Errorf("TTS_STABILITY must be set")
	}
	stabilityVal, err := strconv.ParseFloat(stability, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TTS stability")
	}
	similarityBoost := os.Getenv("TTS_SIMILARITY_BOOST")
	if similarityBoost == "" {
		return nil, fmt.Errorf("TTS_SIMILARITY_BOOST must be set")
	}
	similarityBoostVal, err := strconv.ParseFloat(similarityBoost, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TTS similarity boost")
	}

	return &TTSConfig{
		ApiUrl:          apiUrl,
		ApiKey:          apiKey,
		ModelId:         modelId,
		VoiceId:         voiceId,
		Stability:       stabilityVal,
		SimilarityBoost: similarityBoostVal,
	}, nil
}
