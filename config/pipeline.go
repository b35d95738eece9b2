package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// PipelineConfig carries the tunables of the three stage queues and the
// filesystem layout of the audio work. Every field has a working default so
// the service starts with no pipeline env set at all.
type PipelineConfig struct {
	ContentConcurrency   int
	ScriptConcurrency    int
	AudioConcurrency     int
	MaxAttempts          int
	InitialBackoff       time.Duration
	PieceCharacterBudget int
	WorkRoot             string
	StorageRoot          string
	CleanupMaxAge        time.Duration
	CleanupInterval      time.Duration
	PollInterval         time.Duration
}

func GetPipelineConfig() (*PipelineConfig, error) {
	cfg := &PipelineConfig{
		ContentConcurrency:   3,
		ScriptConcurrency:    3,
		AudioConcurrency:     2,
		MaxAttempts:          3,
		InitialBackoff:       2 * time.Second,
		PieceCharacterBudget: 4500,
		WorkRoot:             "/tmp/audio-work",
		StorageRoot:          "/tmp/audio-storage",
		CleanupMaxAge:        24 * time.Hour,
		CleanupInterval:      time.Hour,
		PollInterval:         5 * time.Second,
	}

	intOverrides := map[string]*int{
		"PIPELINE_CONTENT_CONCURRENCY": &cfg.ContentConcurrency,
		"PIPELINE_SCRIPT_CONCURRENCY":  &cfg.ScriptConcurrency,
		"PIPELINE_AUDIO_CONCURRENCY":   &cfg.AudioConcurrency,
		"PIPELINE_MAX_ATTEMPTS":        &cfg.MaxAttempts,
		"AUDIO_PIECE_CHARACTER_BUDGET": &cfg.PieceCharacterBudget,
	}
	for key, target := range intOverrides {
		raw := os.Getenv(key)
		if raw == "" {
			continue
		}
		val, err := strconv.Atoi(raw)
		if err != nil || val <= 0 {
			return nil, fmt.Errorf("%s must be a positive integer", key)
		}
		*target = val
	}

	durationOverrides := map[string]*time.Duration{
		"PIPELINE_INITIAL_BACKOFF": &cfg.InitialBackoff,
		"CLEANUP_MAX_AGE":          &cfg.CleanupMaxAge,
		"CLEANUP_INTERVAL":         &cfg.CleanupInterval,
		"PROGRESS_POLL_INTERVAL":   &cfg.PollInterval,
	}
	for key, target := range durationOverrides {
		raw := os.Getenv(key)
		if raw == "" {
			continue
		}
		val, err := time.ParseDuration(raw)
		if err != nil || val <= 0 {
			return nil, fmt.Errorf("%s must be a positive duration", key)
		}
		*target = val
	}

	if workRoot := os.Getenv("AUDIO_WORK_ROOT"); workRoot != "" {
		cfg.WorkRoot = workRoot
	}
	if storageRoot := os.Getenv("AUDIO_STORAGE_ROOT"); storageRoot != "" {
		cfg.StorageRoot = storageRoot
	}

	return cfg, nil
}
