package outbound

import "context"

type SynthesizeSpeechRequest struct {
	Text string
	// PreviousRequestIDs carries the ids of earlier pieces of the same
	// script so the speech service can keep voice and prosody continuous.
	PreviousRequestIDs []string
}

type SynthesizeSpeechResult struct {
	Audio     []byte
	RequestID string
}

type SpeechSynthesizerPort interface {
	Synthesize(ctx context.Context, req SynthesizeSpeechRequest) (*SynthesizeSpeechResult, error)
}
