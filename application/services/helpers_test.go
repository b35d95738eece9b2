package services

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/SomSamantray/AI-Script-Creator/application/ports/outbound"
)

type noopLogger struct{}

func (noopLogger) Info(string)                                           {}
func (noopLogger) InfoWithFields(string, map[string]interface{})         {}
func (noopLogger) Error(error, string)                                   {}
func (noopLogger) ErrorWithFields(error, string, map[string]interface{}) {}
func (noopLogger) Debug(string)                                          {}
func (noopLogger) DebugWithFields(string, map[string]interface{})        {}
func (noopLogger) Warn(string)                                           {}
func (noopLogger) WarnWithFields(string, map[string]interface{})         {}

type fakeEnqueuer struct {
	mu  sync.Mutex
	ids []string
	err error
}

func (f *fakeEnqueuer) Enqueue(documentID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.ids = append(f.ids, documentID)
	return nil
}

func (f *fakeEnqueuer) enqueued() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.ids...)
}

// fakeSynthesizer returns the request text as audio bytes and records every
// previous-request-id list it was given.
type fakeSynthesizer struct {
	mu       sync.Mutex
	calls    int
	previous [][]string
	err      error
}

func (f *fakeSynthesizer) Synthesize(ctx context.Context, req outbound.SynthesizeSpeechRequest) (*outbound.SynthesizeSpeechResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.calls++
	f.previous = append(f.previous, append([]string(nil), req.PreviousRequestIDs...))
	return &outbound.SynthesizeSpeechResult{
		Audio:     []byte(req.Text),
		RequestID: fmt.Sprintf("req-%d", f.calls),
	}, nil
}

type fakeScriptGenerator struct {
	script string
	err    error
	prompt outbound.GenerateScriptRequest
	calls  int
}

func (f *fakeScriptGenerator) Generate(ctx context.Context, req outbound.GenerateScriptRequest) (string, error) {
	f.calls++
	f.prompt = req
	return f.script, f.err
}

// fakeTranscoder concatenates input files by appending their bytes and
// reports a fixed duration.
type fakeTranscoder struct {
	duration float64
}

func (f *fakeTranscoder) Concatenate(ctx context.Context, inputPaths []string, outputPath string) error {
	var combined []byte
	for _, path := range inputPaths {
		payload, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		combined = append(combined, payload...)
	}
	return os.WriteFile(outputPath, combined, 0o644)
}

func (f *fakeTranscoder) ProbeDuration(ctx context.Context, path string) (float64, error) {
	return f.duration, nil
}

type fakeSourceFetcher struct {
	payload []byte
	err     error
	urls    []string
}

func (f *fakeSourceFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	f.urls = append(f.urls, url)
	return f.payload, f.err
}

// goDispatcher runs submitted tasks on plain goroutines.
type goDispatcher struct{}

func (goDispatcher) Submit(task func()) error {
	go task()
	return nil
}
