package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/SomSamantray/AI-Script-Creator/domain"
	"github.com/SomSamantray/AI-Script-Creator/infrastructure/adapters"
	"github.com/stretchr/testify/require"
)

type audioWorkerFixture struct {
	documents    *adapters.MemoryDocumentStore
	audioOutputs *adapters.MemoryAudioOutputStore
	synthesizer  *fakeSynthesizer
	workRoot     string
	storageRoot  string
	artifacts    func(documentID string) string
	worker       func(ctx context.Context, documentID string) error
}

func newAudioWorkerFixture(t *testing.T) *audioWorkerFixture {
	t.Helper()

	documents := adapters.NewMemoryDocumentStore()
	audioOutputs := adapters.NewMemoryAudioOutputStore()
	synthesizer := &fakeSynthesizer{}
	workRoot := t.TempDir()
	storageRoot := t.TempDir()

	artifacts := adapters.NewLocalArtifactStore(noopLogger{}, storageRoot)
	producer := NewAudioPieceProducer(noopLogger{}, synthesizer, 25)
	stitcher := NewAudioStitcher(noopLogger{}, &fakeTranscoder{duration: 7.5})
	worker := NewAudioWorker(noopLogger{}, documents, audioOutputs, producer, stitcher, artifacts, nil, NewProgressRecorder(noopLogger{}, documents), workRoot)

	return &audioWorkerFixture{
		documents:    documents,
		audioOutputs: audioOutputs,
		synthesizer:  synthesizer,
		workRoot:     workRoot,
		storageRoot:  storageRoot,
		artifacts:    artifacts.FilePath,
		worker:       worker.Process,
	}
}

func (f *audioWorkerFixture) createScriptedDocument(t *testing.T, script string) domain.Document {
	t.Helper()
	doc := domain.NewDocument("doc-1", "Weekly Update", domain.TextInputType, "content for the update", "")
	doc.Status = domain.StatusGeneratingScript
	doc.ProgressPercentage = 60
	require.NoError(t, f.documents.Create(context.Background(), doc))
	if script != "" {
		require.NoError(t, f.audioOutputs.Create(context.Background(), domain.NewAudioOutput("out-1", doc.ID, script)))
	}
	return doc
}

func TestAudioWorker_ProducesStitchesAndCompletes(t *testing.T) {
	t.Parallel()

	f := newAudioWorkerFixture(t)
	doc := f.createScriptedDocument(t, "First sentence here. Second sentence here. Third sentence here.")

	require.NoError(t, f.worker(context.Background(), doc.ID))

	// Three pieces, synthesized sequentially.
	require.Equal(t, 3, f.synthesizer.calls)

	completed, err := f.documents.GetByID(context.Background(), doc.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusComplete, completed.Status)
	require.Equal(t, 100, completed.ProgressPercentage)
	require.Equal(t, "Audio generation complete!", completed.CurrentStep)

	output, err := f.audioOutputs.GetByDocumentID(context.Background(), doc.ID)
	require.NoError(t, err)
	require.Equal(t, "/api/audio/doc-1/download", output.AudioURL)
	require.Equal(t, 7.5, output.DurationSeconds)
	require.Greater(t, output.FileSizeBytes, int64(0))

	// Final file lives in stable storage; the working directory is gone.
	payload, err := os.ReadFile(f.artifacts(doc.ID))
	require.NoError(t, err)
	require.Equal(t, int64(len(payload)), output.FileSizeBytes)
	require.Equal(t, "First sentence here.Second sentence here.Third sentence here.", string(payload))

	_, err = os.Stat(filepath.Join(f.workRoot, doc.ID))
	require.True(t, os.IsNotExist(err))
}

func TestAudioWorker_MissingScriptFailsDocument(t *testing.T) {
	t.Parallel()

	f := newAudioWorkerFixture(t)
	doc := f.createScriptedDocument(t, "")

	require.Error(t, f.worker(context.Background(), doc.ID))

	failed, err := f.documents.GetByID(context.Background(), doc.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusError, failed.Status)
	require.NotEmpty(t, failed.ErrorMessage)
}

func TestAudioWorker_SkipsTerminalDocument(t *testing.T) {
	t.Parallel()

	f := newAudioWorkerFixture(t)
	doc := domain.NewDocument("doc-1", "Weekly Update", domain.TextInputType, "content for the update", "")
	doc.Status = domain.StatusComplete
	require.NoError(t, f.documents.Create(context.Background(), doc))

	require.NoError(t, f.worker(context.Background(), doc.ID))
	require.Zero(t, f.synthesizer.calls)
}
