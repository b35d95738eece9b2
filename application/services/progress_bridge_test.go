package services

import (
	"context"
	"testing"
	"time"

	"github.com/SomSamantray/AI-Script-Creator/application/ports/outbound"
	"github.com/SomSamantray/AI-Script-Creator/domain"
	"github.com/SomSamantray/AI-Script-Creator/infrastructure/adapters"
	"github.com/stretchr/testify/require"
)

func TestStream_EmitsImmediateFrame(t *testing.T) {
	t.Parallel()

	store := adapters.NewMemoryDocumentStore()
	doc := domain.NewDocument("doc-1", "Weekly Update", domain.TextInputType, "content for the update", "")
	require.NoError(t, store.Create(context.Background(), doc))

	bridge := NewProgressBridge(noopLogger{}, store, goDispatcher{}, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := bridge.Stream(ctx, doc.ID)
	require.NoError(t, err)

	select {
	case event := <-events:
		require.Equal(t, domain.StatusQueued, event.Status)
		require.Equal(t, 0, event.Progress)
		require.Equal(t, "Document queued for processing", event.CurrentStep)
	case <-time.After(time.Second):
		t.Fatal("no frame received before the first poll interval")
	}
}

func TestStream_ClosesOnTerminalStatus(t *testing.T) {
	t.Parallel()

	store := adapters.NewMemoryDocumentStore()
	doc := domain.NewDocument("doc-1", "Weekly Update", domain.TextInputType, "content for the update", "")
	require.NoError(t, store.Create(context.Background(), doc))

	bridge := NewProgressBridge(noopLogger{}, store, goDispatcher{}, 10*time.Millisecond)

	events, err := bridge.Stream(context.Background(), doc.ID)
	require.NoError(t, err)

	status := domain.StatusComplete
	progress := 100
	require.NoError(t, store.Update(context.Background(), doc.ID, outbound.DocumentUpdate{
		Status:             &status,
		ProgressPercentage: &progress,
	}))

	var last domain.ProgressEvent
	deadline := time.After(2 * time.Second)
	for {
		select {
		case event, ok := <-events:
			if !ok {
				require.Equal(t, domain.StatusComplete, last.Status)
				require.Equal(t, 100, last.Progress)
				return
			}
			last = event
		case <-deadline:
			t.Fatal("stream did not close after the terminal status")
		}
	}
}

func TestStream_UnknownDocumentEmitsErrorFrameAndCloses(t *testing.T) {
	t.Parallel()

	bridge := NewProgressBridge(noopLogger{}, adapters.NewMemoryDocumentStore(), goDispatcher{}, 10*time.Millisecond)

	events, err := bridge.Stream(context.Background(), "missing")
	require.NoError(t, err)

	event, ok := <-events
	require.True(t, ok)
	require.Equal(t, domain.StatusError, event.Status)
	require.Equal(t, "Document not found", event.ErrorMessage)

	_, ok = <-events
	require.False(t, ok)
}
