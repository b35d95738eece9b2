package services

import (
	"context"
	"testing"

	"github.com/SomSamantray/AI-Script-Creator/domain"
	"github.com/SomSamantray/AI-Script-Creator/infrastructure/adapters"
	"github.com/stretchr/testify/require"
)

type contentWorkerFixture struct {
	documents *adapters.MemoryDocumentStore
	chunks    *adapters.MemoryChunkStore
	fetcher   *fakeSourceFetcher
	next      *fakeEnqueuer
	worker    func(ctx context.Context, documentID string) error
}

func newContentWorkerFixture() *contentWorkerFixture {
	documents := adapters.NewMemoryDocumentStore()
	chunks := adapters.NewMemoryChunkStore()
	fetcher := &fakeSourceFetcher{}
	next := &fakeEnqueuer{}
	worker := NewContentWorker(noopLogger{}, documents, chunks, NewTextSegmenter(noopLogger{}), fetcher, NewProgressRecorder(noopLogger{}, documents), next)
	return &contentWorkerFixture{
		documents: documents,
		chunks:    chunks,
		fetcher:   fetcher,
		next:      next,
		worker:    worker.Process,
	}
}

func TestContentWorker_TextDocument(t *testing.T) {
	t.Parallel()

	f := newContentWorkerFixture()
	doc := domain.NewDocument("doc-1", "Weekly Update", domain.TextInputType, "RELEASE NOTES\nWe released a new feature.\n\nBUG FIXES\nThe crash was fixed.", "")
	require.NoError(t, f.documents.Create(context.Background(), doc))

	require.NoError(t, f.worker(context.Background(), doc.ID))

	chunks, err := f.chunks.ListByDocumentID(context.Background(), doc.ID)
	require.NoError(t, err)
	require.Len(t, chunks, 2)
	require.Equal(t, domain.TechReleasesSection, chunks[0].SectionType)
	require.Equal(t, domain.BugsFixesSection, chunks[1].SectionType)

	updated, err := f.documents.GetByID(context.Background(), doc.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusOrganizing, updated.Status)
	require.Equal(t, 30, updated.ProgressPercentage)
	require.Equal(t, "Content organized into sections", updated.CurrentStep)

	require.Equal(t, []string{doc.ID}, f.next.enqueued())
}

func TestContentWorker_FileDocumentFetchesSource(t *testing.T) {
	t.Parallel()

	f := newContentWorkerFixture()
	f.fetcher.payload = []byte("RELEASE NOTES\nContent fetched from the upload.")
	doc := domain.NewDocument("doc-1", "Uploaded Notes", domain.FileInputType, "", "https://files.example.com/notes.txt")
	require.NoError(t, f.documents.Create(context.Background(), doc))

	require.NoError(t, f.worker(context.Background(), doc.ID))

	require.Equal(t, []string{"https://files.example.com/notes.txt"}, f.fetcher.urls)

	chunks, err := f.chunks.ListByDocumentID(context.Background(), doc.ID)
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	require.Equal(t, "RELEASE NOTES", chunks[0].Heading)
}

func TestContentWorker_EmptyContentFailsDocument(t *testing.T) {
	t.Parallel()

	f := newContentWorkerFixture()
	doc := domain.NewDocument("doc-1", "Weekly Update", domain.TextInputType, "   \n  ", "")
	require.NoError(t, f.documents.Create(context.Background(), doc))

	require.Error(t, f.worker(context.Background(), doc.ID))

	failed, err := f.documents.GetByID(context.Background(), doc.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusError, failed.Status)
	require.Equal(t, "no text content found in document", failed.ErrorMessage)

	require.Empty(t, f.next.enqueued())
}

func TestContentWorker_ReRunDoesNotDuplicateChunks(t *testing.T) {
	t.Parallel()

	f := newContentWorkerFixture()
	doc := domain.NewDocument("doc-1", "Weekly Update", domain.TextInputType, "RELEASE NOTES\nWe released a new feature.", "")
	require.NoError(t, f.documents.Create(context.Background(), doc))

	require.NoError(t, f.worker(context.Background(), doc.ID))
	require.NoError(t, f.worker(context.Background(), doc.ID))

	chunks, err := f.chunks.ListByDocumentID(context.Background(), doc.ID)
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	require.Equal(t, []string{doc.ID, doc.ID}, f.next.enqueued())
}

func TestContentWorker_SkipsTerminalDocument(t *testing.T) {
	t.Parallel()

	f := newContentWorkerFixture()
	doc := domain.NewDocument("doc-1", "Weekly Update", domain.TextInputType, "RELEASE NOTES\nWe released a new feature.", "")
	doc.Status = domain.StatusError
	require.NoError(t, f.documents.Create(context.Background(), doc))

	require.NoError(t, f.worker(context.Background(), doc.ID))

	chunks, err := f.chunks.ListByDocumentID(context.Background(), doc.ID)
	require.NoError(t, err)
	require.Empty(t, chunks)
	require.Empty(t, f.next.enqueued())
}
