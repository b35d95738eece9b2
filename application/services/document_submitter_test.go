package services

import (
	"context"
	"testing"

	"github.com/SomSamantray/AI-Script-Creator/application/ports/inbound"
	"github.com/SomSamantray/AI-Script-Creator/domain"
	"github.com/SomSamantray/AI-Script-Creator/infrastructure/adapters"
	"github.com/stretchr/testify/require"
)

func TestSubmit_TextDocument(t *testing.T) {
	t.Parallel()

	store := adapters.NewMemoryDocumentStore()
	enqueuer := &fakeEnqueuer{}
	submitter := NewDocumentSubmitter(noopLogger{}, store, enqueuer)

	doc, err := submitter.Submit(context.Background(), inbound.SubmitDocumentParams{
		Title:     "Weekly Update",
		InputType: domain.TextInputType,
		Content:   "enough content to pass validation",
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusQueued, doc.Status)
	require.Equal(t, 0, doc.ProgressPercentage)
	require.Equal(t, "Document queued for processing", doc.CurrentStep)

	stored, err := store.GetByID(context.Background(), doc.ID)
	require.NoError(t, err)
	require.Equal(t, "Weekly Update", stored.Title)

	require.Equal(t, []string{doc.ID}, enqueuer.enqueued())
}

func TestSubmit_ValidationFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params inbound.SubmitDocumentParams
	}{
		{
			name: "missing title",
			params: inbound.SubmitDocumentParams{
				InputType: domain.TextInputType,
				Content:   "enough content to pass validation",
			},
		},
		{
			name: "content too short",
			params: inbound.SubmitDocumentParams{
				Title:     "Weekly Update",
				InputType: domain.TextInputType,
				Content:   "short",
			},
		},
		{
			name: "file submission without url",
			params: inbound.SubmitDocumentParams{
				Title:     "Weekly Update",
				InputType: domain.FileInputType,
			},
		},
		{
			name: "unknown input type",
			params: inbound.SubmitDocumentParams{
				Title:     "Weekly Update",
				InputType: domain.InputType("pdf"),
				Content:   "enough content to pass validation",
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			enqueuer := &fakeEnqueuer{}
			submitter := NewDocumentSubmitter(noopLogger{}, adapters.NewMemoryDocumentStore(), enqueuer)

			_, err := submitter.Submit(context.Background(), tc.params)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Empty(t, enqueuer.enqueued())
		})
	}
}

func TestSubmit_FileDocument(t *testing.T) {
	t.Parallel()

	store := adapters.NewMemoryDocumentStore()
	enqueuer := &fakeEnqueuer{}
	submitter := NewDocumentSubmitter(noopLogger{}, store, enqueuer)

	doc, err := submitter.Submit(context.Background(), inbound.SubmitDocumentParams{
		Title:     "Uploaded Notes",
		InputType: domain.FileInputType,
		FileURL:   "https://files.example.com/notes.txt",
	})
	require.NoError(t, err)
	require.Equal(t, domain.FileInputType, doc.InputType)
	require.Equal(t, []string{doc.ID}, enqueuer.enqueued())
}
