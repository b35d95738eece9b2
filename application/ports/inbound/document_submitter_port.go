package inbound

import (
	"context"

	"github.com/SomSamantray/AI-Script-Creator/domain"
)

type SubmitDocumentParams struct {
	Title     string
	InputType domain.InputType
	Content   string
	FileURL   string
}

// DocumentSubmitterPort validates a submission, persists the document in its
// initial state and enqueues the first pipeline stage. Validation failures
// are reported before any job is enqueued.
type DocumentSubmitterPort interface {
	Submit(ctx context.Context, params SubmitDocumentParams) (*domain.Document, error)
}
