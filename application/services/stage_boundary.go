package services

import (
	"context"
	"errors"

	"github.com/SomSamantray/AI-Script-Creator/application/ports/outbound"
	"github.com/SomSamantray/AI-Script-Creator/domain"
	"github.com/SomSamantray/AI-Script-Creator/queue"
)

// loadForStage fetches the document a job refers to. A document already in a
// terminal status is skipped: error is absorbing, and re-delivery of a
// finished document's job must be a no-op. Store trouble other than
// not-found is reported as transient so the queue retries it.
func loadForStage(ctx context.Context, store outbound.DocumentStorePort, documentID string) (*domain.Document, bool, error) {
	doc, err := store.GetByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, outbound.ErrNotFound) {
			return nil, false, err
		}
		return nil, false, queue.Retryable(err)
	}
	if doc.Status.IsTerminal() {
		return doc, true, nil
	}
	return doc, false, nil
}

// failStage is the stage error boundary. Business failures are persisted as
// the document's error status immediately, before any job-level retry could
// trigger. Transient infrastructure failures are handed back to the queue
// untouched so its backoff retries apply; if they run out, the queue's
// exhaustion hook records the error, so the document is never left silently
// stuck either way.
func failStage(ctx context.Context, logger outbound.LoggerPort, recorder *ProgressRecorder, documentID string, cause error) error {
	if queue.IsRetryable(cause) {
		return cause
	}
	if recErr := recorder.RecordFailure(ctx, documentID, cause.Error()); recErr != nil {
		logger.ErrorWithFields(recErr, "Failed to persist error status", map[string]interface{}{
			"document_id": documentID,
			"cause":       cause.Error(),
		})
		return queue.Retryable(cause)
	}
	return cause
}
