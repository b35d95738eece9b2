package services

import (
	"context"
	"fmt"

	"github.com/SomSamantray/AI-Script-Creator/application/ports/outbound"
	"github.com/SomSamantray/AI-Script-Creator/domain"
)

var ErrIllegalTransition = fmt.Errorf("illegal status transition")

// ProgressRecorder is the single write path for document status and
// progress. It enforces the transition table and keeps progress_percentage
// monotonically non-decreasing while the document is non-terminal, so no
// stage can regress progress recorded by an earlier one.
type ProgressRecorder struct {
	logger outbound.LoggerPort
	store  outbound.DocumentStorePort
}

func NewProgressRecorder(logger outbound.LoggerPort, store outbound.DocumentStorePort) *ProgressRecorder {
	return &ProgressRecorder{
		logger: logger,
		store:  store,
	}
}

// Record moves the document to the given status/progress/step. Passing the
// current status with a higher progress is a plain progress update.
func (r *ProgressRecorder) Record(ctx context.Context, documentID string, status domain.DocumentStatus, progress int, step string) error {
	doc, err := r.store.GetByID(ctx, documentID)
	if err != nil {
		return err
	}

	if !doc.Status.CanTransitionTo(status) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, doc.Status, status)
	}
	// A retried stage may restart inside its own band; progress never moves
	// backwards on the record.
	if progress < doc.ProgressPercentage {
		progress = doc.ProgressPercentage
	}

	update := outbound.DocumentUpdate{
		Status:             &status,
		ProgressPercentage: &progress,
		CurrentStep:        &step,
	}
	if err := r.store.Update(ctx, documentID, update); err != nil {
		return err
	}

	r.logger.DebugWithFields("Recorded document progress", map[string]interface{}{
		"document_id": documentID,
		"status":      status,
		"progress":    progress,
		"step":        step,
	})

	return nil
}

// RecordFailure marks the document as failed with the collaborator's message
// surfaced verbatim. Error is terminal and absorbing; recording a failure on
// a document already in error is a no-op.
func (r *ProgressRecorder) RecordFailure(ctx context.Context, documentID string, message string) error {
	doc, err := r.store.GetByID(ctx, documentID)
	if err != nil {
		return err
	}
	if doc.Status == domain.StatusError {
		return nil
	}
	if !doc.Status.CanTransitionTo(domain.StatusError) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, doc.Status, domain.StatusError)
	}

	status := domain.StatusError
	update := outbound.DocumentUpdate{
		Status:       &status,
		ErrorMessage: &message,
	}
	return r.store.Update(ctx, documentID, update)
}
