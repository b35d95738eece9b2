package services

import (
	"context"
	"errors"
	"time"

	"github.com/SomSamantray/AI-Script-Creator/application/ports/inbound"
	"github.com/SomSamantray/AI-Script-Creator/application/ports/outbound"
	"github.com/SomSamantray/AI-Script-Creator/domain"
)

// DefaultPollInterval bounds progress staleness to one polling interval.
const DefaultPollInterval = 5 * time.Second

// progressBridge republishes document state as a live event stream. Workers
// never push events; everything flows through this poll loop.
type progressBridge struct {
	logger       outbound.LoggerPort
	documents    outbound.DocumentStorePort
	workerPool   outbound.TaskDispatcher
	pollInterval time.Duration
}

func NewProgressBridge(logger outbound.LoggerPort, documents outbound.DocumentStorePort, workerPool outbound.TaskDispatcher, pollInterval time.Duration) inbound.ProgressFeedPort {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	return &progressBridge{
		logger:       logger,
		documents:    documents,
		workerPool:   workerPool,
		pollInterval: pollInterval,
	}
}

// Stream emits the document's state immediately, then on every tick, and
// closes the channel once a terminal status is observed, the document
// disappears (error frame first) or the caller's ctx is cancelled.
func (b *progressBridge) Stream(ctx context.Context, documentID string) (<-chan domain.ProgressEvent, error) {
	out := make(chan domain.ProgressEvent, 1)

	err := b.workerPool.Submit(func() {
		defer close(out)

		ticker := time.NewTicker(b.pollInterval)
		defer ticker.Stop()

		if done := b.publish(ctx, documentID, out); done {
			return
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if done := b.publish(ctx, documentID, out); done {
					return
				}
			}
		}
	})
	if err != nil {
		close(out)
		return nil, err
	}

	return out, nil
}

// publish re-reads the document and emits one frame. It reports true when
// the stream should terminate.
func (b *progressBridge) publish(ctx context.Context, documentID string, out chan<- domain.ProgressEvent) bool {
	doc, err := b.documents.GetByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, outbound.ErrNotFound) {
			b.send(ctx, out, domain.ProgressEvent{
				Status:       domain.StatusError,
				ErrorMessage: "Document not found",
			})
			return true
		}
		b.logger.ErrorWithFields(err, "Failed to poll document state", map[string]interface{}{
			"document_id": documentID,
		})
		b.send(ctx, out, domain.ProgressEvent{
			Status:       domain.StatusError,
			ErrorMessage: "Error fetching document status",
		})
		return true
	}

	if !b.send(ctx, out, doc.ToProgressEvent()) {
		return true
	}

	return doc.Status.IsTerminal()
}

func (b *progressBridge) send(ctx context.Context, out chan<- domain.ProgressEvent, event domain.ProgressEvent) bool {
	select {
	case out <- event:
		return true
	case <-ctx.Done():
		return false
	}
}
