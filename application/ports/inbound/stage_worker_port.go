package inbound

import "context"

// StageWorkerPort is one pipeline stage. Process must be safe to re-run
// against the current persisted state: the document id is the idempotency
// key, and a document already in a terminal status is skipped.
type StageWorkerPort interface {
	Process(ctx context.Context, documentID string) error
}
