package outbound

// JobEnqueuer accepts a job for a single document. The document id is the
// entire cross-stage wire contract and doubles as the idempotency key.
type JobEnqueuer interface {
	Enqueue(documentID string) error
}
