package outbound

// TaskDispatcher abstracts a bounded worker pool. Submit blocks until the
// pool can take the task or returns an error if the pool is closed.
type TaskDispatcher interface {
	Submit(task func()) error
}
