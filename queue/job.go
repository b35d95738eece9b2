package queue

import (
	"errors"
	"fmt"
	"time"

	"github.com/SomSamantray/AI-Script-Creator/application/ports/outbound"
)

// Job is the payload travelling through a stage queue. The document id is
// the only cross-stage wire contract.
type Job struct {
	ID         string
	DocumentID string
	Attempts   int
	EnqueuedAt time.Time
}

// DeadJob is a job that exhausted its retry budget. It is retained for
// inspection only; the document itself keeps whatever status the last failed
// attempt persisted.
type DeadJob struct {
	Job
	Queue    string
	Reason   string
	FailedAt time.Time
}

// RetryableError marks a failure as transient infrastructure trouble
// (network, service 5xx). Only wrapped errors are retried by the queue;
// everything else is a business failure the worker has already reported on
// the document record.
type RetryableError struct {
	Err error
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.Err)
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

// IsRetryable accepts both explicitly wrapped errors and collaborator
// failures the adapters classified as transient.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re) || errors.Is(err, outbound.ErrTransient)
}
