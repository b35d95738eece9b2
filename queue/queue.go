// Package queue implements the in-process stage queues of the narration
// pipeline: a bounded worker pool per queue, exponential-backoff retries for
// transient failures and a dead-job store for jobs that exhaust their budget.
package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SomSamantray/AI-Script-Creator/application/ports/outbound"
	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
)

const (
	DefaultMaxAttempts    = 3
	DefaultInitialBackoff = 2 * time.Second
	defaultBufferSize     = 256
)

var ErrQueueClosed = errors.New("queue is closed")

// Handler executes one job attempt for a document.
type Handler func(ctx context.Context, documentID string) error

type Config struct {
	Name           string
	Concurrency    int
	MaxAttempts    int
	InitialBackoff time.Duration
	BufferSize     int
	// OnExhausted runs after a job is moved to the dead set, so the
	// document is never left without a status change when retries run out.
	OnExhausted func(documentID string, cause error)
}

// Queue is a single stage queue. Concurrency is enforced by a fixed-size
// ants pool; jobs beyond the ceiling wait in the buffer.
type Queue struct {
	name           string
	logger         outbound.LoggerPort
	handler        Handler
	pool           *ants.Pool
	jobs           chan Job
	deadStore      *DeadJobStore
	deadCh         chan DeadJob
	maxAttempts    int
	initialBackoff time.Duration
	onExhausted    func(documentID string, cause error)
	cancel         context.CancelFunc
}

func New(cfg Config, handler Handler, deadStore *DeadJobStore, logger outbound.LoggerPort) (*Queue, error) {
	if cfg.Concurrency <= 0 {
		return nil, fmt.Errorf("queue %s: concurrency must be positive", cfg.Name)
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.InitialBackoff <= 0 {
		cfg.InitialBackoff = DefaultInitialBackoff
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = defaultBufferSize
	}

	pool, err := ants.NewPool(cfg.Concurrency, ants.WithPanicHandler(func(p interface{}) {
		logger.ErrorWithFields(fmt.Errorf("%v", p), "Panic in queue worker", map[string]interface{}{
			"queue": cfg.Name,
		})
	}))
	if err != nil {
		return nil, err
	}

	return &Queue{
		name:           cfg.Name,
		logger:         logger,
		handler:        handler,
		pool:           pool,
		jobs:           make(chan Job, cfg.BufferSize),
		deadStore:      deadStore,
		deadCh:         make(chan DeadJob, cfg.BufferSize),
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		onExhausted:    cfg.OnExhausted,
	}, nil
}

func (q *Queue) Name() string {
	return q.name
}

// DeadJobs surfaces exhausted jobs as they happen. The channel is closed
// when the queue stops.
func (q *Queue) DeadJobs() <-chan DeadJob {
	return q.deadCh
}

// Enqueue satisfies outbound.JobEnqueuer.
func (q *Queue) Enqueue(documentID string) error {
	job := Job{
		ID:         uuid.NewString(),
		DocumentID: documentID,
		EnqueuedAt: time.Now().UTC(),
	}
	select {
	case q.jobs <- job:
		q.logger.DebugWithFields("Job enqueued", map[string]interface{}{
			"queue":       q.name,
			"job_id":      job.ID,
			"document_id": documentID,
		})
		return nil
	default:
		return fmt.Errorf("queue %s: buffer full", q.name)
	}
}

// Start launches the dispatch loop. It returns immediately; jobs run on the
// queue's pool until ctx is cancelled.
func (q *Queue) Start(ctx context.Context) {
	runCtx, cancel := context.WithCancel(ctx)
	q.cancel = cancel

	go func() {
		defer close(q.deadCh)
		for {
			select {
			case <-runCtx.Done():
				return
			case job := <-q.jobs:
				j := job
				// Submit blocks until a pool worker frees up, which is
				// what bounds per-stage concurrency.
				if err := q.pool.Submit(func() {
					q.run(runCtx, j)
				}); err != nil {
					q.logger.ErrorWithFields(err, "Failed to submit job to pool", map[string]interface{}{
						"queue":  q.name,
						"job_id": j.ID,
					})
					return
				}
			}
		}
	}()
}

func (q *Queue) Stop() {
	if q.cancel != nil {
		q.cancel()
	}
	q.pool.Release()
}

// run executes a job with up to maxAttempts attempts. Only failures wrapped
// as RetryableError are retried; the workers report business failures on the
// document record themselves, so retrying them would only hammer a document
// already in a terminal error state.
func (q *Queue) run(ctx context.Context, job Job) {
	backoff := q.initialBackoff

	for {
		job.Attempts++
		err := q.handler(ctx, job.DocumentID)
		if err == nil {
			q.logger.DebugWithFields("Job completed", map[string]interface{}{
				"queue":       q.name,
				"job_id":      job.ID,
				"document_id": job.DocumentID,
				"attempts":    job.Attempts,
			})
			return
		}

		if !IsRetryable(err) || job.Attempts >= q.maxAttempts {
			q.bury(job, err)
			return
		}

		q.logger.WarnWithFields("Job attempt failed, retrying", map[string]interface{}{
			"queue":       q.name,
			"job_id":      job.ID,
			"document_id": job.DocumentID,
			"attempt":     job.Attempts,
			"backoff":     backoff.String(),
			"error":       err.Error(),
		})

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
		backoff *= 2
	}
}

func (q *Queue) bury(job Job, err error) {
	dead := DeadJob{
		Job:      job,
		Queue:    q.name,
		Reason:   err.Error(),
		FailedAt: time.Now().UTC(),
	}
	if q.deadStore != nil {
		q.deadStore.Add(dead)
	}
	q.logger.ErrorWithFields(err, "Job moved to dead set", map[string]interface{}{
		"queue":       q.name,
		"job_id":      job.ID,
		"document_id": job.DocumentID,
		"attempts":    job.Attempts,
	})
	select {
	case q.deadCh <- dead:
	default:
	}
	if q.onExhausted != nil {
		q.onExhausted(job.DocumentID, err)
	}
}
