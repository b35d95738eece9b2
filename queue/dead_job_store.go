package queue

import (
	"context"
	"sync"
	"time"
)

const DefaultDeadJobRetention = 7 * 24 * time.Hour

// DeadJobStore keeps exhausted jobs in memory for inspection and drops them
// once they outlive the retention window.
type DeadJobStore struct {
	mu        sync.Mutex
	jobs      []DeadJob
	retention time.Duration
}

func NewDeadJobStore(retention time.Duration) *DeadJobStore {
	if retention <= 0 {
		retention = DefaultDeadJobRetention
	}
	return &DeadJobStore{retention: retention}
}

func (s *DeadJobStore) Add(job DeadJob) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append(s.jobs, job)
}

func (s *DeadJobStore) List() []DeadJob {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]DeadJob, len(s.jobs))
	copy(out, s.jobs)
	return out
}

func (s *DeadJobStore) Purge(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.jobs[:0]
	purged := 0
	for _, job := range s.jobs {
		if now.Sub(job.FailedAt) <= s.retention {
			kept = append(kept, job)
		} else {
			purged++
		}
	}
	s.jobs = kept
	return purged
}

// StartPurgeLoop purges expired dead jobs on the given cadence until ctx is
// cancelled.
func (s *DeadJobStore) StartPurgeLoop(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Purge(time.Now())
			}
		}
	}()
}
