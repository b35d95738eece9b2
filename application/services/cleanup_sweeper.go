package services

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/SomSamantray/AI-Script-Creator/application/ports/outbound"
)

const (
	DefaultSweepInterval  = time.Hour
	DefaultMaxArtifactAge = 24 * time.Hour
)

// CleanupSweeper reaps stale per-document audio directories from the stable
// storage root. It runs once at process start and then on a fixed cadence.
type CleanupSweeper struct {
	logger   outbound.LoggerPort
	root     string
	maxAge   time.Duration
	interval time.Duration
}

func NewCleanupSweeper(logger outbound.LoggerPort, root string, maxAge time.Duration, interval time.Duration) *CleanupSweeper {
	if maxAge <= 0 {
		maxAge = DefaultMaxArtifactAge
	}
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &CleanupSweeper{
		logger:   logger,
		root:     root,
		maxAge:   maxAge,
		interval: interval,
	}
}

// Start sweeps immediately, then hourly until ctx is cancelled.
func (s *CleanupSweeper) Start(ctx context.Context) {
	go func() {
		s.Sweep(time.Now())

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				s.Sweep(now)
			}
		}
	}()
}

// Sweep deletes every per-document directory whose final audio file is older
// than the age threshold. A missing root or missing file means there is
// nothing to clean; deletion failures are logged, never escalated.
func (s *CleanupSweeper) Sweep(now time.Time) int {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Error(err, "Failed to list audio storage root")
		}
		return 0
	}

	removed := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		documentDir := filepath.Join(s.root, entry.Name())
		info, err := os.Stat(filepath.Join(documentDir, finalAudioFileName))
		if err != nil {
			continue
		}

		age := now.Sub(info.ModTime())
		if age <= s.maxAge {
			continue
		}

		if err := os.RemoveAll(documentDir); err != nil {
			s.logger.ErrorWithFields(err, "Failed to delete stale audio directory", map[string]interface{}{
				"document_id": entry.Name(),
			})
			continue
		}

		removed++
		s.logger.InfoWithFields("Deleted stale audio directory", map[string]interface{}{
			"document_id": entry.Name(),
			"age_hours":   int(age.Hours()),
		})
	}

	return removed
}
