package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func createStoredAudio(t *testing.T, root string, documentID string, age time.Duration) string {
	t.Helper()
	dir := filepath.Join(root, documentID)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	file := filepath.Join(dir, finalAudioFileName)
	require.NoError(t, os.WriteFile(file, []byte("audio"), 0o644))
	modTime := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(file, modTime, modTime))
	return dir
}

func TestSweep_RemovesOnlyStaleDirectories(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	stale := createStoredAudio(t, root, "doc-stale", 48*time.Hour)
	fresh := createStoredAudio(t, root, "doc-fresh", time.Hour)

	// A directory without a final audio file is not touched.
	pending := filepath.Join(root, "doc-pending")
	require.NoError(t, os.MkdirAll(pending, 0o755))

	sweeper := NewCleanupSweeper(noopLogger{}, root, 24*time.Hour, time.Hour)

	require.Equal(t, 1, sweeper.Sweep(time.Now()))

	_, err := os.Stat(stale)
	require.True(t, os.IsNotExist(err))
	_, err = os.Stat(fresh)
	require.NoError(t, err)
	_, err = os.Stat(pending)
	require.NoError(t, err)
}

func TestSweep_ExactlyAtThresholdIsKept(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	now := time.Now()
	dir := createStoredAudio(t, root, "doc-1", 0)
	require.NoError(t, os.Chtimes(filepath.Join(dir, finalAudioFileName), now.Add(-24*time.Hour), now.Add(-24*time.Hour)))

	sweeper := NewCleanupSweeper(noopLogger{}, root, 24*time.Hour, time.Hour)

	require.Equal(t, 0, sweeper.Sweep(now))
}

func TestSweep_MissingRoot(t *testing.T) {
	t.Parallel()

	sweeper := NewCleanupSweeper(noopLogger{}, filepath.Join(t.TempDir(), "does-not-exist"), 24*time.Hour, time.Hour)

	require.Equal(t, 0, sweeper.Sweep(time.Now()))
}
