package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writePiece(t *testing.T, dir string, name string, payload string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))
	return path
}

func TestStitch_NoPieces(t *testing.T) {
	t.Parallel()

	stitcher := NewAudioStitcher(noopLogger{}, &fakeTranscoder{})

	_, err := stitcher.Stitch(context.Background(), nil, filepath.Join(t.TempDir(), "final.mp3"))
	require.ErrorIs(t, err, ErrNoPiecesToStitch)
}

func TestStitch_SinglePieceIsCopiedByteForByte(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	piece := writePiece(t, dir, "piece_0.mp3", "single-piece-audio-bytes")
	output := filepath.Join(dir, "final.mp3")

	stitcher := NewAudioStitcher(noopLogger{}, &fakeTranscoder{duration: 12.5})

	result, err := stitcher.Stitch(context.Background(), []string{piece}, output)
	require.NoError(t, err)

	payload, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Equal(t, "single-piece-audio-bytes", string(payload))

	require.Equal(t, output, result.OutputPath)
	require.Equal(t, 12.5, result.DurationSeconds)
	require.Equal(t, int64(len(payload)), result.FileSizeBytes)
}

func TestStitch_ManyPiecesUseTranscoderInOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	pieces := []string{
		writePiece(t, dir, "piece_0.mp3", "aaa"),
		writePiece(t, dir, "piece_1.mp3", "bbb"),
		writePiece(t, dir, "piece_2.mp3", "ccc"),
	}
	output := filepath.Join(dir, "final.mp3")

	stitcher := NewAudioStitcher(noopLogger{}, &fakeTranscoder{duration: 42})

	result, err := stitcher.Stitch(context.Background(), pieces, output)
	require.NoError(t, err)

	payload, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Equal(t, "aaabbbccc", string(payload))
	require.Equal(t, int64(9), result.FileSizeBytes)
	require.Equal(t, float64(42), result.DurationSeconds)
}
