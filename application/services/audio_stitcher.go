package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/SomSamantray/AI-Script-Creator/application/ports/outbound"
)

var ErrNoPiecesToStitch = errors.New("no audio pieces to stitch")

type StitchResult struct {
	OutputPath      string
	DurationSeconds float64
	FileSizeBytes   int64
}

// AudioStitcher concatenates ordered audio pieces into one file and probes
// its duration and size through the transcoding collaborator.
type AudioStitcher struct {
	logger     outbound.LoggerPort
	transcoder outbound.AudioTranscoderPort
}

func NewAudioStitcher(logger outbound.LoggerPort, transcoder outbound.AudioTranscoderPort) *AudioStitcher {
	return &AudioStitcher{
		logger:     logger,
		transcoder: transcoder,
	}
}

// Stitch writes the combined audio to outputPath. A single piece is copied
// directly, byte for byte, with no transcoding.
func (s *AudioStitcher) Stitch(ctx context.Context, piecePaths []string, outputPath string) (*StitchResult, error) {
	switch {
	case len(piecePaths) == 0:
		return nil, ErrNoPiecesToStitch
	case len(piecePaths) == 1:
		if err := copyFile(piecePaths[0], outputPath); err != nil {
			return nil, fmt.Errorf("copy single piece: %w", err)
		}
	default:
		if err := s.transcoder.Concatenate(ctx, piecePaths, outputPath); err != nil {
			return nil, fmt.Errorf("concatenate %d pieces: %w", len(piecePaths), err)
		}
	}

	duration, err := s.transcoder.ProbeDuration(ctx, outputPath)
	if err != nil {
		return nil, fmt.Errorf("probe duration: %w", err)
	}

	info, err := os.Stat(outputPath)
	if err != nil {
		return nil, fmt.Errorf("stat output: %w", err)
	}

	s.logger.InfoWithFields("Stitched audio pieces", map[string]interface{}{
		"pieces":   len(piecePaths),
		"duration": duration,
		"bytes":    info.Size(),
	})

	return &StitchResult{
		OutputPath:      outputPath,
		DurationSeconds: duration,
		FileSizeBytes:   info.Size(),
	}, nil
}

func copyFile(src string, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		_ = in.Close()
	}()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
