package adapters

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/SomSamantray/AI-Script-Creator/application/ports/outbound"
	"github.com/google/uuid"
)

// ffmpegTranscoder shells out to ffmpeg/ffprobe. Concatenation uses the
// concat demuxer with stream copy, so pieces are joined without re-encoding
// and in exactly the order given.
type ffmpegTranscoder struct {
	logger outbound.LoggerPort
}

func NewFFmpegTranscoder(logger outbound.LoggerPort) outbound.AudioTranscoderPort {
	return &ffmpegTranscoder{
		logger: logger,
	}
}

func (f *ffmpegTranscoder) Concatenate(ctx context.Context, inputPaths []string, outputPath string) error {
	if len(inputPaths) == 0 {
		return fmt.Errorf("no input files to concatenate")
	}

	listFileName := filepath.Join(filepath.Dir(outputPath), uuid.NewString()+".txt")
	fileList, err := os.Create(listFileName)
	if err != nil {
		f.logger.Error(err, "Failed to create concat list file")
		return err
	}
	defer func() {
		if removeErr := os.Remove(listFileName); removeErr != nil {
			f.logger.Error(removeErr, "Failed to remove concat list file")
		}
	}()

	writer := bufio.NewWriter(fileList)
	for _, path := range inputPaths {
		if _, err = writer.WriteString("file '" + path + "'\n"); err != nil {
			f.logger.Error(err, "Failed to write to concat list file")
			_ = fileList.Close()
			return err
		}
	}
	if err = writer.Flush(); err != nil {
		f.logger.Error(err, "Failed to flush concat list file")
		_ = fileList.Close()
		return err
	}
	if err = fileList.Close(); err != nil {
		f.logger.Error(err, "Failed to close concat list file")
		return err
	}

	cmd := exec.CommandContext(ctx, "ffmpeg", "-y", "-f", "concat", "-safe", "0", "-i", listFileName, "-c", "copy", outputPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		f.logger.ErrorWithFields(err, "Failed to concatenate audio files", map[string]interface{}{
			"output": string(out),
		})
		return fmt.Errorf("ffmpeg concat: %w", err)
	}

	return nil
}

func (f *ffmpegTranscoder) ProbeDuration(ctx context.Context, path string) (float64, error) {
	cmd := exec.CommandContext(ctx, "ffprobe", "-v", "error", "-show_entries", "format=duration", "-of", "default=noprint_wrappers=1:nokey=1", path)

	out, err := cmd.Output()
	if err != nil {
		f.logger.Error(err, "Failed to probe audio duration")
		return 0, err
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		f.logger.Error(err, "Failed to parse audio duration")
		return 0, err
	}

	return duration, nil
}
