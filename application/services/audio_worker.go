package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SomSamantray/AI-Script-Creator/application/ports/inbound"
	"github.com/SomSamantray/AI-Script-Creator/application/ports/outbound"
	"github.com/SomSamantray/AI-Script-Creator/domain"
)

const finalAudioFileName = "final.mp3"

// PieceProducer and Stitcher are the audio worker's collaborators; the
// concrete implementations live in this package.
type PieceProducer interface {
	Produce(ctx context.Context, script string, workDir string, onProgress ProgressCallback) ([]string, error)
}

type Stitcher interface {
	Stitch(ctx context.Context, piecePaths []string, outputPath string) (*StitchResult, error)
}

// audioWorker is the terminal pipeline stage: sequential piece synthesis,
// stitching, metadata probing and placement of the final file into stable
// storage. It enqueues nothing.
type audioWorker struct {
	logger        outbound.LoggerPort
	documents     outbound.DocumentStorePort
	audioOutputs  outbound.AudioOutputStorePort
	pieceProducer PieceProducer
	stitcher      Stitcher
	artifacts     outbound.ArtifactStorePort
	publisher     outbound.ArtifactPublisherPort
	recorder      *ProgressRecorder
	workRoot      string
}

func NewAudioWorker(
	logger outbound.LoggerPort,
	documents outbound.DocumentStorePort,
	audioOutputs outbound.AudioOutputStorePort,
	pieceProducer PieceProducer,
	stitcher Stitcher,
	artifacts outbound.ArtifactStorePort,
	publisher outbound.ArtifactPublisherPort,
	recorder *ProgressRecorder,
	workRoot string,
) inbound.StageWorkerPort {
	return &audioWorker{
		logger:        logger,
		documents:     documents,
		audioOutputs:  audioOutputs,
		pieceProducer: pieceProducer,
		stitcher:      stitcher,
		artifacts:     artifacts,
		publisher:     publisher,
		recorder:      recorder,
		workRoot:      workRoot,
	}
}

func (w *audioWorker) Process(ctx context.Context, documentID string) error {
	doc, skip, err := loadForStage(ctx, w.documents, documentID)
	if err != nil {
		return err
	}
	if skip {
		w.logger.WarnWithFields("Skipping document in terminal status", map[string]interface{}{
			"document_id": documentID,
			"status":      doc.Status,
		})
		return nil
	}

	workDir := filepath.Join(w.workRoot, documentID)
	if err := w.process(ctx, doc, workDir); err != nil {
		w.removeWorkDir(workDir)
		return failStage(ctx, w.logger, w.recorder, documentID, err)
	}

	w.removeWorkDir(workDir)
	return nil
}

func (w *audioWorker) process(ctx context.Context, doc *domain.Document, workDir string) error {
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return fmt.Errorf("create work dir: %w", err)
	}

	if err := w.recorder.Record(ctx, doc.ID, domain.StatusGeneratingAudio, 60, "Converting script to audio..."); err != nil {
		return err
	}

	output, err := w.audioOutputs.GetByDocumentID(ctx, doc.ID)
	if err != nil {
		return fmt.Errorf("load audio output: %w", err)
	}
	if output.ScriptText == "" {
		return errors.New("no script found for document")
	}

	piecePaths, err := w.pieceProducer.Produce(ctx, output.ScriptText, workDir, func(done, total int) {
		// Piece progress owns the 60-90 band.
		progress := domain.AudioBandStart + done*(domain.StitchingBandStart-domain.AudioBandStart)/total
		step := fmt.Sprintf("Generating audio chunk %d/%d...", done, total)
		if recErr := w.recorder.Record(ctx, doc.ID, domain.StatusGeneratingAudio, progress, step); recErr != nil {
			w.logger.WarnWithFields("Failed to record piece progress", map[string]interface{}{
				"document_id": doc.ID,
				"error":       recErr.Error(),
			})
		}
	})
	if err != nil {
		return err
	}

	if err := w.recorder.Record(ctx, doc.ID, domain.StatusStitching, 90, "Stitching audio chunks..."); err != nil {
		return err
	}

	result, err := w.stitcher.Stitch(ctx, piecePaths, filepath.Join(workDir, finalAudioFileName))
	if err != nil {
		return err
	}

	if err := w.recorder.Record(ctx, doc.ID, domain.StatusStitching, 95, "Saving audio file..."); err != nil {
		return err
	}

	audioURL, err := w.artifacts.Store(ctx, doc.ID, result.OutputPath)
	if err != nil {
		return fmt.Errorf("store audio artifact: %w", err)
	}

	if w.publisher != nil {
		if _, pubErr := w.publisher.Publish(ctx, doc.ID, w.artifacts.FilePath(doc.ID)); pubErr != nil {
			// Mirroring is best-effort; the stable local copy is the one
			// the record references.
			w.logger.ErrorWithFields(pubErr, "Failed to mirror audio artifact", map[string]interface{}{
				"document_id": doc.ID,
			})
		}
	}

	if err := w.audioOutputs.UpdateByDocumentID(ctx, doc.ID, outbound.AudioOutputUpdate{
		AudioURL:        &audioURL,
		DurationSeconds: &result.DurationSeconds,
		FileSizeBytes:   &result.FileSizeBytes,
	}); err != nil {
		return fmt.Errorf("update audio output: %w", err)
	}

	if err := w.recorder.Record(ctx, doc.ID, domain.StatusComplete, 100, "Audio generation complete!"); err != nil {
		return err
	}

	w.logger.InfoWithFields("Audio generation complete", map[string]interface{}{
		"document_id": doc.ID,
		"duration":    result.DurationSeconds,
		"bytes":       result.FileSizeBytes,
	})

	return nil
}

// removeWorkDir is best-effort: an undeletable workdir is logged, never
// escalated to a user-visible failure.
func (w *audioWorker) removeWorkDir(workDir string) {
	if err := os.RemoveAll(workDir); err != nil {
		w.logger.ErrorWithFields(err, "Failed to remove working directory", map[string]interface{}{
			"work_dir": workDir,
		})
	}
}
