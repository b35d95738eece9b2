package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SomSamantray/AI-Script-Creator/application/ports/inbound"
	"github.com/SomSamantray/AI-Script-Creator/application/ports/outbound"
	"github.com/SomSamantray/AI-Script-Creator/domain"
	"github.com/google/uuid"
)

// scriptWorker is pipeline stage two: it assembles the chunk prompt, asks
// the text-generation collaborator for one cohesive narration script and
// records it on a fresh AudioOutput before queueing the audio stage.
type scriptWorker struct {
	logger          outbound.LoggerPort
	documents       outbound.DocumentStorePort
	chunks          outbound.ChunkStorePort
	audioOutputs    outbound.AudioOutputStorePort
	scriptGenerator outbound.ScriptGeneratorPort
	recorder        *ProgressRecorder
	next            outbound.JobEnqueuer
}

func NewScriptWorker(
	logger outbound.LoggerPort,
	documents outbound.DocumentStorePort,
	chunks outbound.ChunkStorePort,
	audioOutputs outbound.AudioOutputStorePort,
	scriptGenerator outbound.ScriptGeneratorPort,
	recorder *ProgressRecorder,
	next outbound.JobEnqueuer,
) inbound.StageWorkerPort {
	return &scriptWorker{
		logger:          logger,
		documents:       documents,
		chunks:          chunks,
		audioOutputs:    audioOutputs,
		scriptGenerator: scriptGenerator,
		recorder:        recorder,
		next:            next,
	}
}

func (w *scriptWorker) Process(ctx context.Context, documentID string) error {
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

	if err := w.process(ctx, doc); err != nil {
		return failStage(ctx, w.logger, w.recorder, documentID, err)
	}
	return nil
}

func (w *scriptWorker) process(ctx context.Context, doc *domain.Document) error {
	if err := w.recorder.Record(ctx, doc.ID, domain.StatusGeneratingScript, 35, "Generating narrative script..."); err != nil {
		return err
	}

	// A re-run after a transient failure may find the script already
	// persisted; generating it twice would waste the collaborator call.
	scriptLength := 0
	if existing, err := w.audioOutputs.GetByDocumentID(ctx, doc.ID); err == nil {
		scriptLength = len(existing.ScriptText)
	} else if !errors.Is(err, outbound.ErrNotFound) {
		return fmt.Errorf("load audio output: %w", err)
	}

	if scriptLength == 0 {
		chunks, err := w.chunks.ListByDocumentID(ctx, doc.ID)
		if err != nil {
			return fmt.Errorf("load chunks: %w", err)
		}
		if len(chunks) == 0 {
			return errors.New("no chunks found for document")
		}

		script, err := w.scriptGenerator.Generate(ctx, outbound.GenerateScriptRequest{
			SystemPrompt: narrationSystemPrompt,
			UserPrompt:   BuildScriptPrompt(chunks),
		})
		if err != nil {
			return fmt.Errorf("generate script: %w", err)
		}
		if strings.TrimSpace(script) == "" {
			return errors.New("text-generation service returned an empty script")
		}

		// Audio fields stay empty until the audio stage fills them in.
		output := domain.NewAudioOutput(uuid.NewString(), doc.ID, strings.TrimSpace(script))
		if err := w.audioOutputs.Create(ctx, output); err != nil {
			return fmt.Errorf("save audio output: %w", err)
		}
		scriptLength = len(output.ScriptText)
	}

	if err := w.recorder.Record(ctx, doc.ID, domain.StatusGeneratingScript, 60, "Script generated successfully"); err != nil {
		return err
	}

	w.logger.InfoWithFields("Narrative script generated", map[string]interface{}{
		"document_id":   doc.ID,
		"script_length": scriptLength,
	})

	return w.next.Enqueue(doc.ID)
}
