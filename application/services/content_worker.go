package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SomSamantray/AI-Script-Creator/application/ports/inbound"
	"github.com/SomSamantray/AI-Script-Creator/application/ports/outbound"
	"github.com/SomSamantray/AI-Script-Creator/domain"
)

// contentWorker is pipeline stage one: it extracts the raw text, segments it
// into classified chunks and hands the document to the script stage.
type contentWorker struct {
	logger        outbound.LoggerPort
	documents     outbound.DocumentStorePort
	chunks        outbound.ChunkStorePort
	segmenter     inbound.TextSegmenterPort
	sourceFetcher outbound.SourceFetcherPort
	recorder      *ProgressRecorder
	next          outbound.JobEnqueuer
}

func NewContentWorker(
	logger outbound.LoggerPort,
	documents outbound.DocumentStorePort,
	chunks outbound.ChunkStorePort,
	segmenter inbound.TextSegmenterPort,
	sourceFetcher outbound.SourceFetcherPort,
	recorder *ProgressRecorder,
	next outbound.JobEnqueuer,
) inbound.StageWorkerPort {
	return &contentWorker{
		logger:        logger,
		documents:     documents,
		chunks:        chunks,
		segmenter:     segmenter,
		sourceFetcher: sourceFetcher,
		recorder:      recorder,
		next:          next,
	}
}

func (w *contentWorker) Process(ctx context.Context, documentID string) error {
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

func (w *contentWorker) process(ctx context.Context, doc *domain.Document) error {
	if err := w.recorder.Record(ctx, doc.ID, domain.StatusOrganizing, 5, "Extracting content..."); err != nil {
		return err
	}

	text, err := w.extractText(ctx, doc)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return errors.New("no text content found in document")
	}

	if err := w.recorder.Record(ctx, doc.ID, domain.StatusOrganizing, 15, "Chunking content into sections..."); err != nil {
		return err
	}

	// Re-runs of this stage must not duplicate chunks.
	existing, err := w.chunks.ListByDocumentID(ctx, doc.ID)
	if err != nil {
		return fmt.Errorf("list chunks: %w", err)
	}

	chunkCount := len(existing)
	if chunkCount == 0 {
		chunks := w.segmenter.Segment(doc.ID, text)
		if len(chunks) == 0 {
			return errors.New("no sections recognized in document text")
		}
		if err := w.chunks.CreateBatch(ctx, chunks); err != nil {
			return fmt.Errorf("save chunks: %w", err)
		}
		chunkCount = len(chunks)
	}

	if err := w.recorder.Record(ctx, doc.ID, domain.StatusOrganizing, 30, "Content organized into sections"); err != nil {
		return err
	}

	w.logger.InfoWithFields("Document content organized", map[string]interface{}{
		"document_id": doc.ID,
		"chunks":      chunkCount,
	})

	return w.next.Enqueue(doc.ID)
}

func (w *contentWorker) extractText(ctx context.Context, doc *domain.Document) (string, error) {
	if doc.InputType != domain.FileInputType {
		return doc.Content, nil
	}
	if doc.FileURL == "" {
		return "", errors.New("uploaded-file document has no source file reference")
	}
	payload, err := w.sourceFetcher.Fetch(ctx, doc.FileURL)
	if err != nil {
		return "", fmt.Errorf("fetch source file: %w", err)
	}
	return string(payload), nil
}
