package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/SomSamantray/AI-Script-Creator/application/ports/inbound"
	"github.com/SomSamantray/AI-Script-Creator/application/ports/outbound"
	"github.com/SomSamantray/AI-Script-Creator/domain"
	"github.com/google/uuid"
)

// MinContentLength is the canonical submission minimum for inline text.
const MinContentLength = 10

// ValidationError marks a submission rejected before any job was enqueued.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type documentSubmitter struct {
	logger    outbound.LoggerPort
	documents outbound.DocumentStorePort
	firstStage outbound.JobEnqueuer
}

func NewDocumentSubmitter(logger outbound.LoggerPort, documents outbound.DocumentStorePort, firstStage outbound.JobEnqueuer) inbound.DocumentSubmitterPort {
	return &documentSubmitter{
		logger:     logger,
		documents:  documents,
		firstStage: firstStage,
	}
}

func (s *documentSubmitter) Submit(ctx context.Context, params inbound.SubmitDocumentParams) (*domain.Document, error) {
	if err := validateSubmission(params); err != nil {
		return nil, err
	}

	doc := domain.NewDocument(uuid.NewString(), strings.TrimSpace(params.Title), params.InputType, params.Content, params.FileURL)
	if err := s.documents.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}

	if err := s.firstStage.Enqueue(doc.ID); err != nil {
		return nil, fmt.Errorf("enqueue document processing: %w", err)
	}

	s.logger.InfoWithFields("Document submitted", map[string]interface{}{
		"document_id": doc.ID,
		"input_type":  doc.InputType,
	})

	return &doc, nil
}

func validateSubmission(params inbound.SubmitDocumentParams) error {
	if strings.TrimSpace(params.Title) == "" {
		return &ValidationError{Message: "Title is required"}
	}

	switch params.InputType {
	case domain.TextInputType:
		if len(strings.TrimSpace(params.Content)) < MinContentLength {
			return &ValidationError{Message: fmt.Sprintf("Content must be at least %d characters", MinContentLength)}
		}
	case domain.FileInputType:
		if strings.TrimSpace(params.FileURL) == "" {
			return &ValidationError{Message: "File URL is required for uploaded-file submissions"}
		}
	default:
		return &ValidationError{Message: "Invalid input type"}
	}

	return nil
}
