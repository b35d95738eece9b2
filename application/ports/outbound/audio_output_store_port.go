package outbound

import (
	"context"

	"github.com/SomSamantray/AI-Script-Creator/domain"
)

type AudioOutputUpdate struct {
	AudioURL        *string
	DurationSeconds *float64
	FileSizeBytes   *int64
}

type AudioOutputStorePort interface {
	Create(ctx context.Context, output domain.AudioOutput) error
	GetByDocumentID(ctx context.Context, documentID string) (*domain.AudioOutput, error)
	UpdateByDocumentID(ctx context.Context, documentID string, update AudioOutputUpdate) error
}
