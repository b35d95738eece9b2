package outbound

import (
	"context"

	"github.com/SomSamantray/AI-Script-Creator/domain"
)

// DocumentUpdate is a partial, whole-field upsert: nil fields are left
// untouched. Stages only ever set fields within their own progress band, so
// last-writer-wins is safe under the sequential-stage invariant.
type DocumentUpdate struct {
	Status             *domain.DocumentStatus
	ProgressPercentage *int
	CurrentStep        *string
	ErrorMessage       *string
}

type DocumentStorePort interface {
	Create(ctx context.Context, doc domain.Document) error
	GetByID(ctx context.Context, id string) (*domain.Document, error)
	Update(ctx context.Context, id string, update DocumentUpdate) error
}
