package outbound

import (
	"context"

	"github.com/SomSamantray/AI-Script-Creator/domain"
)

type ChunkStorePort interface {
	CreateBatch(ctx context.Context, chunks []domain.Chunk) error
	// ListByDocumentID returns the document's chunks sorted by chunk order.
	ListByDocumentID(ctx context.Context, documentID string) ([]domain.Chunk, error)
}
