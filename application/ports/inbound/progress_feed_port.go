package inbound

import (
	"context"

	"github.com/SomSamantray/AI-Script-Creator/domain"
)

// ProgressFeedPort exposes a per-document event stream. The returned channel
// is closed when a terminal status is observed, the document disappears
// (after an error frame) or ctx is cancelled.
type ProgressFeedPort interface {
	Stream(ctx context.Context, documentID string) (<-chan domain.ProgressEvent, error)
}
