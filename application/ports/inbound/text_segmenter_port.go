package inbound

import "github.com/SomSamantray/AI-Script-Creator/domain"

// TextSegmenterPort splits raw document text into ordered, classified
// chunks. Order indices form a contiguous range starting at 0.
type TextSegmenterPort interface {
	Segment(documentID string, text string) []domain.Chunk
}
