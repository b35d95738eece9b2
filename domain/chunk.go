package domain

import "time"

type SectionType string

const (
	PlannedReleasesSection SectionType = "planned_releases"
	TechReleasesSection    SectionType = "tech_releases"
	BugsFixesSection       SectionType = "bugs_fixes"
	OtherSection           SectionType = "other"
)

// SectionPriority is the fixed order sections are grouped in when the
// script prompt is assembled.
var SectionPriority = []SectionType{
	PlannedReleasesSection,
	TechReleasesSection,
	BugsFixesSection,
	OtherSection,
}

type Chunk struct {
	ID          string
	DocumentID  string
	SectionType SectionType
	Heading     string
	Content     string
	ChunkOrder  int
	CreatedAt   time.Time
}

func NewChunk(id string, documentID string, sectionType SectionType, heading string, content string, order int) Chunk {
	return Chunk{
		ID:          id,
		DocumentID:  documentID,
		SectionType: sectionType,
		Heading:     heading,
		Content:     content,
		ChunkOrder:  order,
		CreatedAt:   time.Now().UTC(),
	}
}
