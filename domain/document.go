package domain

import "time"

type DocumentStatus string

const (
	StatusQueued           DocumentStatus = "queued"
	StatusOrganizing       DocumentStatus = "organizing"
	StatusGeneratingScript DocumentStatus = "generating_script"
	StatusGeneratingAudio  DocumentStatus = "generating_audio"
	StatusStitching        DocumentStatus = "stitching"
	StatusComplete         DocumentStatus = "complete"
	StatusError            DocumentStatus = "error"
)

type InputType string

const (
	TextInputType InputType = "text"
	FileInputType InputType = "file"
)

// legalTransitions is the closed transition table for document statuses.
// Error is reachable from every non-terminal state; complete and error are
// terminal and absorbing.
var legalTransitions = map[DocumentStatus][]DocumentStatus{
	StatusQueued:           {StatusOrganizing, StatusError},
	StatusOrganizing:       {StatusGeneratingScript, StatusError},
	StatusGeneratingScript: {StatusGeneratingAudio, StatusError},
	StatusGeneratingAudio:  {StatusStitching, StatusError},
	StatusStitching:        {StatusComplete, StatusError},
	StatusComplete:         {},
	StatusError:            {},
}

func (s DocumentStatus) CanTransitionTo(next DocumentStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range legalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s DocumentStatus) IsTerminal() bool {
	return s == StatusComplete || s == StatusError
}

// Progress bands owned by each stage. These are part of the wire contract
// consumed by the UI and must not change without versioning.
const (
	OrganizingBandStart = 0
	ScriptBandStart     = 30
	AudioBandStart      = 60
	StitchingBandStart  = 90
	ProgressComplete    = 100
)

type Document struct {
	ID                 string
	Title              string
	InputType          InputType
	Content            string
	FileURL            string
	Status             DocumentStatus
	ProgressPercentage int
	CurrentStep        string
	ErrorMessage       string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func NewDocument(id string, title string, inputType InputType, content string, fileURL string) Document {
	now := time.Now().UTC()
	return Document{
		ID:                 id,
		Title:              title,
		InputType:          inputType,
		Content:            content,
		FileURL:            fileURL,
		Status:             StatusQueued,
		ProgressPercentage: 0,
		CurrentStep:        "Document queued for processing",
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
