package domain

import "time"

// AudioOutput holds the generated script and, once the audio stage has run,
// the location and metadata of the stitched audio file. Between script
// generation and audio completion the record exists with empty audio fields.
type AudioOutput struct {
	ID              string
	DocumentID      string
	ScriptText      string
	AudioURL        string
	DurationSeconds float64
	FileSizeBytes   int64
	CreatedAt       time.Time
}

func NewAudioOutput(id string, documentID string, scriptText string) AudioOutput {
	return AudioOutput{
		ID:         id,
		DocumentID: documentID,
		ScriptText: scriptText,
		CreatedAt:  time.Now().UTC(),
	}
}
