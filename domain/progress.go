package domain

// ProgressEvent is one frame of the progress stream: newline-delimited JSON
// on the wire, emitted immediately on connect and then every polling interval
// until a terminal status is observed.
type ProgressEvent struct {
	Status       DocumentStatus `json:"status"`
	Progress     int            `json:"progress"`
	CurrentStep  string         `json:"currentStep"`
	ErrorMessage string         `json:"errorMessage,omitempty"`
}

func (d Document) ToProgressEvent() ProgressEvent {
	return ProgressEvent{
		Status:       d.Status,
		Progress:     d.ProgressPercentage,
		CurrentStep:  d.CurrentStep,
		ErrorMessage: d.ErrorMessage,
	}
}
