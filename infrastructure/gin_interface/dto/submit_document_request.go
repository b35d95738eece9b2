package dto

type SubmitDocumentRequest struct {
	Title     string `json:"title" binding:"required"`
	InputType string `json:"input_type" binding:"required"`
	Content   string `json:"content"`
	FileURL   string `json:"file_url"`
}

type SubmitDocumentResponse struct {
	DocumentID string `json:"document_id"`
	Status     string `json:"status"`
}

type DocumentResponse struct {
	DocumentID         string `json:"document_id"`
	Title              string `json:"title"`
	InputType          string `json:"input_type"`
	Status             string `json:"status"`
	ProgressPercentage int    `json:"progress_percentage"`
	CurrentStep        string `json:"current_step"`
	ErrorMessage       string `json:"error_message,omitempty"`
	CreatedAt          string `json:"created_at"`
	UpdatedAt          string `json:"updated_at"`
}

type AudioOutputResponse struct {
	DocumentID      string  `json:"document_id"`
	ScriptText      string  `json:"script_text"`
	AudioURL        string  `json:"audio_url"`
	DurationSeconds float64 `json:"duration_seconds"`
	FileSizeBytes   int64   `json:"file_size_bytes"`
}
