package dto

// Wire contract of POST /api/complete-notes. Field names are fixed by the
// mobile client; do not rename.

type CompletionRequest struct {
	ExtractedText string `json:"extractedText" validate:"required"`
	Subject       string `json:"subject,omitempty"`
	Context       string `json:"context,omitempty"`
}

type CompletionResponse struct {
	Success        bool     `json:"success"`
	CompletedNotes string   `json:"completedNotes,omitempty"`
	Sources        []string `json:"sources,omitempty"`
	Error          string   `json:"error,omitempty"`
	OriginalText   string   `json:"originalText,omitempty"`
}
