package dto

// Wire contract of POST /api/upload-text.

type TextUploadRequest struct {
	Text      string `json:"text" validate:"required"`
	Timestamp string `json:"timestamp"`
	FileName  string `json:"fileName"`
}

type TextUploadResponse struct {
	Success bool   `json:"success"`
	FileId  string `json:"fileId,omitempty"`
	Message string `json:"message"`
	Url     string `json:"url,omitempty"`
}
