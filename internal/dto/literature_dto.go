package dto

import (
	"github.com/google/uuid"
)

// Wire contracts of POST /api/add-literature and POST /api/search-literature.

type AddLiteratureRequest struct {
	Text    string `json:"text" validate:"required"`
	Title   string `json:"title,omitempty"`
	Author  string `json:"author,omitempty"`
	Subject string `json:"subject,omitempty"`
}

type AddLiteratureResponse struct {
	Success    bool   `json:"success"`
	DocumentId string `json:"documentId,omitempty"`
	Message    string `json:"message"`
	Error      string `json:"error,omitempty"`
}

type SearchLiteratureRequest struct {
	Query    string `json:"query" validate:"required"`
	NResults int    `json:"n_results,omitempty"`
}

type LiteratureResult struct {
	Text     string                 `json:"text"`
	Metadata map[string]interface{} `json:"metadata"`
}

type SearchLiteratureResponse struct {
	Success bool               `json:"success"`
	Results []LiteratureResult `json:"results"`
	Count   int                `json:"count"`
	Message string             `json:"message,omitempty"`
	Error   string             `json:"error,omitempty"`
}

// PublishEmbedLiteratureMessage is the pub/sub payload that triggers chunking
// and embedding of a stored literature document.
type PublishEmbedLiteratureMessage struct {
	DocumentId uuid.UUID `json:"document_id"`
}
