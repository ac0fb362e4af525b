package entity

import (
	"time"

	"github.com/google/uuid"
)

// LiteratureDocument is a reference text indexed for similarity search.
type LiteratureDocument struct {
	Id         uuid.UUID
	Text       string
	Title      string
	Author     string
	Subject    string
	UploadedAt time.Time
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	DeletedAt  *time.Time
	IsDeleted  bool
}

// LiteratureEmbedding is one embedded chunk of a literature document.
type LiteratureEmbedding struct {
	Id             uuid.UUID
	Document       string // the chunk text itself
	EmbeddingValue []float32
	DocumentId     uuid.UUID
	ChunkIndex     int
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	DeletedAt      *time.Time
	IsDeleted      bool
}
