package entity

import (
	"time"

	"github.com/google/uuid"
)

// TextFile records an extracted-notes upload persisted to local storage.
type TextFile struct {
	Id        uuid.UUID
	FileName  string
	Path      string
	SizeBytes int64
	CreatedAt time.Time
	DeletedAt *time.Time
	IsDeleted bool
}
