package specification

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByID filters by ID
type ByID struct {
	ID uuid.UUID
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

// ByIDs filters by a list of IDs
type ByIDs struct {
	IDs []uuid.UUID
}

func (s ByIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id IN ?", s.IDs)
}

// ByDocumentID filters embedding chunks by their parent literature document
type ByDocumentID struct {
	DocumentID uuid.UUID
}

func (s ByDocumentID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("document_id = ?", s.DocumentID)
}

// ByFileName filters text file records by stored file name
type ByFileName struct {
	FileName string
}

func (s ByFileName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("file_name = ?", s.FileName)
}

// OrderBy applies ordering
type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	direction := "ASC"
	if s.Desc {
		direction = "DESC"
	}
	return db.Order(fmt.Sprintf("%s %s", s.Field, direction))
}

// NotDeleted filters out soft-deleted records (explicitly).
// GORM applies this automatically when DeletedAt is present; this exists for
// queries where the global scope is disabled.
type NotDeleted struct{}

func (s NotDeleted) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("deleted_at IS NULL")
}

// Pagination
type Pagination struct {
	Limit  int
	Offset int
}

func (s Pagination) Apply(db *gorm.DB) *gorm.DB {
	return db.Limit(s.Limit).Offset(s.Offset)
}
