package mapper

import (
	"time"

	"student-notes-ai/internal/entity"
	"student-notes-ai/internal/model"

	"gorm.io/gorm"
)

type TextFileMapper struct{}

func NewTextFileMapper() *TextFileMapper {
	return &TextFileMapper{}
}

func (m *TextFileMapper) ToEntity(f *model.TextFile) *entity.TextFile {
	if f == nil {
		return nil
	}

	var deletedAt *time.Time
	if f.DeletedAt.Valid {
		t := f.DeletedAt.Time
		deletedAt = &t
	}

	return &entity.TextFile{
		Id:        f.Id,
		FileName:  f.FileName,
		Path:      f.Path,
		SizeBytes: f.SizeBytes,
		CreatedAt: f.CreatedAt,
		DeletedAt: deletedAt,
		IsDeleted: f.DeletedAt.Valid,
	}
}

func (m *TextFileMapper) ToModel(f *entity.TextFile) *model.TextFile {
	if f == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if f.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *f.DeletedAt, Valid: true}
	} else if f.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	return &model.TextFile{
		Id:        f.Id,
		FileName:  f.FileName,
		Path:      f.Path,
		SizeBytes: f.SizeBytes,
		CreatedAt: f.CreatedAt,
		DeletedAt: deletedAt,
	}
}
