package mapper

import (
	"time"

	"student-notes-ai/internal/entity"
	"student-notes-ai/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type LiteratureMapper struct{}

func NewLiteratureMapper() *LiteratureMapper {
	return &LiteratureMapper{}
}

func (m *LiteratureMapper) ToEntity(d *model.LiteratureDocument) *entity.LiteratureDocument {
	if d == nil {
		return nil
	}

	var deletedAt *time.Time
	if d.DeletedAt.Valid {
		t := d.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !d.UpdatedAt.IsZero() {
		t := d.UpdatedAt
		updatedAt = &t
	}

	e := &entity.LiteratureDocument{
		Id:        d.Id,
		Text:      d.Text,
		CreatedAt: d.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
		IsDeleted: d.DeletedAt.Valid,
	}

	e.Title = metadataString(d.Metadata, "title")
	e.Author = metadataString(d.Metadata, "author")
	e.Subject = metadataString(d.Metadata, "subject")
	if raw := metadataString(d.Metadata, "uploaded_at"); raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			e.UploadedAt = t
		}
	}

	return e
}

func (m *LiteratureMapper) ToModel(d *entity.LiteratureDocument) *model.LiteratureDocument {
	if d == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if d.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *d.DeletedAt, Valid: true}
	} else if d.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if d.UpdatedAt != nil {
		updatedAt = *d.UpdatedAt
	}

	uploadedAt := d.UploadedAt
	if uploadedAt.IsZero() {
		uploadedAt = time.Now()
	}

	return &model.LiteratureDocument{
		Id:   d.Id,
		Text: d.Text,
		Metadata: datatypes.JSONMap{
			"title":       d.Title,
			"author":      d.Author,
			"subject":     d.Subject,
			"uploaded_at": uploadedAt.Format(time.RFC3339),
		},
		CreatedAt: d.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
	}
}

func (m *LiteratureMapper) ToEntities(docs []*model.LiteratureDocument) []*entity.LiteratureDocument {
	entities := make([]*entity.LiteratureDocument, len(docs))
	for i, d := range docs {
		entities[i] = m.ToEntity(d)
	}
	return entities
}

func metadataString(meta datatypes.JSONMap, key string) string {
	if meta == nil {
		return ""
	}
	if v, ok := meta[key].(string); ok {
		return v
	}
	return ""
}
