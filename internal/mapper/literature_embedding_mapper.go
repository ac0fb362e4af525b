package mapper

import (
	"time"

	"student-notes-ai/internal/entity"
	"student-notes-ai/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type LiteratureEmbeddingMapper struct{}

func NewLiteratureEmbeddingMapper() *LiteratureEmbeddingMapper {
	return &LiteratureEmbeddingMapper{}
}

func (m *LiteratureEmbeddingMapper) ToEntity(e *model.LiteratureEmbedding) *entity.LiteratureEmbedding {
	if e == nil {
		return nil
	}

	var deletedAt *time.Time
	if e.DeletedAt.Valid {
		t := e.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		updatedAt = &t
	}

	return &entity.LiteratureEmbedding{
		Id:             e.Id,
		Document:       e.Document,
		EmbeddingValue: e.EmbeddingValue.Slice(),
		DocumentId:     e.DocumentId,
		ChunkIndex:     e.ChunkIndex,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
		IsDeleted:      e.DeletedAt.Valid,
	}
}

func (m *LiteratureEmbeddingMapper) ToModel(e *entity.LiteratureEmbedding) *model.LiteratureEmbedding {
	if e == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if e.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *e.DeletedAt, Valid: true}
	} else if e.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.LiteratureEmbedding{
		Id:             e.Id,
		Document:       e.Document,
		EmbeddingValue: pgvector.NewVector(e.EmbeddingValue),
		DocumentId:     e.DocumentId,
		ChunkIndex:     e.ChunkIndex,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
	}
}
