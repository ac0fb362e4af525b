package contract

import (
	"context"

	"student-notes-ai/internal/entity"
	"student-notes-ai/internal/repository/specification"

	"github.com/google/uuid"
)

type LiteratureRepository interface {
	Create(ctx context.Context, doc *entity.LiteratureDocument) error
	Update(ctx context.Context, doc *entity.LiteratureDocument) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LiteratureDocument, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LiteratureDocument, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
