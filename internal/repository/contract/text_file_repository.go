package contract

import (
	"context"

	"student-notes-ai/internal/entity"
	"student-notes-ai/internal/repository/specification"

	"github.com/google/uuid"
)

type TextFileRepository interface {
	Create(ctx context.Context, file *entity.TextFile) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TextFile, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TextFile, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
