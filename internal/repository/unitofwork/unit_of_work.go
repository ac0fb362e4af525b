package unitofwork

import (
	"context"

	"student-notes-ai/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	LiteratureRepository() contract.LiteratureRepository
	LiteratureEmbeddingRepository() contract.LiteratureEmbeddingRepository
	TextFileRepository() contract.TextFileRepository
}
