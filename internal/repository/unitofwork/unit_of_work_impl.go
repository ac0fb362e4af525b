package unitofwork

import (
	"context"
	"fmt"

	"student-notes-ai/internal/repository/contract"
	"student-notes-ai/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction, nil when operating outside one
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) LiteratureRepository() contract.LiteratureRepository {
	return implementation.NewLiteratureRepository(u.getDB())
}

func (u *UnitOfWorkImpl) LiteratureEmbeddingRepository() contract.LiteratureEmbeddingRepository {
	return implementation.NewLiteratureEmbeddingRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TextFileRepository() contract.TextFileRepository {
	return implementation.NewTextFileRepository(u.getDB())
}
