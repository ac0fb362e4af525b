package implementation

import (
	"context"
	"errors"

	"student-notes-ai/internal/entity"
	"student-notes-ai/internal/mapper"
	"student-notes-ai/internal/model"
	"student-notes-ai/internal/repository/contract"
	"student-notes-ai/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TextFileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TextFileMapper
}

func NewTextFileRepository(db *gorm.DB) contract.TextFileRepository {
	return &TextFileRepositoryImpl{
		db:     db,
		mapper: mapper.NewTextFileMapper(),
	}
}

func (r *TextFileRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TextFileRepositoryImpl) Create(ctx context.Context, file *entity.TextFile) error {
	m := r.mapper.ToModel(file)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*file = *r.mapper.ToEntity(m)
	return nil
}

func (r *TextFileRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.TextFile{}, id).Error
}

func (r *TextFileRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TextFile, error) {
	var m model.TextFile
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TextFileRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TextFile, error) {
	var models []*model.TextFile
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.TextFile, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *TextFileRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.TextFile{}).Count(&count).Error
	return count, err
}
