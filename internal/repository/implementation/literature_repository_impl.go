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

type LiteratureRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LiteratureMapper
}

func NewLiteratureRepository(db *gorm.DB) contract.LiteratureRepository {
	return &LiteratureRepositoryImpl{
		db:     db,
		mapper: mapper.NewLiteratureMapper(),
	}
}

func (r *LiteratureRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *LiteratureRepositoryImpl) Create(ctx context.Context, doc *entity.LiteratureDocument) error {
	m := r.mapper.ToModel(doc)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*doc = *r.mapper.ToEntity(m)
	return nil
}

func (r *LiteratureRepositoryImpl) Update(ctx context.Context, doc *entity.LiteratureDocument) error {
	m := r.mapper.ToModel(doc)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*doc = *r.mapper.ToEntity(m)
	return nil
}

func (r *LiteratureRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.LiteratureDocument{}, id).Error
}

func (r *LiteratureRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LiteratureDocument, error) {
	var m model.LiteratureDocument
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *LiteratureRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LiteratureDocument, error) {
	var models []*model.LiteratureDocument
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *LiteratureRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.LiteratureDocument{}).Count(&count).Error
	return count, err
}
