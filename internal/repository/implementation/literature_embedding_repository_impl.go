package implementation

import (
	"context"

	"student-notes-ai/internal/entity"
	"student-notes-ai/internal/mapper"
	"student-notes-ai/internal/model"
	"student-notes-ai/internal/repository/contract"
	"student-notes-ai/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type LiteratureEmbeddingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LiteratureEmbeddingMapper
}

func NewLiteratureEmbeddingRepository(db *gorm.DB) contract.LiteratureEmbeddingRepository {
	return &LiteratureEmbeddingRepositoryImpl{
		db:     db,
		mapper: mapper.NewLiteratureEmbeddingMapper(),
	}
}

func (r *LiteratureEmbeddingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *LiteratureEmbeddingRepositoryImpl) Create(ctx context.Context, embedding *entity.LiteratureEmbedding) error {
	m := r.mapper.ToModel(embedding)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*embedding = *r.mapper.ToEntity(m)
	return nil
}

func (r *LiteratureEmbeddingRepositoryImpl) CreateBulk(ctx context.Context, embeddings []*entity.LiteratureEmbedding) error {
	if len(embeddings) == 0 {
		return nil
	}
	models := make([]*model.LiteratureEmbedding, len(embeddings))
	for i, e := range embeddings {
		models[i] = r.mapper.ToModel(e)
	}

	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}

	for i, m := range models {
		*embeddings[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *LiteratureEmbeddingRepositoryImpl) DeleteByDocumentId(ctx context.Context, documentId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("document_id = ?", documentId).Delete(&model.LiteratureEmbedding{}).Error
}

func (r *LiteratureEmbeddingRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LiteratureEmbedding, error) {
	var models []*model.LiteratureEmbedding
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.LiteratureEmbedding, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *LiteratureEmbeddingRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.LiteratureEmbedding{}).Count(&count).Error
	return count, err
}

// SearchSimilarWithScore ranks chunks by cosine similarity to the query
// vector and drops everything below the threshold. Cosine distance in
// pgvector is 1 - cosine_similarity, so similarity is computed as
// 1 - (embedding_value <=> query_vector).
func (r *LiteratureEmbeddingRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*contract.ScoredLiteratureEmbedding, error) {
	if limit <= 0 {
		limit = 5
	}

	type result struct {
		model.LiteratureEmbedding
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("literature_embeddings").
		Select("literature_embeddings.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Where("literature_embeddings.deleted_at IS NULL").
		Where("1 - (embedding_value <=> ?) >= ?", queryVector, threshold).
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredLiteratureEmbedding, len(results))
	for i, res := range results {
		scored[i] = &contract.ScoredLiteratureEmbedding{
			Embedding:  r.mapper.ToEntity(&res.LiteratureEmbedding),
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}
