package contract

import (
	"context"

	"student-notes-ai/internal/entity"
	"student-notes-ai/internal/repository/specification"

	"github.com/google/uuid"
)

// ScoredLiteratureEmbedding pairs an embedding chunk with its cosine
// similarity to a query vector.
type ScoredLiteratureEmbedding struct {
	Embedding  *entity.LiteratureEmbedding
	Similarity float64
}

type LiteratureEmbeddingRepository interface {
	Create(ctx context.Context, embedding *entity.LiteratureEmbedding) error
	CreateBulk(ctx context.Context, embeddings []*entity.LiteratureEmbedding) error
	DeleteByDocumentId(ctx context.Context, documentId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LiteratureEmbedding, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*ScoredLiteratureEmbedding, error)
}
