package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"student-notes-ai/internal/entity"
	"student-notes-ai/internal/repository/specification"
	"student-notes-ai/internal/repository/unitofwork"
	"student-notes-ai/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.LiteratureRepository())
	assert.NotNil(t, uow.LiteratureEmbeddingRepository())
	assert.NotNil(t, uow.TextFileRepository())

	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)

	t.Run("Check Literature Repository", func(t *testing.T) {
		count, err := uow.LiteratureRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Literature document count: %d", count)
	})

	t.Run("Check Literature Embedding Repository", func(t *testing.T) {
		count, err := uow.LiteratureEmbeddingRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Literature embedding count: %d", count)
	})

	t.Run("Check Text File Repository", func(t *testing.T) {
		count, err := uow.TextFileRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Text file count: %d", count)
	})
}

func TestLiteratureEmbeddingRoundTrip(t *testing.T) {
	_ = godotenv.Load("../../.env")

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err)

	ctx := context.Background()
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(ctx)

	doc := entity.LiteratureDocument{
		Id:         uuid.New(),
		Text:       "integration test document",
		Title:      "Integration Test",
		Author:     "Unknown",
		Subject:    "General",
		UploadedAt: time.Now(),
		CreatedAt:  time.Now(),
	}
	require.NoError(t, uow.LiteratureRepository().Create(ctx, &doc))
	defer uow.LiteratureRepository().Delete(ctx, doc.Id)

	vec := make([]float32, 768)
	vec[0] = 1

	chunk := entity.LiteratureEmbedding{
		Id:             uuid.New(),
		Document:       "integration test document",
		EmbeddingValue: vec,
		DocumentId:     doc.Id,
		ChunkIndex:     0,
		CreatedAt:      time.Now(),
	}
	require.NoError(t, uow.LiteratureEmbeddingRepository().CreateBulk(ctx, []*entity.LiteratureEmbedding{&chunk}))
	defer uow.LiteratureEmbeddingRepository().DeleteByDocumentId(ctx, doc.Id)

	found, err := uow.LiteratureEmbeddingRepository().FindAll(ctx, specification.ByDocumentID{DocumentID: doc.Id})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, doc.Id, found[0].DocumentId)

	// Identical query vector must rank the chunk first with similarity ~1.
	scored, err := uow.LiteratureEmbeddingRepository().SearchSimilarWithScore(ctx, vec, 5, 0.3)
	require.NoError(t, err)
	require.NotEmpty(t, scored)
	assert.Equal(t, chunk.Id, scored[0].Embedding.Id)
	assert.InDelta(t, 1.0, scored[0].Similarity, 0.01)
}
