package service

import (
	"context"
	"encoding/json"
	"time"

	"student-notes-ai/internal/dto"
	"student-notes-ai/internal/entity"
	"student-notes-ai/internal/pkg/logger"
	"student-notes-ai/internal/repository/contract"
	"student-notes-ai/internal/repository/specification"
	"student-notes-ai/internal/repository/unitofwork"
	"student-notes-ai/pkg/embedding"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// similarityThreshold discards chunks whose cosine similarity to the query
// falls below this value. Keeps noise out of small literature collections.
const similarityThreshold = 0.3

type ILiteratureService interface {
	Add(ctx context.Context, req *dto.AddLiteratureRequest) (*dto.AddLiteratureResponse, error)
	Search(ctx context.Context, req *dto.SearchLiteratureRequest) (*dto.SearchLiteratureResponse, error)
	QueryRelevant(ctx context.Context, text string, nResults int) ([]string, error)
}

type literatureService struct {
	uowFactory        unitofwork.RepositoryFactory
	publisherService  IPublisherService
	embeddingProvider embedding.EmbeddingProvider
	queryCache        *cache.Cache
	defaultResults    int
	logger            logger.ILogger
}

func NewLiteratureService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	embeddingProvider embedding.EmbeddingProvider,
	defaultResults int,
	log logger.ILogger,
) ILiteratureService {
	if defaultResults <= 0 {
		defaultResults = 5
	}
	// Query embeddings are tiny and deterministic per provider; cache them so
	// repeated searches for the same phrase skip the embedding round-trip.
	c := cache.New(15*time.Minute, 5*time.Minute)
	return &literatureService{
		uowFactory:        uowFactory,
		publisherService:  publisherService,
		embeddingProvider: embeddingProvider,
		queryCache:        c,
		defaultResults:    defaultResults,
		logger:            log,
	}
}

func (s *literatureService) Add(ctx context.Context, req *dto.AddLiteratureRequest) (*dto.AddLiteratureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc := entity.LiteratureDocument{
		Id:         uuid.New(),
		Text:       req.Text,
		Title:      defaultString(req.Title, "Untitled Document"),
		Author:     defaultString(req.Author, "Unknown"),
		Subject:    defaultString(req.Subject, "General"),
		UploadedAt: time.Now(),
		CreatedAt:  time.Now(),
	}

	if err := uow.LiteratureRepository().Create(ctx, &doc); err != nil {
		return nil, err
	}

	msgPayload := dto.PublishEmbedLiteratureMessage{
		DocumentId: doc.Id,
	}
	msgJson, err := json.Marshal(msgPayload)
	if err != nil {
		return nil, err
	}

	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		return nil, err
	}

	s.logger.Info("literature", "document queued for embedding", map[string]interface{}{
		"document_id": doc.Id.String(),
		"title":       doc.Title,
	})

	return &dto.AddLiteratureResponse{
		Success:    true,
		DocumentId: doc.Id.String(),
		Message:    "Literature added to database successfully",
	}, nil
}

func (s *literatureService) Search(ctx context.Context, req *dto.SearchLiteratureRequest) (*dto.SearchLiteratureResponse, error) {
	nResults := req.NResults
	if nResults <= 0 {
		nResults = s.defaultResults
	}

	scored, err := s.searchScored(ctx, req.Query, nResults)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	docsById, err := s.fetchDocuments(ctx, uow, scored)
	if err != nil {
		return nil, err
	}

	results := make([]dto.LiteratureResult, 0, len(scored))
	for _, sr := range scored {
		doc, ok := docsById[sr.Embedding.DocumentId]
		if !ok {
			continue
		}
		results = append(results, dto.LiteratureResult{
			Text: sr.Embedding.Document,
			Metadata: map[string]interface{}{
				"title":       doc.Title,
				"author":      doc.Author,
				"subject":     doc.Subject,
				"uploaded_at": doc.UploadedAt.Format(time.RFC3339),
			},
		})
	}

	return &dto.SearchLiteratureResponse{
		Success: true,
		Results: results,
		Count:   len(results),
	}, nil
}

// QueryRelevant returns the best-matching chunk texts for a block of note
// text. Used to build the completion prompt context.
func (s *literatureService) QueryRelevant(ctx context.Context, text string, nResults int) ([]string, error) {
	if nResults <= 0 {
		nResults = s.defaultResults
	}

	scored, err := s.searchScored(ctx, text, nResults)
	if err != nil {
		return nil, err
	}

	docs := make([]string, len(scored))
	for i, sr := range scored {
		docs[i] = sr.Embedding.Document
	}
	return docs, nil
}

func (s *literatureService) searchScored(ctx context.Context, query string, limit int) ([]*contract.ScoredLiteratureEmbedding, error) {
	values, err := s.queryEmbedding(query)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.LiteratureEmbeddingRepository().SearchSimilarWithScore(ctx, values, limit, similarityThreshold)
}

func (s *literatureService) queryEmbedding(query string) ([]float32, error) {
	if cached, found := s.queryCache.Get(query); found {
		return cached.([]float32), nil
	}

	res, err := s.embeddingProvider.Generate(query, "RETRIEVAL_QUERY")
	if err != nil {
		return nil, err
	}

	s.queryCache.Set(query, res.Embedding.Values, cache.DefaultExpiration)
	return res.Embedding.Values, nil
}

func (s *literatureService) fetchDocuments(ctx context.Context, uow unitofwork.UnitOfWork, scored []*contract.ScoredLiteratureEmbedding) (map[uuid.UUID]*entity.LiteratureDocument, error) {
	byId := make(map[uuid.UUID]*entity.LiteratureDocument)
	if len(scored) == 0 {
		return byId, nil
	}

	ids := make([]uuid.UUID, 0, len(scored))
	seen := make(map[uuid.UUID]bool)
	for _, sr := range scored {
		if !seen[sr.Embedding.DocumentId] {
			ids = append(ids, sr.Embedding.DocumentId)
			seen[sr.Embedding.DocumentId] = true
		}
	}

	docs, err := uow.LiteratureRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		return nil, err
	}
	for _, doc := range docs {
		byId[doc.Id] = doc
	}
	return byId, nil
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
