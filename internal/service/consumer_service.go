package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"student-notes-ai/internal/dto"
	"student-notes-ai/internal/entity"
	"student-notes-ai/internal/pkg/logger"
	"student-notes-ai/internal/repository/specification"
	"student-notes-ai/internal/repository/unitofwork"
	"student-notes-ai/pkg/embedding"
	"student-notes-ai/pkg/utils"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	logger            logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		logger:            log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedLiteratureMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("consumer", "failed to unmarshal message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // invalid payload, retrying will not help
		return
	}

	cs.logger.Info("consumer", "processing literature embedding", map[string]interface{}{
		"document_id": payload.DocumentId.String(),
	})

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.LiteratureRepository().FindOne(ctx, specification.ByID{ID: payload.DocumentId})
	if err != nil {
		cs.logger.Error("consumer", "failed to load document", map[string]interface{}{
			"document_id": payload.DocumentId.String(),
			"error":       err.Error(),
		})
		msg.Nack()
		return
	}
	if doc == nil {
		cs.logger.Warn("consumer", "document not found, skipping", map[string]interface{}{
			"document_id": payload.DocumentId.String(),
		})
		msg.Ack() // deleted before we got to it
		return
	}

	content := fmt.Sprintf(`Title: %s
Author: %s
Subject: %s

%s

Uploaded At: %s`,
		doc.Title,
		doc.Author,
		doc.Subject,
		doc.Text,
		doc.UploadedAt.Format(time.RFC3339),
	)

	// ChunkSize 1500 chars with 200 char overlap keeps each chunk well inside
	// the embedding model's context window.
	chunks := utils.SplitText(content, 1500, 200)

	var newEmbeddings []*entity.LiteratureEmbedding
	for i, chunk := range chunks {
		res, err := cs.embeddingProvider.Generate(chunk, "RETRIEVAL_DOCUMENT")
		if err != nil {
			cs.logger.Error("consumer", "failed to generate embedding", map[string]interface{}{
				"document_id": payload.DocumentId.String(),
				"chunk":       i,
				"error":       err.Error(),
			})
			msg.Nack()
			return
		}

		newEmbeddings = append(newEmbeddings, &entity.LiteratureEmbedding{
			Id:             uuid.New(),
			Document:       chunk,
			EmbeddingValue: res.Embedding.Values,
			DocumentId:     doc.Id,
			ChunkIndex:     i,
			CreatedAt:      time.Now(),
		})
	}

	if err := uow.Begin(ctx); err != nil {
		cs.logger.Error("consumer", "failed to begin transaction", map[string]interface{}{"error": err.Error()})
		msg.Nack()
		return
	}
	defer uow.Rollback()

	if err := uow.LiteratureEmbeddingRepository().DeleteByDocumentId(ctx, doc.Id); err != nil {
		cs.logger.Error("consumer", "failed to delete old embeddings", map[string]interface{}{"error": err.Error()})
		msg.Nack()
		return
	}

	if len(newEmbeddings) > 0 {
		if err := uow.LiteratureEmbeddingRepository().CreateBulk(ctx, newEmbeddings); err != nil {
			cs.logger.Error("consumer", "failed to create embeddings", map[string]interface{}{"error": err.Error()})
			msg.Nack()
			return
		}
	}

	if err := uow.Commit(); err != nil {
		cs.logger.Error("consumer", "failed to commit transaction", map[string]interface{}{"error": err.Error()})
		msg.Nack()
		return
	}

	cs.logger.Info("consumer", "literature embedded", map[string]interface{}{
		"document_id": payload.DocumentId.String(),
		"chunks":      len(newEmbeddings),
	})
	msg.Ack()
}
