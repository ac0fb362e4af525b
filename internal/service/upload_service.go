package service

import (
	"context"
	"fmt"
	"time"

	"student-notes-ai/internal/dto"
	"student-notes-ai/internal/entity"
	"student-notes-ai/internal/pkg/logger"
	"student-notes-ai/internal/repository/unitofwork"
	"student-notes-ai/pkg/storage"

	"github.com/google/uuid"
)

type IUploadService interface {
	UploadText(ctx context.Context, req *dto.TextUploadRequest) (*dto.TextUploadResponse, error)
}

type uploadService struct {
	uowFactory unitofwork.RepositoryFactory
	store      *storage.TextFileStore
	baseURL    string
	logger     logger.ILogger
}

func NewUploadService(
	uowFactory unitofwork.RepositoryFactory,
	store *storage.TextFileStore,
	baseURL string,
	log logger.ILogger,
) IUploadService {
	return &uploadService{
		uowFactory: uowFactory,
		store:      store,
		baseURL:    baseURL,
		logger:     log,
	}
}

func (s *uploadService) UploadText(ctx context.Context, req *dto.TextUploadRequest) (*dto.TextUploadResponse, error) {
	fileName := req.FileName
	if fileName == "" {
		fileName = storage.FileName(time.Now())
	}

	timestamp := req.Timestamp
	if timestamp == "" {
		timestamp = time.Now().Format(time.RFC3339)
	}

	path, err := s.store.Save(fileName, req.Text, timestamp)
	if err != nil {
		return nil, err
	}

	file := entity.TextFile{
		Id:        uuid.New(),
		FileName:  fileName,
		Path:      path,
		SizeBytes: int64(len(storage.Format(req.Text, timestamp))),
		CreatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.TextFileRepository().Create(ctx, &file); err != nil {
		return nil, err
	}

	s.logger.Info("upload", "text file stored", map[string]interface{}{
		"file_name": fileName,
		"path":      path,
	})

	return &dto.TextUploadResponse{
		Success: true,
		FileId:  fileName,
		Message: "Text uploaded successfully",
		Url:     fmt.Sprintf("%s/uploads/%s", s.baseURL, fileName),
	}, nil
}
