package bootstrap

import (
	"log"

	"student-notes-ai/internal/config"
	"student-notes-ai/internal/controller"
	"student-notes-ai/internal/pkg/logger"
	"student-notes-ai/internal/repository/unitofwork"
	"student-notes-ai/internal/service"
	"student-notes-ai/pkg/embedding"
	"student-notes-ai/pkg/llm/factory"
	"student-notes-ai/pkg/storage"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	NotesController      controller.INotesController
	LiteratureController controller.ILiteratureController
	HealthController     controller.IHealthController

	// Background services, exposed for main.go to run
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Services
	publisherService := service.NewPublisherService(pubSub, cfg.Keys.EmbedTopic)
	literatureService := service.NewLiteratureService(
		uowFactory,
		publisherService,
		embeddingProvider,
		cfg.Ai.SearchResults,
		sysLogger,
	)
	completionService := service.NewCompletionService(literatureService, llmProvider, sysLogger)

	textFileStore := storage.NewTextFileStore(cfg.Storage.UploadDir)
	uploadService := service.NewUploadService(uowFactory, textFileStore, cfg.App.BaseURL, sysLogger)

	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.EmbedTopic,
		uowFactory,
		embeddingProvider,
		sysLogger,
	)

	// 5. Controllers
	notesController := controller.NewNotesController(completionService, uploadService, sysLogger)
	literatureController := controller.NewLiteratureController(literatureService, sysLogger)
	healthController := controller.NewHealthController()

	return &Container{
		NotesController:      notesController,
		LiteratureController: literatureController,
		HealthController:     healthController,
		ConsumerService:      consumerService,
		Logger:               sysLogger,
	}
}
