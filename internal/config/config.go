package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Storage  StorageConfig
	Keys     APIKeys
	Ai       AIConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

type StorageConfig struct {
	// UploadDir is where extracted note texts are persisted as plain files.
	UploadDir string
}

type APIKeys struct {
	GoogleGemini string
	// EmbedTopic is the pub/sub topic for the literature embedding pipeline.
	EmbedTopic string
}

type AIConfig struct {
	EmbeddingProvider string // "gemini" or "ollama"
	OllamaBaseURL     string
	OllamaModel       string
	LLMProvider       string // "gemini", "ollama" or "simulated"
	LLMModel          string
	SearchResults     int // default result count for literature search
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8080"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:8080"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Storage: StorageConfig{
			UploadDir: getEnv("UPLOAD_DIR", "uploads/extracted_texts"),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
			EmbedTopic:   getEnv("EMBED_LITERATURE_TOPIC_NAME", "EMBED_LITERATURE"),
		},
		Ai: AIConfig{
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "gemini"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:       getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			LLMProvider:       getEnv("LLM_PROVIDER", "gemini"),
			LLMModel:          getEnv("LLM_MODEL", "gemini-1.5-flash"),
			SearchResults:     getEnvAsInt("SEARCH_DEFAULT_RESULTS", 5),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
