package main

import (
	"log"
	"os"

	"student-notes-ai/internal/model"
	"student-notes-ai/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	// Extensions GORM AutoMigrate cannot create itself.
	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
		`CREATE EXTENSION IF NOT EXISTS vector;`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	models := []interface{}{
		&model.LiteratureDocument{},
		&model.LiteratureEmbedding{},
		&model.TextFile{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// ivfflat speeds up the cosine search once the collection grows; harmless
	// on an empty table.
	indexSQL := `CREATE INDEX IF NOT EXISTS idx_literature_embeddings_cosine
		ON literature_embeddings USING ivfflat (embedding_value vector_cosine_ops) WITH (lists = 100);`
	if err := db.Exec(indexSQL).Error; err != nil {
		log.Printf("Warn: Failed to create vector index: %v", err)
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}
