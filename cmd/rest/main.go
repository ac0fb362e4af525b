package main

import (
	"context"
	"log"

	"student-notes-ai/internal/bootstrap"
	"student-notes-ai/internal/config"
	"student-notes-ai/internal/server"
	"student-notes-ai/internal/tracer"
	"student-notes-ai/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	// The consumer drains the literature embedding topic for as long as the
	// process lives.
	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	srv := server.New(cfg, container)

	log.Fatal(srv.Run())
}
