package main

import (
	"log"

	"github.com/uxrlab/uxr-backend/config"
	"github.com/uxrlab/uxr-backend/internal/bootstrap"
	"github.com/uxrlab/uxr-backend/internal/generation/llm"
	"github.com/uxrlab/uxr-backend/internal/uploads"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	db, err := bootstrap.OpenDB(cfg.Database.Path)
	if err != nil {
		log.Fatalf("db: %v", err)
	}

	uploadStore, err := uploads.NewStore(cfg.Storage.UploadDir, cfg.Storage.MaxFileSize)
	if err != nil {
		log.Fatalf("uploads: %v", err)
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "uxr-backend",
		Version:     cfg.App.Version,
		FrontendURL: cfg.Server.FrontendURL,
		DB:          db,
		Uploads:     uploadStore,
		LLM:         llm.NewClaude(cfg.Claude),
	})

	log.Printf("server listening on :%s", cfg.Server.Port)
	log.Printf("database: %s", cfg.Database.Path)
	log.Printf("upload directory: %s", cfg.Storage.UploadDir)
	log.Printf("frontend origin: %s", cfg.Server.FrontendURL)

	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
