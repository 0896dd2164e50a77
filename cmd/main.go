package main

import (
	"fmt"
	"os"
	"time"

	"github.com/aulaflow/academy-backend/internal/clients/ollama"
	"github.com/aulaflow/academy-backend/internal/clients/qdrant"
	"github.com/aulaflow/academy-backend/internal/db"
	"github.com/aulaflow/academy-backend/internal/handlers"
	"github.com/aulaflow/academy-backend/internal/logger"
	"github.com/aulaflow/academy-backend/internal/repos"
	"github.com/aulaflow/academy-backend/internal/server"
	"github.com/aulaflow/academy-backend/internal/services"
	"github.com/aulaflow/academy-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Fatal("Postgres init failed", "error", err)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Fatal("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up repos...")
	levelRepo := repos.NewLevelRepo(thePG, log)
	classRepo := repos.NewClassRepo(thePG, log)
	exerciseRepo := repos.NewExerciseRepo(thePG, log)
	examRepo := repos.NewExamRepo(thePG, log)
	instanceRepo := repos.NewExamExerciseInstanceRepo(thePG, log)

	// Clients
	log.Info("Setting up clients...")
	ollamaClient, err := ollama.New(log, ollama.Config{
		BaseURL:         utils.GetEnv("OLLAMA_URL", "http://localhost:11434", log),
		Model:           utils.GetEnv("OLLAMA_MODEL", "", log),
		EmbedModel:      utils.GetEnv("OLLAMA_EMBED_MODEL", "", log),
		GenerateTimeout: time.Duration(utils.GetEnvAsInt("GENERATION_TIMEOUT_SECONDS", 300, log)) * time.Second,
	})
	if err != nil {
		log.Fatal("Ollama client init failed", "error", err)
	}
	qdrantClient, err := qdrant.New(log, qdrant.Config{
		URL:        utils.GetEnv("QDRANT_URL", "http://localhost:6333", log),
		Collection: utils.GetEnv("QDRANT_COLLECTION", "", log),
		Timeout:    time.Duration(utils.GetEnvAsInt("RETRIEVAL_TIMEOUT_SECONDS", 15, log)) * time.Second,
	})
	if err != nil {
		log.Fatal("Qdrant client init failed", "error", err)
	}

	// Services
	log.Info("Setting up services...")
	retrievalSvc := services.NewRetrievalService(log, ollamaClient, qdrantClient,
		utils.GetEnvAsInt("RETRIEVAL_LIMIT", 15, log))
	levelSvc := services.NewLevelService(log, levelRepo)
	classSvc := services.NewClassService(log, classRepo)
	exerciseSvc := services.NewExerciseService(log, exerciseRepo)
	examSvc := services.NewExamService(log, examRepo)
	genSvc := services.NewExamGenerationService(log, thePG, classRepo, exerciseRepo, examRepo, instanceRepo, retrievalSvc, ollamaClient)
	exportSvc := services.NewExamExportService(log, examRepo)

	// Handlers
	log.Info("Setting up handlers...")
	router := server.NewRouter(server.RouterConfig{
		Log:             log,
		LevelHandler:    handlers.NewLevelHandler(log, levelSvc),
		ClassHandler:    handlers.NewClassHandler(log, classSvc),
		ExerciseHandler: handlers.NewExerciseHandler(log, exerciseSvc),
		ExamHandler:     handlers.NewExamHandler(log, examSvc),
		GenHandler:      handlers.NewExamGenerationHandler(log, genSvc),
		ExportHandler:   handlers.NewExamExportHandler(log, exportSvc),
	})

	addr := ":" + utils.GetEnv("HTTP_PORT", "8080", log)
	log.Info("Starting HTTP server", "addr", addr)
	if err := router.Run(addr); err != nil {
		log.Fatal("HTTP server exited", "error", err)
	}
}
