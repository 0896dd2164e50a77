package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/aulaflow/academy-backend/internal/handlers"
	"github.com/aulaflow/academy-backend/internal/logger"
	"github.com/aulaflow/academy-backend/internal/middleware"
)

type RouterConfig struct {
	Log             *logger.Logger
	LevelHandler    *handlers.LevelHandler
	ClassHandler    *handlers.ClassHandler
	ExerciseHandler *handlers.ExerciseHandler
	ExamHandler     *handlers.ExamHandler
	GenHandler      *handlers.ExamGenerationHandler
	ExportHandler   *handlers.ExamExportHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID(cfg.Log))

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		// Levels
		api.POST("/levels", cfg.LevelHandler.Create)
		api.GET("/levels", cfg.LevelHandler.List)
		api.GET("/levels/:id", cfg.LevelHandler.GetByID)
		api.PUT("/levels/:id", cfg.LevelHandler.Update)
		api.DELETE("/levels/:id", cfg.LevelHandler.Delete)

		// Classes
		api.POST("/classes", cfg.ClassHandler.Create)
		api.GET("/classes", cfg.ClassHandler.List)
		api.GET("/classes/:id", cfg.ClassHandler.GetByID)
		api.GET("/classes/code/:class_code", cfg.ClassHandler.GetByCode)
		api.PUT("/classes/:id", cfg.ClassHandler.Update)
		api.DELETE("/classes/:id", cfg.ClassHandler.Delete)

		// Exercise catalog
		api.POST("/exercises", cfg.ExerciseHandler.Create)
		api.GET("/exercises", cfg.ExerciseHandler.List)
		api.GET("/exercises/:id", cfg.ExerciseHandler.GetByID)
		api.PUT("/exercises/:id", cfg.ExerciseHandler.Update)
		api.DELETE("/exercises/:id", cfg.ExerciseHandler.Delete)

		// Exams
		api.GET("/exams", cfg.ExamHandler.List)
		api.GET("/exams/:id", cfg.ExamHandler.GetByID)
		api.PUT("/exams/:id", cfg.ExamHandler.Update)
		api.DELETE("/exams/:id", cfg.ExamHandler.Delete)

		// Generation pipeline
		api.POST("/exams/generate", cfg.GenHandler.Generate)
		api.GET("/exams/:id/full", cfg.GenHandler.GetFullExam)
		api.GET("/exams/:id/export/pdf", cfg.ExportHandler.ExportPDF)
		api.GET("/exams/:id/export/docx", cfg.ExportHandler.ExportDOCX)
	}

	return router
}
