package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aulaflow/academy-backend/internal/logger"
	"github.com/aulaflow/academy-backend/internal/services"
)

type ExamGenerationHandler struct {
	log    *logger.Logger
	genSvc services.ExamGenerationService
}

func NewExamGenerationHandler(log *logger.Logger, genSvc services.ExamGenerationService) *ExamGenerationHandler {
	return &ExamGenerationHandler{
		log:    log.With("handler", "ExamGenerationHandler"),
		genSvc: genSvc,
	}
}

type generateExamRequest struct {
	ClassID         *uint  `json:"class_id"`
	Context         string `json:"context"`
	ExerciseTypeIDs []uint `json:"exercise_type_ids"`
}

// POST /api/exams/generate
// Runs the full retrieve -> prompt -> generate -> parse -> persist pipeline
// synchronously; the request blocks until the model answers or fails.
func (h *ExamGenerationHandler) Generate(c *gin.Context) {
	var req generateExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON body"})
		return
	}
	if req.ClassID == nil || *req.ClassID == 0 || req.Context == "" || len(req.ExerciseTypeIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	examID, err := h.genSvc.Generate(c.Request.Context(), *req.ClassID, req.Context, req.ExerciseTypeIDs)
	if err != nil {
		h.log.Error("Generate failed", "class_id", *req.ClassID, "error", err)
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Exam generated successfully",
		"exam_id": examID,
	})
}

// GET /api/exams/:id/full
func (h *ExamGenerationHandler) GetFullExam(c *gin.Context) {
	examID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.genSvc.GetFullExam(c.Request.Context(), examID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, view)
}
