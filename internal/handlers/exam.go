package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aulaflow/academy-backend/internal/logger"
	"github.com/aulaflow/academy-backend/internal/services"
	"github.com/aulaflow/academy-backend/internal/types"
)

type ExamHandler struct {
	log     *logger.Logger
	examSvc services.ExamService
}

func NewExamHandler(log *logger.Logger, examSvc services.ExamService) *ExamHandler {
	return &ExamHandler{
		log:     log.With("handler", "ExamHandler"),
		examSvc: examSvc,
	}
}

// GET /api/exams
func (h *ExamHandler) List(c *gin.Context) {
	exams, err := h.examSvc.List(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, exams)
}

// GET /api/exams/:id
func (h *ExamHandler) GetByID(c *gin.Context) {
	examID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	exam, err := h.examSvc.GetByID(c.Request.Context(), examID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, exam)
}

// PUT /api/exams/:id
// The review endpoint: flipping status to GENERATED here is what unlocks the
// export routes.
func (h *ExamHandler) Update(c *gin.Context) {
	examID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	var update types.ExamUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON body"})
		return
	}
	if err := h.examSvc.Update(c.Request.Context(), examID, update); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "Exam updated successfully"})
}

// DELETE /api/exams/:id
func (h *ExamHandler) Delete(c *gin.Context) {
	examID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.examSvc.Delete(c.Request.Context(), examID); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "Exam deleted successfully"})
}
