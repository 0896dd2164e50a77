package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aulaflow/academy-backend/internal/logger"
	"github.com/aulaflow/academy-backend/internal/services"
	"github.com/aulaflow/academy-backend/internal/types"
)

type ExerciseHandler struct {
	log         *logger.Logger
	exerciseSvc services.ExerciseService
}

func NewExerciseHandler(log *logger.Logger, exerciseSvc services.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{
		log:         log.With("handler", "ExerciseHandler"),
		exerciseSvc: exerciseSvc,
	}
}

type createExerciseRequest struct {
	Name               string `json:"name"`
	ContentDescription string `json:"content_description"`
}

// POST /api/exercises
func (h *ExerciseHandler) Create(c *gin.Context) {
	var req createExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON body"})
		return
	}
	exercise, err := h.exerciseSvc.Create(c.Request.Context(), &types.Exercise{
		Name:               req.Name,
		ContentDescription: req.ContentDescription,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Exercise created successfully", "id": exercise.ID})
}

// GET /api/exercises
func (h *ExerciseHandler) List(c *gin.Context) {
	exercises, err := h.exerciseSvc.List(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, exercises)
}

// GET /api/exercises/:id
func (h *ExerciseHandler) GetByID(c *gin.Context) {
	exerciseID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	exercise, err := h.exerciseSvc.GetByID(c.Request.Context(), exerciseID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, exercise)
}

// PUT /api/exercises/:id
func (h *ExerciseHandler) Update(c *gin.Context) {
	exerciseID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	var update types.ExerciseUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON body"})
		return
	}
	if err := h.exerciseSvc.Update(c.Request.Context(), exerciseID, update); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "Exercise updated successfully"})
}

// DELETE /api/exercises/:id
func (h *ExerciseHandler) Delete(c *gin.Context) {
	exerciseID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.exerciseSvc.Delete(c.Request.Context(), exerciseID); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "Exercise deleted successfully"})
}
