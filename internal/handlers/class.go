package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aulaflow/academy-backend/internal/logger"
	"github.com/aulaflow/academy-backend/internal/services"
	"github.com/aulaflow/academy-backend/internal/types"
)

type ClassHandler struct {
	log      *logger.Logger
	classSvc services.ClassService
}

func NewClassHandler(log *logger.Logger, classSvc services.ClassService) *ClassHandler {
	return &ClassHandler{
		log:      log.With("handler", "ClassHandler"),
		classSvc: classSvc,
	}
}

type createClassRequest struct {
	ClassCode      string `json:"class_code"`
	Description    string `json:"description"`
	SuggestedLevel string `json:"suggested_level"`
	MaxCapacity    int    `json:"max_capacity"`
}

// POST /api/classes
func (h *ClassHandler) Create(c *gin.Context) {
	var req createClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON body"})
		return
	}
	class, err := h.classSvc.Create(c.Request.Context(), &types.Class{
		ClassCode:      req.ClassCode,
		Description:    req.Description,
		SuggestedLevel: req.SuggestedLevel,
		MaxCapacity:    req.MaxCapacity,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Class created successfully", "id": class.ID})
}

// GET /api/classes
func (h *ClassHandler) List(c *gin.Context) {
	classes, err := h.classSvc.List(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, classes)
}

// GET /api/classes/:id
func (h *ClassHandler) GetByID(c *gin.Context) {
	classID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	class, err := h.classSvc.GetByID(c.Request.Context(), classID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, class)
}

// GET /api/classes/code/:class_code
func (h *ClassHandler) GetByCode(c *gin.Context) {
	class, err := h.classSvc.GetByCode(c.Request.Context(), c.Param("class_code"))
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, class)
}

// PUT /api/classes/:id
func (h *ClassHandler) Update(c *gin.Context) {
	classID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	var update types.ClassUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON body"})
		return
	}
	if err := h.classSvc.Update(c.Request.Context(), classID, update); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "Class updated successfully"})
}

// DELETE /api/classes/:id
func (h *ClassHandler) Delete(c *gin.Context) {
	classID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.classSvc.Delete(c.Request.Context(), classID); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "Class deleted successfully"})
}
