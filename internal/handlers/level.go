package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aulaflow/academy-backend/internal/logger"
	"github.com/aulaflow/academy-backend/internal/services"
	"github.com/aulaflow/academy-backend/internal/types"
)

type LevelHandler struct {
	log      *logger.Logger
	levelSvc services.LevelService
}

func NewLevelHandler(log *logger.Logger, levelSvc services.LevelService) *LevelHandler {
	return &LevelHandler{
		log:      log.With("handler", "LevelHandler"),
		levelSvc: levelSvc,
	}
}

type createLevelRequest struct {
	MinXP       int    `json:"min_xp"`
	Description string `json:"description"`
	Cosmetic    string `json:"cosmetic"`
}

// POST /api/levels
func (h *LevelHandler) Create(c *gin.Context) {
	var req createLevelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON body"})
		return
	}
	level, err := h.levelSvc.Create(c.Request.Context(), &types.Level{
		MinXP:       req.MinXP,
		Description: req.Description,
		Cosmetic:    req.Cosmetic,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Level created successfully", "id": level.ID})
}

// GET /api/levels
func (h *LevelHandler) List(c *gin.Context) {
	levels, err := h.levelSvc.List(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, levels)
}

// GET /api/levels/:id
func (h *LevelHandler) GetByID(c *gin.Context) {
	levelID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	level, err := h.levelSvc.GetByID(c.Request.Context(), levelID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, level)
}

// PUT /api/levels/:id
func (h *LevelHandler) Update(c *gin.Context) {
	levelID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	var update types.LevelUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON body"})
		return
	}
	if err := h.levelSvc.Update(c.Request.Context(), levelID, update); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "Level updated successfully"})
}

// DELETE /api/levels/:id
func (h *LevelHandler) Delete(c *gin.Context) {
	levelID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.levelSvc.Delete(c.Request.Context(), levelID); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "Level deleted successfully"})
}
