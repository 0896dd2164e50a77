package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aulaflow/academy-backend/internal/apierr"
)

// RespondError maps a service error onto the JSON envelope every failure
// shares: {"message": ...}. Unknown errors become a generic 500 so internals
// (raw model output included) never leak into client-facing bodies.
func RespondError(c *gin.Context, err error) {
	var apiErr *apierr.Error
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, gin.H{"message": apiErr.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong"})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// ParseIDParam reads a positive integer path parameter.
func ParseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id parameter"})
		return 0, false
	}
	return uint(id), true
}
