package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"habits-be/internal/middleware"
	"habits-be/internal/models"
	"habits-be/internal/service"
)

type HabitController struct {
	habitService service.HabitService
}

func NewHabitController(habitService service.HabitService) *HabitController {
	return &HabitController{
		habitService: habitService,
	}
}

// currentUserID returns the authenticated user's id placed on the context by
// the auth middleware. It aborts with 401 when missing, which only happens if
// a route was wired without the middleware.
func currentUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "could not validate credentials",
		})
		return "", false
	}
	return userID.(string), true
}

// CreateHabit handles POST /api/v1/habitos
func (hc *HabitController) CreateHabit(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	habit, err := hc.habitService.CreateHabit(userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, habit)
}

// ListHabits handles GET /api/v1/habitos
func (hc *HabitController) ListHabits(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	habits, err := hc.habitService.ListHabits(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, habits)
}

// DeleteHabit handles DELETE /api/v1/habitos/:id
func (hc *HabitController) DeleteHabit(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := hc.habitService.DeleteHabit(c.Param("id"), userID); err != nil {
		hc.renderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateLog handles POST /api/v1/habitos/:id/logs
func (hc *HabitController) CreateLog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateHabitLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	logEntry, err := hc.habitService.CreateLog(c.Param("id"), userID, &req)
	if err != nil {
		hc.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, logEntry)
}

// ListLogs handles GET /api/v1/habitos/:id/logs
func (hc *HabitController) ListLogs(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	logs, err := hc.habitService.ListLogs(c.Param("id"), userID)
	if err != nil {
		hc.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, logs)
}

// GetStats handles GET /api/v1/habitos/:id/stats
func (hc *HabitController) GetStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	stats, err := hc.habitService.GetStats(c.Param("id"), userID)
	if err != nil {
		hc.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// renderError maps service errors to HTTP statuses. Internal causes are never
// exposed beyond the sentinel messages.
func (hc *HabitController) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidDate), errors.Is(err, service.ErrFutureDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrDuplicateLog):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
