package handler

import (
	"context"
	"net/http"
	"strconv"

	"railway-planner/internal/models"

	"github.com/gin-gonic/gin"
)

const maxHistoryLimit = 100

// HistoryHandler serves recently planned journeys
type HistoryHandler struct {
	repo HistoryLister
}

// HistoryLister interface for dependency injection
type HistoryLister interface {
	RecentSearches(ctx context.Context, limit int) ([]models.SearchRecord, error)
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(repo HistoryLister) *HistoryHandler {
	return &HistoryHandler{repo: repo}
}

// Recent handles GET /api/v1/history requests
//
//	@Summary	Recently planned journeys
//	@Tags		history
//	@Produce	json
//	@Param		limit	query	int	false	"Maximum number of records (1-100)"
//	@Success	200	{array}	models.SearchRecord
//	@Router		/history [get]
func (h *HistoryHandler) Recent(c *gin.Context) {
	limit := 20
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > maxHistoryLimit {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
			return
		}
		limit = n
	}

	records, err := h.repo.RecentSearches(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}
