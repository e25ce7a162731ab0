package handler

import (
	"context"
	"net/http"

	"railway-planner/internal/models"

	"github.com/gin-gonic/gin"
)

// StationHandler handles station metadata requests
type StationHandler struct {
	service StationService
}

// StationService interface for dependency injection
type StationService interface {
	StationDetails(context.Context, string) ([]models.StationDetails, error)
}

// NewStationHandler creates a new station handler
func NewStationHandler(svc StationService) *StationHandler {
	return &StationHandler{service: svc}
}

// Details handles GET /api/v1/stations/details requests
//
//	@Summary	Knowledge-graph metadata for stations matching a name
//	@Tags		stations
//	@Produce	json
//	@Param		name	query	string	true	"Station name substring"
//	@Success	200	{array}	models.StationDetails
//	@Router		/stations/details [get]
func (h *StationHandler) Details(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'name'"})
		return
	}

	details, err := h.service.StationDetails(c.Request.Context(), name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}
