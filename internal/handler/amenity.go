package handler

import (
	"context"

	"railway-planner/internal/models"
	"railway-planner/internal/presenter"

	"github.com/gin-gonic/gin"
)

// AmenityHandler handles amenity lookups
type AmenityHandler struct {
	service AmenityService
}

// AmenityService interface for dependency injection
type AmenityService interface {
	Amenities(ctx context.Context, p models.Point, kinds []string, radiusKm float64) ([]models.Amenity, error)
}

// NewAmenityHandler creates a new amenity handler
func NewAmenityHandler(svc AmenityService) *AmenityHandler {
	return &AmenityHandler{service: svc}
}

// Nearby handles GET /api/v1/amenities requests
//
//	@Summary	Amenities around a point
//	@Tags		amenities
//	@Produce	json
//	@Param		lat		query	number	true	"Latitude"
//	@Param		lon		query	number	true	"Longitude"
//	@Param		kinds	query	string	false	"Comma-separated amenity kinds"
//	@Param		radius	query	number	false	"Radius in km"
//	@Param		format	query	string	false	"json, geojson, csv or yaml"
//	@Success	200	{array}	models.Amenity
//	@Router		/amenities [get]
func (h *AmenityHandler) Nearby(c *gin.Context) {
	p, err := parsePoint(c, "lat", "lon")
	if err != nil {
		badRequest(c, err)
		return
	}
	radius, err := parseRadius(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	kinds := models.DefaultAmenityKinds
	if raw, ok := c.GetQuery("kinds"); ok {
		kinds = parseList(raw)
	}

	amenities, err := h.service.Amenities(c.Request.Context(), p, kinds, radius)
	if err != nil {
		respondError(c, err)
		return
	}

	render(c, view{
		filename: "amenities",
		payload:  amenities,
		table:    presenter.AmenityTable(amenities),
		overlay:  presenter.AmenityOverlay(amenities),
	})
}
