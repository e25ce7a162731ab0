package handler

import (
	"context"
	"net/http"

	"railway-planner/internal/models"
	"railway-planner/internal/presenter"
	"railway-planner/internal/service"

	"github.com/gin-gonic/gin"
)

// JourneyHandler handles route matching requests
type JourneyHandler struct {
	service JourneyService
}

// JourneyService interface for dependency injection
type JourneyService interface {
	FindCommonRoutes(ctx context.Context, a, b models.Point, radiusKm float64) ([]models.MatchedRoute, error)
	FindRoutesWithChange(ctx context.Context, a, b models.Point, radiusKm float64, operator string) ([]models.TransferCandidate, error)
	Plan(ctx context.Context, req service.PlanRequest) (models.Journey, error)
	RouteGeometry(ctx context.Context, route string) (string, error)
}

// NewJourneyHandler creates a new journey handler
func NewJourneyHandler(svc JourneyService) *JourneyHandler {
	return &JourneyHandler{service: svc}
}

// Direct handles GET /api/v1/journeys/direct requests
//
//	@Summary	Routes serving both points without a change
//	@Tags		journeys
//	@Produce	json
//	@Param		from_lat	query	number	true	"Origin latitude"
//	@Param		from_lon	query	number	true	"Origin longitude"
//	@Param		to_lat		query	number	true	"Destination latitude"
//	@Param		to_lon		query	number	true	"Destination longitude"
//	@Param		radius		query	number	false	"Walking radius in km"
//	@Param		unique		query	string	false	"pair or name"
//	@Param		operator	query	string	false	"Operator substring"
//	@Param		format		query	string	false	"json, geojson, csv or yaml"
//	@Success	200	{array}	models.MatchedRoute
//	@Router		/journeys/direct [get]
func (h *JourneyHandler) Direct(c *gin.Context) {
	from, to, err := parseEndpoints(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	radius, err := parseRadius(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	routes, err := h.service.FindCommonRoutes(c.Request.Context(), from, to, radius)
	if err != nil {
		respondError(c, err)
		return
	}

	routes = service.FilterRoutesByOperator(routes, c.Query("operator"))
	switch c.Query("unique") {
	case "":
	case "pair":
		routes = service.UniqueByStationPair(routes)
	case "name":
		routes = service.UniqueByRouteName(routes)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unique must be 'pair' or 'name'"})
		return
	}

	render(c, view{
		filename: "direct_routes",
		payload:  routes,
		table:    presenter.DirectTable(routes),
		overlay:  presenter.DirectOverlay(routes),
	})
}

// Transfer handles GET /api/v1/journeys/transfer requests
//
//	@Summary	Route pairs connected by one interchange
//	@Tags		journeys
//	@Produce	json
//	@Param		from_lat	query	number	true	"Origin latitude"
//	@Param		from_lon	query	number	true	"Origin longitude"
//	@Param		to_lat		query	number	true	"Destination latitude"
//	@Param		to_lon		query	number	true	"Destination longitude"
//	@Param		radius		query	number	false	"Walking radius in km"
//	@Param		operator	query	string	false	"Operator substring"
//	@Param		format		query	string	false	"json, geojson, csv or yaml"
//	@Success	200	{array}	models.TransferCandidate
//	@Router		/journeys/transfer [get]
func (h *JourneyHandler) Transfer(c *gin.Context) {
	from, to, err := parseEndpoints(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	radius, err := parseRadius(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	transfers, err := h.service.FindRoutesWithChange(c.Request.Context(), from, to, radius, c.Query("operator"))
	if err != nil {
		respondError(c, err)
		return
	}

	render(c, view{
		filename: "transfer_routes",
		payload:  transfers,
		table:    presenter.TransferTable(transfers),
		overlay:  presenter.TransferOverlay(transfers),
	})
}

// Plan handles GET /api/v1/journeys requests
//
//	@Summary	Direct routes, or routes with one change when none exist
//	@Tags		journeys
//	@Produce	json
//	@Param		from_lat	query	number	true	"Origin latitude"
//	@Param		from_lon	query	number	true	"Origin longitude"
//	@Param		to_lat		query	number	true	"Destination latitude"
//	@Param		to_lon		query	number	true	"Destination longitude"
//	@Param		radius		query	number	false	"Walking radius in km"
//	@Param		operator	query	string	false	"Operator substring"
//	@Param		format		query	string	false	"json, geojson, csv or yaml"
//	@Success	200	{object}	models.Journey
//	@Router		/journeys [get]
func (h *JourneyHandler) Plan(c *gin.Context) {
	from, to, err := parseEndpoints(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	radius, err := parseRadius(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	journey, err := h.service.Plan(c.Request.Context(), service.PlanRequest{
		From:     from,
		To:       to,
		RadiusKm: radius,
		Operator: c.Query("operator"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	render(c, view{
		filename: "journey",
		payload:  journey,
		table:    presenter.JourneyTable(journey),
		overlay:  presenter.JourneyOverlay(journey),
	})
}

// RouteGeometry handles GET /api/v1/routes/geometry requests
//
//	@Summary	Route line geometry as GeoJSON
//	@Tags		routes
//	@Produce	json
//	@Param		route	query	string	true	"Route IRI"
//	@Router		/routes/geometry [get]
func (h *JourneyHandler) RouteGeometry(c *gin.Context) {
	route := c.Query("route")
	if route == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'route'"})
		return
	}

	wkt, err := h.service.RouteGeometry(c.Request.Context(), route)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Type", "application/geo+json")
	c.JSON(http.StatusOK, presenter.RouteOverlay(route, wkt))
}
