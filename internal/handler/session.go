package handler

import (
	"context"
	"net/http"

	"railway-planner/internal/models"
	"railway-planner/internal/presenter"
	"railway-planner/internal/service"
	"railway-planner/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// SessionHandler drives the two-point planning flow
type SessionHandler struct {
	store     *session.Store
	planner   Planner
	amenities AmenityService
	defaults  session.Filters
}

// Planner interface for dependency injection
type Planner interface {
	Plan(ctx context.Context, req service.PlanRequest) (models.Journey, error)
}

// NewSessionHandler creates a new session handler. New sessions start with defaults.
func NewSessionHandler(store *session.Store, planner Planner, amenities AmenityService, defaults session.Filters) *SessionHandler {
	return &SessionHandler{store: store, planner: planner, amenities: amenities, defaults: defaults}
}

// pointAmenities groups the amenities found around one selected point.
type pointAmenities struct {
	Point     models.Point     `json:"point" yaml:"point"`
	Amenities []models.Amenity `json:"amenities" yaml:"amenities"`
}

type pointRequest struct {
	Lat *float64 `json:"lat" binding:"required"`
	Lon *float64 `json:"lon" binding:"required"`
}

type filtersRequest struct {
	RadiusKm  float64  `json:"radius_km" binding:"gte=0"`
	Amenities []string `json:"amenities"`
	Operator  string   `json:"operator"`
}

// Create handles POST /api/v1/sessions requests
//
//	@Summary	Start a planning session
//	@Tags		sessions
//	@Produce	json
//	@Router		/sessions [post]
func (h *SessionHandler) Create(c *gin.Context) {
	s := h.store.Create(h.defaults)
	log.Debug().Str("session", s.ID).Int("active", h.store.Len()).Msg("session created")
	c.JSON(http.StatusCreated, s)
}

// Get handles GET /api/v1/sessions/:id requests
//
//	@Summary	Current session state
//	@Tags		sessions
//	@Produce	json
//	@Param		id	path	string	true	"Session ID"
//	@Router		/sessions/{id} [get]
func (h *SessionHandler) Get(c *gin.Context) {
	s, err := h.store.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// Delete handles DELETE /api/v1/sessions/:id requests
//
//	@Summary	End a session
//	@Tags		sessions
//	@Param		id	path	string	true	"Session ID"
//	@Router		/sessions/{id} [delete]
func (h *SessionHandler) Delete(c *gin.Context) {
	h.store.Delete(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// AddPoint handles POST /api/v1/sessions/:id/points requests
//
//	@Summary	Select a point
//	@Tags		sessions
//	@Accept		json
//	@Produce	json
//	@Param		id	path	string	true	"Session ID"
//	@Router		/sessions/{id}/points [post]
func (h *SessionHandler) AddPoint(c *gin.Context) {
	var req pointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body must contain numeric 'lat' and 'lon'"})
		return
	}

	p := models.Point{Lat: *req.Lat, Lon: *req.Lon}
	s, err := h.store.Update(c.Param("id"), func(s *session.Session) error {
		return s.AddPoint(p)
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// ClearPoints handles DELETE /api/v1/sessions/:id/points requests
//
//	@Summary	Clear selected points
//	@Tags		sessions
//	@Produce	json
//	@Param		id	path	string	true	"Session ID"
//	@Router		/sessions/{id}/points [delete]
func (h *SessionHandler) ClearPoints(c *gin.Context) {
	s, err := h.store.Update(c.Param("id"), func(s *session.Session) error {
		s.ClearPoints()
		return nil
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// SetFilters handles PUT /api/v1/sessions/:id/filters requests
//
//	@Summary	Replace the session filters
//	@Tags		sessions
//	@Accept		json
//	@Produce	json
//	@Param		id	path	string	true	"Session ID"
//	@Router		/sessions/{id}/filters [put]
func (h *SessionHandler) SetFilters(c *gin.Context) {
	var req filtersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filters"})
		return
	}

	s, err := h.store.Update(c.Param("id"), func(s *session.Session) error {
		s.SetFilters(session.Filters{RadiusKm: req.RadiusKm, Amenities: req.Amenities, Operator: req.Operator})
		return nil
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// Search handles POST /api/v1/sessions/:id/search requests
//
//	@Summary	Plan a journey between the two selected points
//	@Tags		sessions
//	@Produce	json
//	@Param		id	path	string	true	"Session ID"
//	@Router		/sessions/{id}/search [post]
func (h *SessionHandler) Search(c *gin.Context) {
	id := c.Param("id")
	s, err := h.store.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}

	from, to, err := s.Endpoints()
	if err != nil {
		respondError(c, err)
		return
	}

	journey, err := h.planner.Plan(c.Request.Context(), service.PlanRequest{
		From:     from,
		To:       to,
		RadiusKm: s.Filters.RadiusKm,
		Operator: s.Filters.Operator,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	s, err = h.store.Update(id, func(s *session.Session) error {
		return s.ApplyJourney(journey)
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// Journey handles GET /api/v1/sessions/:id/journey requests
//
//	@Summary	Last search result of the session
//	@Tags		sessions
//	@Produce	json
//	@Param		id		path	string	true	"Session ID"
//	@Param		format	query	string	false	"json, geojson, csv or yaml"
//	@Success	200	{object}	models.Journey
//	@Router		/sessions/{id}/journey [get]
func (h *SessionHandler) Journey(c *gin.Context) {
	s, err := h.store.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	journey, err := s.Journey()
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

// Amenities handles GET /api/v1/sessions/:id/amenities requests
//
//	@Summary	Amenities around the selected points using the session filters
//	@Tags		sessions
//	@Produce	json
//	@Param		id		path	string	true	"Session ID"
//	@Param		format	query	string	false	"json, geojson, csv or yaml"
//	@Router		/sessions/{id}/amenities [get]
func (h *SessionHandler) Amenities(c *gin.Context) {
	s, err := h.store.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if len(s.Points) == 0 {
		respondError(c, session.ErrNoPoints)
		return
	}

	kinds := s.Filters.Amenities
	if len(kinds) == 0 {
		kinds = models.DefaultAmenityKinds
	}

	results := make([]pointAmenities, 0, len(s.Points))
	var all []models.Amenity
	for _, p := range s.Points {
		amenities, err := h.amenities.Amenities(c.Request.Context(), p, kinds, s.Filters.RadiusKm)
		if err != nil {
			respondError(c, err)
			return
		}
		results = append(results, pointAmenities{Point: p, Amenities: amenities})
		all = append(all, amenities...)
	}

	render(c, view{
		filename: "session_amenities",
		payload:  results,
		table:    presenter.AmenityTable(all),
		overlay:  presenter.AmenityOverlay(all),
	})
}
