package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"railway-planner/internal/models"
	"railway-planner/internal/repository"
	"railway-planner/internal/service"
	"railway-planner/internal/session"
	"railway-planner/internal/sparql"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// parsePoint reads a coordinate pair from the query string. Values are not
// range-checked; the remote endpoint decides what a coordinate means.
func parsePoint(c *gin.Context, latKey, lonKey string) (models.Point, error) {
	latStr := c.Query(latKey)
	lonStr := c.Query(lonKey)

	if latStr == "" || lonStr == "" {
		return models.Point{}, fmt.Errorf("missing required query parameters '%s' and '%s'", latKey, lonKey)
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return models.Point{}, fmt.Errorf("invalid %s format", latKey)
	}

	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return models.Point{}, fmt.Errorf("invalid %s format", lonKey)
	}

	return models.Point{Lat: lat, Lon: lon}, nil
}

// parseEndpoints reads from_lat/from_lon and to_lat/to_lon.
func parseEndpoints(c *gin.Context) (from, to models.Point, err error) {
	if from, err = parsePoint(c, "from_lat", "from_lon"); err != nil {
		return
	}
	to, err = parsePoint(c, "to_lat", "to_lon")
	return
}

// parseRadius reads an optional radius in kilometres; zero selects the service default.
func parseRadius(c *gin.Context) (float64, error) {
	s := c.Query("radius")
	if s == "" {
		return 0, nil
	}
	r, err := strconv.ParseFloat(s, 64)
	if err != nil || r < 0 {
		return 0, errors.New("invalid radius format")
	}
	return r, nil
}

// parseList splits a comma-separated parameter, dropping empty items.
func parseList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// respondError maps service errors to HTTP responses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyRoute),
		errors.Is(err, service.ErrEmptyStationName),
		errors.Is(err, service.ErrNoAmenityKinds):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, session.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, session.ErrTooManyPoints), errors.Is(err, session.ErrNeedTwoPoints),
		errors.Is(err, session.ErrNoPoints), errors.Is(err, session.ErrNoResults):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, sparql.ErrRemote), errors.Is(err, context.DeadlineExceeded):
		log.Error().Err(err).Str("path", c.FullPath()).Msg("remote query failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "remote query failed: " + err.Error()})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
