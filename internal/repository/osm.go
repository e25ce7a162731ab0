package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"railway-planner/internal/models"
	"railway-planner/internal/query"
	"railway-planner/internal/sparql"
)

// ErrNotFound is returned when the endpoint has no data for a lookup by identifier.
var ErrNotFound = errors.New("not found")

// Querier runs a SPARQL query against one endpoint.
type Querier interface {
	Query(ctx context.Context, q string) ([]sparql.Binding, error)
}

// OSMRepository reads stations, routes and amenities from an osm2rdf endpoint.
type OSMRepository struct {
	client Querier
}

// NewOSMRepository creates a repository backed by an osm2rdf SPARQL endpoint
func NewOSMRepository(client Querier) *OSMRepository {
	return &OSMRepository{client: client}
}

func (r *OSMRepository) query(ctx context.Context, q string) ([]sparql.Binding, error) {
	return r.client.Query(ctx, query.OSMPrefixes+q)
}

// RoutesNearPoint returns one candidate per (route, station) pair within radiusKm of p, nearest first
func (r *OSMRepository) RoutesNearPoint(ctx context.Context, p models.Point, radiusKm float64) ([]models.RouteCandidate, error) {
	rows, err := r.query(ctx, query.RoutesNearPoint(p, radiusKm))
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query routes near point: %w", err)
	}

	candidates := make([]models.RouteCandidate, 0, len(rows))
	for _, row := range rows {
		distance, err := strconv.ParseFloat(row["distance"], 64)
		if err != nil {
			return nil, fmt.Errorf("repository: invalid distance %q for station %s: %w", row["distance"], row["station"], err)
		}
		candidates = append(candidates, models.RouteCandidate{
			RouteID:   row["route"],
			RouteName: row["routeName"],
			Operator:  row["operator"],
			Station: models.StationHit{
				ID:       row["station"],
				Name:     row["stationName"],
				Geometry: row["stationGeometry"],
				Distance: distance,
			},
		})
	}

	return candidates, nil
}

// Intersections returns the stations shared by two routes. The query is limited to one row.
func (r *OSMRepository) Intersections(ctx context.Context, routeA, routeB string) ([]models.StationHit, error) {
	rows, err := r.query(ctx, query.Intersections(routeA, routeB))
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query intersections: %w", err)
	}

	stations := make([]models.StationHit, 0, len(rows))
	for _, row := range rows {
		stations = append(stations, models.StationHit{
			ID:   row["station1"],
			Name: row["stationName"],
		})
	}
	return stations, nil
}

// RouteGeometry returns the WKT geometry of a route
func (r *OSMRepository) RouteGeometry(ctx context.Context, route string) (string, error) {
	rows, err := r.query(ctx, query.RouteGeometry(route))
	if err != nil {
		return "", fmt.Errorf("repository: failed to query route geometry: %w", err)
	}
	if len(rows) == 0 || rows[0]["railGeometry"] == "" {
		return "", fmt.Errorf("repository: no geometry for route %s: %w", route, ErrNotFound)
	}
	return rows[0]["railGeometry"], nil
}

// AmenitiesNear returns amenities of the given kinds within radiusKm of p
func (r *OSMRepository) AmenitiesNear(ctx context.Context, p models.Point, kinds []string, radiusKm float64) ([]models.Amenity, error) {
	rows, err := r.query(ctx, query.AmenitiesNear(p, kinds, radiusKm))
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query amenities: %w", err)
	}

	amenities := make([]models.Amenity, 0, len(rows))
	for _, row := range rows {
		distance, err := strconv.ParseFloat(row["distance"], 64)
		if err != nil {
			return nil, fmt.Errorf("repository: invalid distance %q for %s: %w", row["distance"], row["osm_id"], err)
		}
		name := row["name"]
		if name == "" {
			name = "Unknown"
		}
		amenities = append(amenities, models.Amenity{
			ID:       row["osm_id"],
			Kind:     row["amenity"],
			Name:     name,
			Location: row["location"],
			Distance: distance,
		})
	}
	return amenities, nil
}
