package models

import (
	"strconv"
	"time"
)

// Point is a user-supplied WGS84 coordinate.
type Point struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

// WKT renders the point as a well-known-text literal. WKT puts longitude first.
func (p Point) WKT() string {
	return "POINT(" + strconv.FormatFloat(p.Lon, 'f', -1, 64) + " " + strconv.FormatFloat(p.Lat, 'f', -1, 64) + ")"
}

// StationHit is a railway stop found near a reference point.
type StationHit struct {
	ID       string  `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	Geometry string  `json:"geometry,omitempty" yaml:"geometry,omitempty"`
	Distance float64 `json:"distance_km" yaml:"distance_km"`
}

// RouteCandidate is a rail route passing through a station near a reference point.
type RouteCandidate struct {
	RouteID   string     `json:"route_id" yaml:"route_id"`
	RouteName string     `json:"route_name" yaml:"route_name"`
	Operator  string     `json:"operator,omitempty" yaml:"operator,omitempty"`
	Station   StationHit `json:"station" yaml:"station"`
}

// MatchedRoute is a single route serving both the origin and the destination.
type MatchedRoute struct {
	RouteID       string     `json:"route_id" yaml:"route_id"`
	RouteName     string     `json:"route_name" yaml:"route_name"`
	Start         StationHit `json:"start" yaml:"start"`
	End           StationHit `json:"end" yaml:"end"`
	TotalDistance float64    `json:"total_distance_km" yaml:"total_distance_km"`
	Operator      string     `json:"operator,omitempty" yaml:"operator,omitempty"`
}

// TransferCandidate is a pair of routes connected by one interchange station.
type TransferCandidate struct {
	RouteA      RouteCandidate `json:"route_a" yaml:"route_a"`
	RouteB      RouteCandidate `json:"route_b" yaml:"route_b"`
	Interchange StationHit     `json:"interchange" yaml:"interchange"`
}

// Journey outcomes.
const (
	OutcomeDirect   = "direct"
	OutcomeTransfer = "transfer"
	OutcomeNone     = "none"
)

// Journey is the result of planning between two points: direct routes when
// any exist, otherwise transfer options.
type Journey struct {
	From      Point               `json:"from" yaml:"from"`
	To        Point               `json:"to" yaml:"to"`
	RadiusKm  float64             `json:"radius_km" yaml:"radius_km"`
	Outcome   string              `json:"outcome" yaml:"outcome"`
	Direct    []MatchedRoute      `json:"direct" yaml:"direct"`
	Transfers []TransferCandidate `json:"transfers" yaml:"transfers"`
}

// SearchRecord is a persisted summary of a planned journey.
type SearchRecord struct {
	ID          int64     `json:"id"`
	FromLat     float64   `json:"from_lat"`
	FromLon     float64   `json:"from_lon"`
	ToLat       float64   `json:"to_lat"`
	ToLon       float64   `json:"to_lon"`
	RadiusKm    float64   `json:"radius_km"`
	Outcome     string    `json:"outcome"`
	ResultCount int       `json:"result_count"`
	CreatedAt   time.Time `json:"created_at"`
}
