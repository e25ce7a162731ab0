// Package presenter turns matched journeys and amenities into tables,
// GeoJSON overlays and delimited-text exports.
package presenter

import (
	"strconv"

	"railway-planner/internal/models"
)

// Table is a header row plus string cells, ready for display or export.
type Table struct {
	Header []string   `json:"header" yaml:"header"`
	Rows   [][]string `json:"rows" yaml:"rows"`
}

func km(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// DirectTable lists direct routes.
func DirectTable(routes []models.MatchedRoute) Table {
	t := Table{
		Header: []string{"Route", "Route name", "Operator", "Start station", "End station", "Total walking distance (km)"},
		Rows:   make([][]string, 0, len(routes)),
	}
	for _, r := range routes {
		t.Rows = append(t.Rows, []string{r.RouteID, r.RouteName, r.Operator, r.Start.Name, r.End.Name, km(r.TotalDistance)})
	}
	return t
}

// TransferTable lists routes with one change.
func TransferTable(transfers []models.TransferCandidate) Table {
	t := Table{
		Header: []string{"First route", "Board at", "Change at", "Second route", "Alight at"},
		Rows:   make([][]string, 0, len(transfers)),
	}
	for _, tr := range transfers {
		t.Rows = append(t.Rows, []string{
			tr.RouteA.RouteName,
			tr.RouteA.Station.Name,
			tr.Interchange.Name,
			tr.RouteB.RouteName,
			tr.RouteB.Station.Name,
		})
	}
	return t
}

// JourneyTable picks the table matching the journey outcome.
func JourneyTable(j models.Journey) Table {
	if j.Outcome == models.OutcomeTransfer {
		return TransferTable(j.Transfers)
	}
	return DirectTable(j.Direct)
}

// AmenityTable lists amenities with decoded coordinates. Unparseable
// locations leave the coordinate cells empty.
func AmenityTable(amenities []models.Amenity) Table {
	t := Table{
		Header: []string{"OSM ID", "Location", "Distance (km)", "Latitude", "Longitude", "Amenity", "Name"},
		Rows:   make([][]string, 0, len(amenities)),
	}
	for _, a := range amenities {
		lat, lon := "", ""
		if p, ok := PointFromWKT(a.Location); ok {
			lat, lon = km(p.Lat), km(p.Lon)
		}
		t.Rows = append(t.Rows, []string{a.ID, a.Location, km(a.Distance), lat, lon, a.Kind, a.Name})
	}
	return t
}
