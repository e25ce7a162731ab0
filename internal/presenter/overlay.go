package presenter

import (
	"strings"

	"railway-planner/internal/models"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/geojson"
)

// Marker roles carried in the "role" feature property.
const (
	RoleStart       = "start"
	RoleEnd         = "end"
	RoleBoard       = "board"
	RoleInterchange = "interchange"
	RoleAlight      = "alight"
	RoleRoute       = "route"
	RoleAmenity     = "amenity"
)

// AmenityColors maps amenity kinds to marker colours.
var AmenityColors = map[string]string{
	"hotel":      "#1f77b4",
	"post_box":   "#ff7f0e",
	"restaurant": "#2ca02c",
	"hospital":   "#d62728",
	"ice_cream":  "#9467bd",
	"cafe":       "#8c564b",
	"taxi":       "#e377c2",
}

// AmenityColor returns the marker colour for kind, black when unknown.
func AmenityColor(kind string) string {
	if c, ok := AmenityColors[kind]; ok {
		return c
	}
	return "black"
}

// ParseWKT decodes a WKT literal. Typed literals such as
// `"POINT(1 2)"^^geo:wktLiteral` and SRID prefixes are tolerated.
func ParseWKT(s string) (orb.Geometry, bool) {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, "^^"); i >= 0 {
		s = strings.Trim(s[:i], `"`)
	}
	if strings.HasPrefix(strings.ToUpper(s), "SRID=") {
		if i := strings.Index(s, ";"); i >= 0 {
			s = s[i+1:]
		}
	}
	if s == "" {
		return nil, false
	}
	g, err := wkt.Unmarshal(s)
	if err != nil || g == nil {
		return nil, false
	}
	return g, true
}

// PointFromWKT decodes a WKT point. Anything else reports false.
func PointFromWKT(s string) (models.Point, bool) {
	g, ok := ParseWKT(s)
	if !ok {
		return models.Point{}, false
	}
	p, ok := g.(orb.Point)
	if !ok {
		return models.Point{}, false
	}
	return models.Point{Lat: p.Lat(), Lon: p.Lon()}, true
}

func stationFeature(s models.StationHit, role string, props map[string]any) *geojson.Feature {
	g, ok := ParseWKT(s.Geometry)
	if !ok {
		return nil
	}
	f := geojson.NewFeature(g)
	f.Properties["role"] = role
	f.Properties["id"] = s.ID
	f.Properties["name"] = s.Name
	f.Properties["distance_km"] = s.Distance
	for k, v := range props {
		f.Properties[k] = v
	}
	return f
}

func appendFeature(fc *geojson.FeatureCollection, f *geojson.Feature) {
	if f != nil {
		fc.Append(f)
	}
}

// DirectOverlay marks the start and end stations of each direct route.
func DirectOverlay(routes []models.MatchedRoute) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, r := range routes {
		props := map[string]any{"route": r.RouteName, "total_distance_km": r.TotalDistance}
		appendFeature(fc, stationFeature(r.Start, RoleStart, props))
		appendFeature(fc, stationFeature(r.End, RoleEnd, props))
	}
	return fc
}

// TransferOverlay marks the boarding and alighting stations of each transfer.
// Interchanges come from the intersection query, which carries no geometry,
// so they are only drawn when a geometry is known.
func TransferOverlay(transfers []models.TransferCandidate) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, t := range transfers {
		props := map[string]any{"route_a": t.RouteA.RouteName, "route_b": t.RouteB.RouteName, "change": t.Interchange.Name}
		appendFeature(fc, stationFeature(t.RouteA.Station, RoleBoard, props))
		appendFeature(fc, stationFeature(t.Interchange, RoleInterchange, props))
		appendFeature(fc, stationFeature(t.RouteB.Station, RoleAlight, props))
	}
	return fc
}

// JourneyOverlay picks the overlay matching the journey outcome.
func JourneyOverlay(j models.Journey) *geojson.FeatureCollection {
	if j.Outcome == models.OutcomeTransfer {
		return TransferOverlay(j.Transfers)
	}
	return DirectOverlay(j.Direct)
}

// RouteOverlay draws a route geometry. Malformed WKT yields an empty collection.
func RouteOverlay(route, geometry string) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	g, ok := ParseWKT(geometry)
	if !ok {
		return fc
	}
	f := geojson.NewFeature(g)
	f.Properties["role"] = RoleRoute
	f.Properties["id"] = route
	fc.Append(f)
	return fc
}

// AmenityOverlay draws a coloured marker per amenity with a parseable location.
func AmenityOverlay(amenities []models.Amenity) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, a := range amenities {
		g, ok := ParseWKT(a.Location)
		if !ok {
			continue
		}
		f := geojson.NewFeature(g)
		f.Properties["role"] = RoleAmenity
		f.Properties["id"] = a.ID
		f.Properties["amenity"] = a.Kind
		f.Properties["name"] = a.Name
		f.Properties["distance_km"] = a.Distance
		f.Properties["color"] = AmenityColor(a.Kind)
		fc.Append(f)
	}
	return fc
}
