package models

// StationDetails is knowledge-graph metadata about a railway station.
type StationDetails struct {
	Station            string `json:"station" yaml:"station"`
	StreetAddress      string `json:"street_address,omitempty" yaml:"street_address,omitempty"`
	CoordinateLocation string `json:"coordinate_location,omitempty" yaml:"coordinate_location,omitempty"`
	AdjacentStation    string `json:"adjacent_station,omitempty" yaml:"adjacent_station,omitempty"`
	OfficialWebsite    string `json:"official_website,omitempty" yaml:"official_website,omitempty"`
	OpeningDate        string `json:"date_of_official_opening,omitempty" yaml:"date_of_official_opening,omitempty"`
}

// Amenity is an OSM object tagged with an amenity near a reference point.
type Amenity struct {
	ID       string  `json:"osm_id" yaml:"osm_id"`
	Kind     string  `json:"amenity" yaml:"amenity"`
	Name     string  `json:"name" yaml:"name"`
	Location string  `json:"location" yaml:"location"`
	Distance float64 `json:"distance_km" yaml:"distance_km"`
}

// DefaultAmenityKinds are queried when a caller does not pick any.
var DefaultAmenityKinds = []string{"hotel", "post_box", "restaurant", "hospital", "ice_cream", "cafe", "taxi"}
