// Package query builds the SPARQL text sent to the OpenStreetMap and Wikidata
// endpoints. Inputs are interpolated verbatim; the endpoint is the only judge
// of whether a coordinate or IRI makes sense.
package query

import (
	"fmt"
	"strconv"
	"strings"

	"railway-planner/internal/models"
)

// OSMPrefixes is prepended to every query sent to the osm2rdf endpoint.
const OSMPrefixes = `PREFIX rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#>
PREFIX geo: <http://www.opengis.net/ont/geosparql#>
PREFIX geof: <http://www.opengis.net/def/function/geosparql/>
PREFIX osm: <https://www.openstreetmap.org/>
PREFIX osmkey: <https://www.openstreetmap.org/wiki/Key:>
PREFIX osm2rdfmember: <https://osm2rdf.cs.uni-freiburg.de/rdf/member#>
PREFIX osmrel: <https://www.openstreetmap.org/relation/>
PREFIX osmway: <https://www.openstreetmap.org/way/>
PREFIX ogc: <http://www.opengis.net/rdf#>
`

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// RoutesNearPoint selects railway stops within radiusKm of p together with
// every train route containing them, nearest first.
func RoutesNearPoint(p models.Point, radiusKm float64) string {
	return fmt.Sprintf(`SELECT ?route ?routeName ?stationGeometry ?station ?stationName ?distance ?operator WHERE {
  BIND ("%s"^^geo:wktLiteral AS ?referencePoint)

  ?station osmkey:railway "stop" ;
           osmkey:name ?stationName ;
           geo:hasGeometry/geo:asWKT ?stationGeometry .
  BIND (geof:distance(?referencePoint, ?stationGeometry) AS ?distance)
  FILTER (?distance <= %s)

  ?route ogc:sfContains ?station ;
         osmkey:route ?routeType ;
         osmkey:name ?routeName .
  FILTER (?routeType IN ("train", "railway"))
  OPTIONAL { ?route osmkey:operator ?operator }
}
ORDER BY ?distance
`, p.WKT(), num(radiusKm))
}

// Intersections selects at most one named stop contained in routeA whose name
// also belongs to a member of routeB.
func Intersections(routeA, routeB string) string {
	return fmt.Sprintf(`SELECT ?station1 ?stationName WHERE {
  <%s> ogc:sfContains ?station1 .
  ?station1 osmkey:name ?stationName .

  <%s> ogc:sfContains ?station2 .
  ?station2 osmkey:name ?stationName .

  ?station1 osmkey:railway "stop" .
}
GROUP BY ?stationName ?station1
LIMIT 1
`, routeA, routeB)
}

// RouteGeometry selects the WKT geometry of a route relation.
func RouteGeometry(route string) string {
	return fmt.Sprintf(`SELECT ?railGeometry WHERE {
  <%s> geo:hasGeometry/geo:asWKT ?railGeometry .
}
`, route)
}

// AmenitiesNear selects objects tagged with one of kinds within radiusKm of p.
func AmenitiesNear(p models.Point, kinds []string, radiusKm float64) string {
	quoted := make([]string, len(kinds))
	for i, k := range kinds {
		quoted[i] = strconv.Quote(k)
	}
	return fmt.Sprintf(`SELECT ?osm_id ?location ?distance ?amenity ?name WHERE {
  BIND ("%s"^^geo:wktLiteral AS ?referencePoint)
  ?osm_id osmkey:amenity ?amenity .
  VALUES ?amenity { %s }
  ?osm_id geo:hasGeometry/geo:asWKT ?location .
  OPTIONAL { ?osm_id osmkey:name ?name }
  BIND (geof:distance(?referencePoint, ?location) AS ?distance)
  FILTER (?distance <= %s)
}
ORDER BY ?distance
`, p.WKT(), strings.Join(quoted, " "), num(radiusKm))
}

// StationDetails selects Wikidata railway stations whose label contains name,
// ignoring case.
func StationDetails(name string) string {
	return fmt.Sprintf(`PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
PREFIX wd: <http://www.wikidata.org/entity/>
PREFIX wdt: <http://www.wikidata.org/prop/direct/>
SELECT DISTINCT ?station ?street_address ?coordinate_location ?adjacent_station ?official_website ?date_of_official_opening
WHERE {
  ?station rdfs:label ?stationLabel ;
           wdt:P31 wd:Q55488 .
  FILTER (CONTAINS(LCASE(?stationLabel), LCASE(%s)))
  OPTIONAL { ?station wdt:P6375 ?street_address . }
  OPTIONAL { ?station wdt:P625 ?coordinate_location . }
  OPTIONAL { ?station wdt:P197 ?adjacent_station . }
  OPTIONAL { ?station wdt:P856 ?official_website . }
  OPTIONAL { ?station wdt:P1619 ?date_of_official_opening . }
}
LIMIT 50
`, strconv.Quote(name))
}
