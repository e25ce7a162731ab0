package repository

import (
	"context"
	"fmt"

	"railway-planner/internal/models"
	"railway-planner/internal/query"
)

// WikidataRepository reads station metadata from the Wikidata query service.
type WikidataRepository struct {
	client Querier
}

// NewWikidataRepository creates a repository backed by the Wikidata SPARQL endpoint
func NewWikidataRepository(client Querier) *WikidataRepository {
	return &WikidataRepository{client: client}
}

// StationDetails returns stations whose label contains name
func (r *WikidataRepository) StationDetails(ctx context.Context, name string) ([]models.StationDetails, error) {
	rows, err := r.client.Query(ctx, query.StationDetails(name))
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query station details: %w", err)
	}

	details := make([]models.StationDetails, 0, len(rows))
	for _, row := range rows {
		details = append(details, models.StationDetails{
			Station:            row["station"],
			StreetAddress:      row["street_address"],
			CoordinateLocation: row["coordinate_location"],
			AdjacentStation:    row["adjacent_station"],
			OfficialWebsite:    row["official_website"],
			OpeningDate:        row["date_of_official_opening"],
		})
	}
	return details, nil
}
