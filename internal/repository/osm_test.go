package repository

import (
	"context"
	"strings"
	"testing"

	"railway-planner/internal/models"
	"railway-planner/internal/sparql"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockQuerier is a mock implementation of the Querier interface
type MockQuerier struct {
	mock.Mock
}

func (m *MockQuerier) Query(ctx context.Context, q string) ([]sparql.Binding, error) {
	args := m.Called(ctx, q)
	bindings, _ := args.Get(0).([]sparql.Binding)
	return bindings, args.Error(1)
}

func withPrefixes(q string) bool {
	return strings.HasPrefix(q, "PREFIX rdf:")
}

func TestOSMRepository_RoutesNearPoint(t *testing.T) {
	tests := []struct {
		name        string
		rows        []sparql.Binding
		mockError   error
		expected    []models.RouteCandidate
		expectError bool
	}{
		{
			name: "rows become candidates",
			rows: []sparql.Binding{
				{
					"route":           "https://www.openstreetmap.org/relation/10",
					"routeName":       "R10",
					"station":         "https://www.openstreetmap.org/node/1",
					"stationName":     "Alpha",
					"stationGeometry": "POINT(21 52)",
					"distance":        "1.2",
					"operator":        "Koleje Mazowieckie",
				},
				{
					"route":           "https://www.openstreetmap.org/relation/11",
					"routeName":       "R11",
					"station":         "https://www.openstreetmap.org/node/1",
					"stationName":     "Alpha",
					"stationGeometry": "POINT(21 52)",
					"distance":        "1.2",
				},
			},
			expected: []models.RouteCandidate{
				{
					RouteID:   "https://www.openstreetmap.org/relation/10",
					RouteName: "R10",
					Operator:  "Koleje Mazowieckie",
					Station: models.StationHit{
						ID:       "https://www.openstreetmap.org/node/1",
						Name:     "Alpha",
						Geometry: "POINT(21 52)",
						Distance: 1.2,
					},
				},
				{
					RouteID:   "https://www.openstreetmap.org/relation/11",
					RouteName: "R11",
					Station: models.StationHit{
						ID:       "https://www.openstreetmap.org/node/1",
						Name:     "Alpha",
						Geometry: "POINT(21 52)",
						Distance: 1.2,
					},
				},
			},
		},
		{
			name:     "no rows",
			rows:     []sparql.Binding{},
			expected: []models.RouteCandidate{},
		},
		{
			name:        "bad distance",
			rows:        []sparql.Binding{{"route": "r", "distance": "far"}},
			expectError: true,
		},
		{
			name:        "endpoint error",
			mockError:   sparql.ErrRemote,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(MockQuerier)
			client.On("Query", mock.Anything, mock.MatchedBy(withPrefixes)).Return(tt.rows, tt.mockError)
			repo := NewOSMRepository(client)

			result, err := repo.RoutesNearPoint(context.Background(), models.Point{Lat: 52, Lon: 21}, 5)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
			client.AssertExpectations(t)
		})
	}
}

func TestOSMRepository_Intersections(t *testing.T) {
	client := new(MockQuerier)
	client.On("Query", mock.Anything, mock.MatchedBy(withPrefixes)).Return([]sparql.Binding{
		{"station1": "https://www.openstreetmap.org/node/7", "stationName": "Junction"},
	}, nil)
	repo := NewOSMRepository(client)

	stations, err := repo.Intersections(context.Background(), "a", "b")
	require.NoError(t, err)
	assert.Equal(t, []models.StationHit{{ID: "https://www.openstreetmap.org/node/7", Name: "Junction"}}, stations)
}

func TestOSMRepository_RouteGeometry(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		client := new(MockQuerier)
		client.On("Query", mock.Anything, mock.Anything).Return([]sparql.Binding{
			{"railGeometry": "LINESTRING(21 52,22 53)"},
		}, nil)

		wkt, err := NewOSMRepository(client).RouteGeometry(context.Background(), "r")
		require.NoError(t, err)
		assert.Equal(t, "LINESTRING(21 52,22 53)", wkt)
	})

	t.Run("missing", func(t *testing.T) {
		client := new(MockQuerier)
		client.On("Query", mock.Anything, mock.Anything).Return([]sparql.Binding{}, nil)

		_, err := NewOSMRepository(client).RouteGeometry(context.Background(), "r")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestOSMRepository_AmenitiesNear(t *testing.T) {
	client := new(MockQuerier)
	client.On("Query", mock.Anything, mock.MatchedBy(func(q string) bool {
		return withPrefixes(q) && strings.Contains(q, `"cafe"`)
	})).Return([]sparql.Binding{
		{"osm_id": "https://www.openstreetmap.org/node/5", "amenity": "cafe", "location": "POINT(21 52)", "distance": "0.3"},
		{"osm_id": "https://www.openstreetmap.org/node/6", "amenity": "cafe", "name": "Kawiarnia", "location": "POINT(21.1 52)", "distance": "0.7"},
	}, nil)

	amenities, err := NewOSMRepository(client).AmenitiesNear(context.Background(), models.Point{Lat: 52, Lon: 21}, []string{"cafe"}, 1)
	require.NoError(t, err)
	require.Len(t, amenities, 2)
	assert.Equal(t, "Unknown", amenities[0].Name)
	assert.Equal(t, "Kawiarnia", amenities[1].Name)
	assert.Equal(t, 0.7, amenities[1].Distance)
}

func TestWikidataRepository_StationDetails(t *testing.T) {
	client := new(MockQuerier)
	client.On("Query", mock.Anything, mock.MatchedBy(func(q string) bool {
		return strings.Contains(q, `LCASE("Centralna")`)
	})).Return([]sparql.Binding{
		{
			"station":                  "http://www.wikidata.org/entity/Q1",
			"official_website":         "https://example.org",
			"date_of_official_opening": "1975-12-05T00:00:00Z",
		},
	}, nil)

	details, err := NewWikidataRepository(client).StationDetails(context.Background(), "Centralna")
	require.NoError(t, err)
	assert.Equal(t, []models.StationDetails{{
		Station:         "http://www.wikidata.org/entity/Q1",
		OfficialWebsite: "https://example.org",
		OpeningDate:     "1975-12-05T00:00:00Z",
	}}, details)
}
