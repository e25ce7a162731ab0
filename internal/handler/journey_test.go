package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"railway-planner/internal/models"
	"railway-planner/internal/repository"
	"railway-planner/internal/service"
	"railway-planner/internal/sparql"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockJourneyService is a mock implementation of the JourneyService interface
type MockJourneyService struct {
	mock.Mock
}

func (m *MockJourneyService) FindCommonRoutes(ctx context.Context, a, b models.Point, radiusKm float64) ([]models.MatchedRoute, error) {
	args := m.Called(ctx, a, b, radiusKm)
	routes, _ := args.Get(0).([]models.MatchedRoute)
	return routes, args.Error(1)
}

func (m *MockJourneyService) FindRoutesWithChange(ctx context.Context, a, b models.Point, radiusKm float64, operator string) ([]models.TransferCandidate, error) {
	args := m.Called(ctx, a, b, radiusKm, operator)
	transfers, _ := args.Get(0).([]models.TransferCandidate)
	return transfers, args.Error(1)
}

func (m *MockJourneyService) Plan(ctx context.Context, req service.PlanRequest) (models.Journey, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(models.Journey), args.Error(1)
}

func (m *MockJourneyService) RouteGeometry(ctx context.Context, route string) (string, error) {
	args := m.Called(ctx, route)
	return args.String(0), args.Error(1)
}

var (
	warsaw = models.Point{Lat: 52.2297, Lon: 21.0122}
	krakow = models.Point{Lat: 50.0647, Lon: 19.945}
)

func endpointsQuery(extra string) string {
	q := "from_lat=52.2297&from_lon=21.0122&to_lat=50.0647&to_lon=19.945"
	if extra != "" {
		q += "&" + extra
	}
	return q
}

func performRequest(method, target string, body string, handle gin.HandlerFunc) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	handle(c)
	return w
}

func jsonString(t *testing.T, v any) string {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return string(raw)
}

func matchedRoute(name, start, end string, total float64) models.MatchedRoute {
	return models.MatchedRoute{
		RouteID:       "https://www.openstreetmap.org/relation/" + name,
		RouteName:     name,
		Start:         models.StationHit{Name: start, Geometry: "POINT(21 52)", Distance: 1.2},
		End:           models.StationHit{Name: end, Geometry: "POINT(19.9 50)", Distance: 0.8},
		TotalDistance: total,
	}
}

func TestJourneyHandler_Direct(t *testing.T) {
	gin.SetMode(gin.TestMode)

	routes := []models.MatchedRoute{
		matchedRoute("R10", "A", "B", 2.0),
		matchedRoute("R11", "A", "B", 2.0),
		matchedRoute("R10", "C", "B", 2.4),
	}
	regional := matchedRoute("R20", "A", "B", 1.0)
	regional.Operator = "Koleje Mazowieckie"
	intercity := matchedRoute("R21", "A", "B", 1.0)
	intercity.Operator = "PKP Intercity"

	tests := []struct {
		name           string
		query          string
		callService    bool
		radius         float64
		mockRoutes     []models.MatchedRoute
		mockError      error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "missing query parameters",
			query:          "from_lat=52.2",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"missing required query parameters 'from_lat' and 'from_lon'"}`,
		},
		{
			name:           "invalid latitude",
			query:          "from_lat=north&from_lon=21&to_lat=50&to_lon=19",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid from_lat format"}`,
		},
		{
			name:           "invalid radius",
			query:          endpointsQuery("radius=-1"),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid radius format"}`,
		},
		{
			name:           "routes found",
			query:          endpointsQuery("radius=3"),
			callService:    true,
			radius:         3,
			mockRoutes:     routes,
			expectedStatus: http.StatusOK,
			expectedBody:   jsonString(t, routes),
		},
		{
			name:           "unique by station pair",
			query:          endpointsQuery("unique=pair"),
			callService:    true,
			mockRoutes:     routes,
			expectedStatus: http.StatusOK,
			expectedBody:   jsonString(t, []models.MatchedRoute{routes[0], routes[2]}),
		},
		{
			name:           "unique by route name",
			query:          endpointsQuery("unique=name"),
			callService:    true,
			mockRoutes:     routes,
			expectedStatus: http.StatusOK,
			expectedBody:   jsonString(t, routes[:2]),
		},
		{
			name:           "operator filter runs before de-duplication",
			query:          endpointsQuery("unique=pair&operator=pkp"),
			callService:    true,
			mockRoutes:     []models.MatchedRoute{regional, intercity},
			expectedStatus: http.StatusOK,
			expectedBody:   jsonString(t, []models.MatchedRoute{intercity}),
		},
		{
			name:           "no routes",
			query:          endpointsQuery(""),
			callService:    true,
			mockRoutes:     []models.MatchedRoute{},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name:           "remote failure",
			query:          endpointsQuery(""),
			callService:    true,
			mockError:      fmt.Errorf("service: %w", sparql.ErrRemote),
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"remote query failed: service: remote endpoint failure"}`,
		},
		{
			name:           "service error",
			query:          endpointsQuery(""),
			callService:    true,
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockJourneyService)
			handler := NewJourneyHandler(mockSvc)

			if tt.callService {
				mockSvc.On("FindCommonRoutes", mock.Anything, warsaw, krakow, tt.radius).Return(tt.mockRoutes, tt.mockError)
			}

			w := performRequest(http.MethodGet, "/api/v1/journeys/direct?"+tt.query, "", handler.Direct)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestJourneyHandler_DirectFormats(t *testing.T) {
	gin.SetMode(gin.TestMode)
	routes := []models.MatchedRoute{matchedRoute("R10", "A", "B", 2.0)}

	tests := []struct {
		name           string
		format         string
		expectedStatus int
		contentType    string
		check          func(t *testing.T, body string)
	}{
		{
			name:           "csv",
			format:         "csv",
			expectedStatus: http.StatusOK,
			contentType:    "text/csv; charset=utf-8",
			check: func(t *testing.T, body string) {
				lines := strings.Split(strings.TrimSpace(body), "\n")
				require.Len(t, lines, 2)
				assert.Equal(t, "Route,Route name,Operator,Start station,End station,Total walking distance (km)", lines[0])
				assert.Equal(t, "https://www.openstreetmap.org/relation/R10,R10,,A,B,2", lines[1])
			},
		},
		{
			name:           "yaml",
			format:         "yaml",
			expectedStatus: http.StatusOK,
			contentType:    "application/yaml; charset=utf-8",
			check: func(t *testing.T, body string) {
				assert.Contains(t, body, "route_name: R10")
			},
		},
		{
			name:           "geojson",
			format:         "geojson",
			expectedStatus: http.StatusOK,
			contentType:    "application/geo+json",
			check: func(t *testing.T, body string) {
				var fc map[string]any
				require.NoError(t, json.Unmarshal([]byte(body), &fc))
				assert.Equal(t, "FeatureCollection", fc["type"])
				assert.Len(t, fc["features"], 2)
			},
		},
		{
			name:           "unsupported",
			format:         "xml",
			expectedStatus: http.StatusBadRequest,
			contentType:    "application/json; charset=utf-8",
			check: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"error":"unsupported format 'xml'"}`, body)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockJourneyService)
			mockSvc.On("FindCommonRoutes", mock.Anything, warsaw, krakow, 0.0).Return(routes, nil)

			w := performRequest(http.MethodGet, "/api/v1/journeys/direct?"+endpointsQuery("format="+tt.format), "", NewJourneyHandler(mockSvc).Direct)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.contentType, w.Header().Get("Content-Type"))
			tt.check(t, w.Body.String())
		})
	}
}

func TestJourneyHandler_Transfer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	transfers := []models.TransferCandidate{
		{
			RouteA:      models.RouteCandidate{RouteName: "R1", Operator: "PKP", Station: models.StationHit{Name: "A"}},
			RouteB:      models.RouteCandidate{RouteName: "R2", Operator: "SKM", Station: models.StationHit{Name: "B"}},
			Interchange: models.StationHit{Name: "Junction"},
		},
		{
			RouteA:      models.RouteCandidate{RouteName: "R3", Operator: "KM"},
			RouteB:      models.RouteCandidate{RouteName: "R4", Operator: "KM"},
			Interchange: models.StationHit{Name: "Hub"},
		},
	}

	mockSvc := new(MockJourneyService)
	mockSvc.On("FindRoutesWithChange", mock.Anything, warsaw, krakow, 0.0, "").Return(transfers, nil)
	mockSvc.On("FindRoutesWithChange", mock.Anything, warsaw, krakow, 0.0, "skm").Return(transfers[:1], nil)
	handler := NewJourneyHandler(mockSvc)

	w := performRequest(http.MethodGet, "/api/v1/journeys/transfer?"+endpointsQuery(""), "", handler.Transfer)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, jsonString(t, transfers), w.Body.String())

	w = performRequest(http.MethodGet, "/api/v1/journeys/transfer?"+endpointsQuery("operator=skm"), "", handler.Transfer)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, jsonString(t, transfers[:1]), w.Body.String())
	mockSvc.AssertExpectations(t)
}

func TestJourneyHandler_Plan(t *testing.T) {
	gin.SetMode(gin.TestMode)

	journey := models.Journey{
		From:      warsaw,
		To:        krakow,
		RadiusKm:  2,
		Outcome:   models.OutcomeDirect,
		Direct:    []models.MatchedRoute{matchedRoute("R10", "A", "B", 2.0)},
		Transfers: []models.TransferCandidate{},
	}

	mockSvc := new(MockJourneyService)
	mockSvc.On("Plan", mock.Anything, service.PlanRequest{From: warsaw, To: krakow, RadiusKm: 2, Operator: "PKP"}).Return(journey, nil)

	w := performRequest(http.MethodGet, "/api/v1/journeys?"+endpointsQuery("radius=2&operator=PKP"), "", NewJourneyHandler(mockSvc).Plan)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, jsonString(t, journey), w.Body.String())
	mockSvc.AssertExpectations(t)
}

func TestJourneyHandler_RouteGeometry(t *testing.T) {
	gin.SetMode(gin.TestMode)
	route := "https://www.openstreetmap.org/relation/13249292"

	tests := []struct {
		name           string
		route          string
		mockWKT        string
		mockError      error
		expectedStatus int
		features       int
	}{
		{name: "missing route", expectedStatus: http.StatusBadRequest},
		{name: "line geometry", route: route, mockWKT: "LINESTRING(21 52,19.9 50)", expectedStatus: http.StatusOK, features: 1},
		{name: "malformed geometry is skipped", route: route, mockWKT: "LINESTRING(", expectedStatus: http.StatusOK, features: 0},
		{name: "unknown route", route: route, mockError: fmt.Errorf("service: %w", repository.ErrNotFound), expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockJourneyService)
			if tt.route != "" {
				mockSvc.On("RouteGeometry", mock.Anything, tt.route).Return(tt.mockWKT, tt.mockError)
			}

			target := "/api/v1/routes/geometry"
			if tt.route != "" {
				target += "?route=" + url.QueryEscape(tt.route)
			}
			w := performRequest(http.MethodGet, target, "", NewJourneyHandler(mockSvc).RouteGeometry)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var fc struct {
					Features []any `json:"features"`
				}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fc))
				assert.Len(t, fc.Features, tt.features)
			}
			mockSvc.AssertExpectations(t)
		})
	}
}
