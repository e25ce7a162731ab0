package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"railway-planner/internal/models"

	"github.com/rs/zerolog/log"
)

// DefaultTransferCap bounds the number of transfer options collected per search.
const DefaultTransferCap = 15

// DefaultRadiusKm is used when a caller passes a non-positive radius.
const DefaultRadiusKm = 5.0

// RouteRepository interface for dependency injection
type RouteRepository interface {
	RoutesNearPoint(ctx context.Context, p models.Point, radiusKm float64) ([]models.RouteCandidate, error)
	Intersections(ctx context.Context, routeA, routeB string) ([]models.StationHit, error)
	RouteGeometry(ctx context.Context, route string) (string, error)
}

// HistoryRecorder persists planned journeys
type HistoryRecorder interface {
	SaveSearch(ctx context.Context, rec *models.SearchRecord) error
}

// JourneyOptions tunes a JourneyService. Zero values select the defaults.
type JourneyOptions struct {
	TransferCap   int
	DefaultRadius float64
}

// JourneyService matches rail routes between two points
type JourneyService struct {
	repo          RouteRepository
	history       HistoryRecorder
	transferCap   int
	defaultRadius float64
}

// NewJourneyService creates a new journey service. history may be nil.
func NewJourneyService(repo RouteRepository, history HistoryRecorder, opts JourneyOptions) *JourneyService {
	if opts.TransferCap <= 0 {
		opts.TransferCap = DefaultTransferCap
	}
	if opts.DefaultRadius <= 0 {
		opts.DefaultRadius = DefaultRadiusKm
	}
	return &JourneyService{
		repo:          repo,
		history:       history,
		transferCap:   opts.TransferCap,
		defaultRadius: opts.DefaultRadius,
	}
}

func (s *JourneyService) radius(r float64) float64 {
	if r <= 0 {
		return s.defaultRadius
	}
	return r
}

func (s *JourneyService) candidates(ctx context.Context, a, b models.Point, radius float64) ([]models.RouteCandidate, []models.RouteCandidate, error) {
	nearA, err := s.repo.RoutesNearPoint(ctx, a, radius)
	if err != nil {
		return nil, nil, fmt.Errorf("service: failed to find routes near origin: %w", err)
	}
	nearB, err := s.repo.RoutesNearPoint(ctx, b, radius)
	if err != nil {
		return nil, nil, fmt.Errorf("service: failed to find routes near destination: %w", err)
	}
	return nearA, nearB, nil
}

// FindCommonRoutes returns every route with a station near a and a differently
// named station near b, sorted by the summed walking distance.
func (s *JourneyService) FindCommonRoutes(ctx context.Context, a, b models.Point, radiusKm float64) ([]models.MatchedRoute, error) {
	nearA, nearB, err := s.candidates(ctx, a, b, s.radius(radiusKm))
	if err != nil {
		return nil, err
	}
	return matchCommonRoutes(nearA, nearB), nil
}

func matchCommonRoutes(nearA, nearB []models.RouteCandidate) []models.MatchedRoute {
	byRouteB := make(map[string][]models.RouteCandidate)
	for _, c := range nearB {
		byRouteB[c.RouteID] = append(byRouteB[c.RouteID], c)
	}

	var order []string
	byRouteA := make(map[string][]models.RouteCandidate)
	for _, c := range nearA {
		if _, seen := byRouteA[c.RouteID]; !seen {
			order = append(order, c.RouteID)
		}
		byRouteA[c.RouteID] = append(byRouteA[c.RouteID], c)
	}

	matched := []models.MatchedRoute{}
	for _, route := range order {
		stationsB, ok := byRouteB[route]
		if !ok {
			continue
		}
		for _, sa := range byRouteA[route] {
			for _, sb := range stationsB {
				if sa.Station.Name == sb.Station.Name {
					continue
				}
				matched = append(matched, models.MatchedRoute{
					RouteID:       route,
					RouteName:     sa.RouteName,
					Start:         sa.Station,
					End:           sb.Station,
					TotalDistance: round2(sa.Station.Distance + sb.Station.Distance),
					Operator:      sa.Operator,
				})
			}
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].TotalDistance < matched[j].TotalDistance
	})
	return matched
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FindRoutesWithChange pairs every route near a with every route near b and
// keeps the pairs sharing a station, stopping at the transfer cap. Pairs where
// neither leg matches operator are skipped before they count toward the cap.
func (s *JourneyService) FindRoutesWithChange(ctx context.Context, a, b models.Point, radiusKm float64, operator string) ([]models.TransferCandidate, error) {
	nearA, nearB, err := s.candidates(ctx, a, b, s.radius(radiusKm))
	if err != nil {
		return nil, err
	}

	type pair struct{ a, b string }
	interchanges := make(map[pair]*models.StationHit)

	transfers := []models.TransferCandidate{}
	for _, ra := range nearA {
		for _, rb := range nearB {
			if !transferMatches(ra, rb, operator) {
				continue
			}
			key := pair{ra.RouteID, rb.RouteID}
			hit, seen := interchanges[key]
			if !seen {
				stations, err := s.repo.Intersections(ctx, ra.RouteID, rb.RouteID)
				if err != nil {
					return nil, fmt.Errorf("service: failed to find interchange: %w", err)
				}
				if len(stations) > 0 {
					hit = &stations[0]
				}
				interchanges[key] = hit
			}
			if hit == nil {
				continue
			}

			transfers = append(transfers, models.TransferCandidate{
				RouteA:      ra,
				RouteB:      rb,
				Interchange: *hit,
			})
			if len(transfers) >= s.transferCap {
				return transfers, nil
			}
		}
	}

	return transfers, nil
}

// RouteGeometry returns the WKT geometry of a route
func (s *JourneyService) RouteGeometry(ctx context.Context, route string) (string, error) {
	if route == "" {
		return "", ErrEmptyRoute
	}
	wkt, err := s.repo.RouteGeometry(ctx, route)
	if err != nil {
		return "", fmt.Errorf("service: failed to get route geometry: %w", err)
	}
	return wkt, nil
}

// PlanRequest describes a journey search.
type PlanRequest struct {
	From     models.Point
	To       models.Point
	RadiusKm float64
	Operator string
}

// Plan looks for direct routes first and falls back to routes with one change.
func (s *JourneyService) Plan(ctx context.Context, req PlanRequest) (models.Journey, error) {
	radius := s.radius(req.RadiusKm)
	journey := models.Journey{
		From:      req.From,
		To:        req.To,
		RadiusKm:  radius,
		Outcome:   models.OutcomeNone,
		Direct:    []models.MatchedRoute{},
		Transfers: []models.TransferCandidate{},
	}

	direct, err := s.FindCommonRoutes(ctx, req.From, req.To, radius)
	if err != nil {
		return journey, err
	}
	direct = UniqueByStationPair(FilterRoutesByOperator(direct, req.Operator))

	if len(direct) > 0 {
		journey.Outcome = models.OutcomeDirect
		journey.Direct = direct
	} else {
		transfers, err := s.FindRoutesWithChange(ctx, req.From, req.To, radius, req.Operator)
		if err != nil {
			return journey, err
		}
		if len(transfers) > 0 {
			journey.Outcome = models.OutcomeTransfer
			journey.Transfers = transfers
		}
	}

	log.Info().
		Str("outcome", journey.Outcome).
		Int("direct", len(journey.Direct)).
		Int("transfers", len(journey.Transfers)).
		Float64("radius_km", radius).
		Msg("journey planned")

	s.record(ctx, journey)
	return journey, nil
}

func (s *JourneyService) record(ctx context.Context, j models.Journey) {
	if s.history == nil {
		return
	}
	rec := &models.SearchRecord{
		FromLat:     j.From.Lat,
		FromLon:     j.From.Lon,
		ToLat:       j.To.Lat,
		ToLon:       j.To.Lon,
		RadiusKm:    j.RadiusKm,
		Outcome:     j.Outcome,
		ResultCount: len(j.Direct) + len(j.Transfers),
	}
	if err := s.history.SaveSearch(ctx, rec); err != nil {
		log.Warn().Err(err).Msg("failed to record search history")
	}
}
