// Package session keeps the per-user planning context: the selected points,
// active filters and the last search results.
package session

import (
	"errors"
	"slices"
	"sync"
	"time"

	"railway-planner/internal/models"

	"github.com/google/uuid"
)

// State is the position of a session in the planning flow.
type State string

// Planning states. RoutesReady resolves to one of the three *Found states.
const (
	NoPoints            State = "no_points"
	OnePointSelected    State = "one_point_selected"
	TwoPointsSelected   State = "two_points_selected"
	DirectRoutesFound   State = "direct_routes_found"
	TransferRoutesFound State = "transfer_routes_found"
	NoRoutesFound       State = "no_routes_found"
)

var (
	ErrNotFound      = errors.New("session: not found")
	ErrTooManyPoints = errors.New("session: only two points can be selected, clear the points to reset")
	ErrNeedTwoPoints = errors.New("session: select two points before searching")
	ErrNoPoints      = errors.New("session: select a point first")
	ErrNoResults     = errors.New("session: no search has completed for the selected points")
)

// Filters narrow a search.
type Filters struct {
	RadiusKm  float64  `json:"radius_km"`
	Amenities []string `json:"amenities"`
	Operator  string   `json:"operator"`
}

// Session is a snapshot of one user's planning context.
type Session struct {
	ID        string                     `json:"id"`
	State     State                      `json:"state"`
	Points    []models.Point             `json:"points"`
	Filters   Filters                    `json:"filters"`
	Direct    []models.MatchedRoute      `json:"direct"`
	Transfers []models.TransferCandidate `json:"transfers"`
	// SearchRadiusKm is the radius the current results were found with.
	SearchRadiusKm float64   `json:"search_radius_km,omitempty"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// RoutesReady reports whether a search has completed for the current points.
func (s *Session) RoutesReady() bool {
	switch s.State {
	case DirectRoutesFound, TransferRoutesFound, NoRoutesFound:
		return true
	}
	return false
}

// AddPoint selects another point. A third point is rejected.
func (s *Session) AddPoint(p models.Point) error {
	if len(s.Points) >= 2 {
		return ErrTooManyPoints
	}
	s.Points = append(slices.Clip(s.Points), p)
	s.Direct, s.Transfers = nil, nil
	s.SearchRadiusKm = 0
	if len(s.Points) == 1 {
		s.State = OnePointSelected
	} else {
		s.State = TwoPointsSelected
	}
	return nil
}

// ClearPoints drops the selection and any results.
func (s *Session) ClearPoints() {
	s.Points = nil
	s.Direct, s.Transfers = nil, nil
	s.SearchRadiusKm = 0
	s.State = NoPoints
}

// SetFilters replaces the active filters. Results of a previous search are
// kept until the next search.
func (s *Session) SetFilters(f Filters) {
	f.Amenities = slices.Clone(f.Amenities)
	s.Filters = f
}

// Endpoints returns the two selected points.
func (s *Session) Endpoints() (from, to models.Point, err error) {
	if len(s.Points) != 2 {
		return from, to, ErrNeedTwoPoints
	}
	return s.Points[0], s.Points[1], nil
}

// ApplyJourney stores the results of a search and moves to the matching state.
// It fails if the journey no longer matches the selected points.
func (s *Session) ApplyJourney(j models.Journey) error {
	from, to, err := s.Endpoints()
	if err != nil {
		return err
	}
	if from != j.From || to != j.To {
		return ErrNeedTwoPoints
	}

	s.Direct, s.Transfers = j.Direct, j.Transfers
	s.SearchRadiusKm = j.RadiusKm
	switch j.Outcome {
	case models.OutcomeDirect:
		s.State = DirectRoutesFound
	case models.OutcomeTransfer:
		s.State = TransferRoutesFound
	default:
		s.State = NoRoutesFound
	}
	return nil
}

// Journey rebuilds the last search result. It fails until a search has
// completed for the selected points.
func (s *Session) Journey() (models.Journey, error) {
	if !s.RoutesReady() {
		return models.Journey{}, ErrNoResults
	}
	j := models.Journey{
		From:      s.Points[0],
		To:        s.Points[1],
		RadiusKm:  s.SearchRadiusKm,
		Outcome:   models.OutcomeNone,
		Direct:    slices.Clone(s.Direct),
		Transfers: slices.Clone(s.Transfers),
	}
	if j.Direct == nil {
		j.Direct = []models.MatchedRoute{}
	}
	if j.Transfers == nil {
		j.Transfers = []models.TransferCandidate{}
	}
	switch s.State {
	case DirectRoutesFound:
		j.Outcome = models.OutcomeDirect
	case TransferRoutesFound:
		j.Outcome = models.OutcomeTransfer
	}
	return j, nil
}

func (s *Session) clone() Session {
	c := *s
	c.Points = slices.Clone(s.Points)
	c.Filters.Amenities = slices.Clone(s.Filters.Amenities)
	c.Direct = slices.Clone(s.Direct)
	c.Transfers = slices.Clone(s.Transfers)
	return c
}

// Store holds sessions in memory. It is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session), now: time.Now}
}

// Create starts a session with the given default filters.
func (st *Store) Create(defaults Filters) Session {
	s := &Session{
		ID:        uuid.NewString(),
		State:     NoPoints,
		UpdatedAt: st.now(),
	}
	s.SetFilters(defaults)

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()

	return s.clone()
}

// Get returns a snapshot of the session.
func (st *Store) Get(id string) (Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	s, ok := st.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	return s.clone(), nil
}

// Update applies fn to the session under the store lock. Changes made by a
// failing fn are discarded.
func (st *Store) Update(id string, fn func(*Session) error) (Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}

	working := s.clone()
	if err := fn(&working); err != nil {
		return s.clone(), err
	}
	working.UpdatedAt = st.now()
	*s = working
	return s.clone(), nil
}

// Delete removes the session.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

// Len returns the number of sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
