package service

import (
	"context"
	"fmt"
	"strings"

	"railway-planner/internal/models"
)

// StationService looks up station metadata in the knowledge graph
type StationService struct {
	repo StationRepository
}

// StationRepository interface for dependency injection
type StationRepository interface {
	StationDetails(ctx context.Context, name string) ([]models.StationDetails, error)
}

// NewStationService creates a new station service
func NewStationService(repo StationRepository) *StationService {
	return &StationService{repo: repo}
}

// StationDetails returns metadata for stations whose label contains name
func (s *StationService) StationDetails(ctx context.Context, name string) ([]models.StationDetails, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyStationName
	}

	details, err := s.repo.StationDetails(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get station details: %w", err)
	}

	return details, nil
}
