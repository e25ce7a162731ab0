package service

import (
	"context"
	"fmt"

	"railway-planner/internal/models"
)

// AmenityService finds amenities around a point
type AmenityService struct {
	repo          AmenityRepository
	defaultRadius float64
}

// AmenityRepository interface for dependency injection
type AmenityRepository interface {
	AmenitiesNear(ctx context.Context, p models.Point, kinds []string, radiusKm float64) ([]models.Amenity, error)
}

// NewAmenityService creates a new amenity service
func NewAmenityService(repo AmenityRepository, defaultRadius float64) *AmenityService {
	if defaultRadius <= 0 {
		defaultRadius = DefaultRadiusKm
	}
	return &AmenityService{repo: repo, defaultRadius: defaultRadius}
}

// Amenities returns amenities of the given kinds within radiusKm of p
func (s *AmenityService) Amenities(ctx context.Context, p models.Point, kinds []string, radiusKm float64) ([]models.Amenity, error) {
	if len(kinds) == 0 {
		return nil, ErrNoAmenityKinds
	}
	if radiusKm <= 0 {
		radiusKm = s.defaultRadius
	}

	amenities, err := s.repo.AmenitiesNear(ctx, p, kinds, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("service: failed to find amenities: %w", err)
	}

	return amenities, nil
}
