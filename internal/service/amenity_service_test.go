package service

import (
	"context"
	"testing"

	"railway-planner/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAmenityRepository is a mock implementation of the AmenityRepository interface
type MockAmenityRepository struct {
	mock.Mock
}

func (m *MockAmenityRepository) AmenitiesNear(ctx context.Context, p models.Point, kinds []string, radiusKm float64) ([]models.Amenity, error) {
	args := m.Called(ctx, p, kinds, radiusKm)
	amenities, _ := args.Get(0).([]models.Amenity)
	return amenities, args.Error(1)
}

func TestAmenityService_Amenities(t *testing.T) {
	center := models.Point{Lat: 52.237049, Lon: 21.017532}

	t.Run("no kinds", func(t *testing.T) {
		svc := NewAmenityService(new(MockAmenityRepository), 2)
		_, err := svc.Amenities(context.Background(), center, nil, 1)
		assert.ErrorIs(t, err, ErrNoAmenityKinds)
	})

	t.Run("default radius", func(t *testing.T) {
		repo := new(MockAmenityRepository)
		svc := NewAmenityService(repo, 2)
		expected := []models.Amenity{{ID: "n1", Kind: "cafe", Name: "Unknown", Distance: 0.4}}
		repo.On("AmenitiesNear", mock.Anything, center, []string{"cafe"}, 2.0).Return(expected, nil)

		result, err := svc.Amenities(context.Background(), center, []string{"cafe"}, 0)
		require.NoError(t, err)
		assert.Equal(t, expected, result)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := new(MockAmenityRepository)
		svc := NewAmenityService(repo, 2)
		repo.On("AmenitiesNear", mock.Anything, center, []string{"taxi"}, 0.5).Return(nil, assert.AnError)

		_, err := svc.Amenities(context.Background(), center, []string{"taxi"}, 0.5)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
