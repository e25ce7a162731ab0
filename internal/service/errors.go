package service

import "errors"

// Input errors returned before any remote call is made.
var (
	ErrEmptyRoute       = errors.New("service: route cannot be empty")
	ErrEmptyStationName = errors.New("service: station name cannot be empty")
	ErrNoAmenityKinds   = errors.New("service: at least one amenity kind is required")
)
