package routing

import (
	"context"
	"errors"
)

var (
	ErrNoRouteFound   = errors.New("no route found between points")
	ErrProviderFailed = errors.New("routing provider request failed")
)

type LatLng struct {
	Lat float64
	Lng float64
}

// Estimate is what the pricing flow needs from a routing lookup.
type Estimate struct {
	DistanceKm  float64 `json:"distance_km"`
	DurationMin int     `json:"duration_min"`
}

// Provider resolves driving distance and duration between two points.
// Failures are advisory for the caller: pricing must not run until a route
// is resolved.
type Provider interface {
	Route(ctx context.Context, origin, destination LatLng) (Estimate, error)
}
