package routing

import (
	"context"
	"fmt"

	"vtcquote/internal/pkg/config"
	"vtcquote/internal/pkg/errs"

	"googlemaps.github.io/maps"
)

// GoogleProvider resolves routes through the Google Directions API,
// driving mode.
type GoogleProvider struct {
	client   *maps.Client
	region   string
	language string
}

func NewGoogleProvider(cfg config.MapsConfig) (*GoogleProvider, error) {
	client, err := maps.NewClient(maps.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, errs.Wrap(err, "failed to create maps client")
	}
	return &GoogleProvider{
		client:   client,
		region:   cfg.Region,
		language: cfg.Language,
	}, nil
}

func (p *GoogleProvider) Route(ctx context.Context, origin, destination LatLng) (Estimate, error) {
	req := &maps.DirectionsRequest{
		Origin:      fmt.Sprintf("%f,%f", origin.Lat, origin.Lng),
		Destination: fmt.Sprintf("%f,%f", destination.Lat, destination.Lng),
		Mode:        maps.TravelModeDriving,
		Region:      p.region,
		Language:    p.language,
	}

	routes, _, err := p.client.Directions(ctx, req)
	if err != nil {
		return Estimate{}, errs.Mark(err, ErrProviderFailed)
	}

	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return Estimate{}, ErrNoRouteFound
	}

	leg := routes[0].Legs[0]
	return Estimate{
		DistanceKm:  float64(leg.Distance.Meters) / 1000.0,
		DurationMin: int(leg.Duration.Minutes() + 0.5),
	}, nil
}
