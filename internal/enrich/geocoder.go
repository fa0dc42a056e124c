// README: Geocoding adapter backed by the Google Maps Geocoding API.
package enrich

import (
	"context"
	"fmt"
	"log"

	"googlemaps.github.io/maps"
)

// Geocoder resolves a destination name to coordinates. Like every enrichment
// adapter it never fails its caller: missing credentials or provider errors
// yield nil coordinates.
type Geocoder struct {
	client *maps.Client
}

// NewGeocoder creates a Geocoder. An empty apiKey returns an unconfigured
// adapter that resolves nothing without making network calls.
func NewGeocoder(apiKey string) (*Geocoder, error) {
	if apiKey == "" {
		return &Geocoder{}, nil
	}
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &Geocoder{client: client}, nil
}

// Geocode returns (latitude, longitude) for the best match, or (nil, nil)
// when unconfigured, on provider error, or when nothing matches.
func (g *Geocoder) Geocode(ctx context.Context, destination string) (lat, lng *float64) {
	if g.client == nil || destination == "" {
		return nil, nil
	}

	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: destination})
	if err != nil {
		log.Printf("Geocode Error: %v", err)
		return nil, nil
	}
	if len(results) == 0 {
		return nil, nil
	}

	loc := results[0].Geometry.Location
	return &loc.Lat, &loc.Lng
}
