// README: Local-search adapters (events/hotels/restaurants) backed by SerpApi.
package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"
)

const serpEndpoint = "https://serpapi.com/search"

// Result caps keep enrichment payloads bounded.
const (
	maxEvents      = 5
	maxHotels      = 6
	maxRestaurants = 8
)

// SerpClient wraps the SerpApi Google Events / Hotels / Maps engines. Each
// lookup degrades to an empty slice on missing credentials or any provider
// failure; callers never see an error.
type SerpClient struct {
	apiKey   string
	endpoint string
	http     *http.Client
}

// NewSerpClient creates a SerpClient. An empty apiKey returns an unconfigured
// adapter whose lookups return empty without making network calls.
func NewSerpClient(apiKey string) *SerpClient {
	return &SerpClient{
		apiKey:   apiKey,
		endpoint: serpEndpoint,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *SerpClient) search(ctx context.Context, params url.Values) (map[string]json.RawMessage, error) {
	params.Set("api_key", s.apiKey)
	params.Set("hl", "en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	var data map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, err
	}
	return data, nil
}

// decodeList extracts a named list of objects from a SerpApi response,
// capped at limit entries.
func decodeList(data map[string]json.RawMessage, key string, limit int) []map[string]any {
	raw, ok := data[key]
	if !ok {
		return nil
	}
	var items []map[string]any
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}

func str(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func num(m map[string]any, key string) float64 {
	if v, ok := m[key].(float64); ok {
		return v
	}
	return 0
}

// Events returns up to 5 upcoming events for the destination.
func (s *SerpClient) Events(ctx context.Context, destination string) []map[string]any {
	if s.apiKey == "" {
		return []map[string]any{}
	}

	params := url.Values{}
	params.Set("engine", "google_events")
	params.Set("q", "Events in "+destination)

	data, err := s.search(ctx, params)
	if err != nil {
		log.Printf("Events Error: %v", err)
		return []map[string]any{}
	}

	events := []map[string]any{}
	for _, item := range decodeList(data, "events_results", maxEvents) {
		when := ""
		if date, ok := item["date"].(map[string]any); ok {
			when = str(date, "when")
		}
		address := ""
		if addrs, ok := item["address"].([]any); ok && len(addrs) > 0 {
			if a, ok := addrs[0].(string); ok {
				address = a
			}
		}
		events = append(events, map[string]any{
			"title":     str(item, "title"),
			"date":      when,
			"address":   address,
			"link":      str(item, "link"),
			"thumbnail": str(item, "thumbnail"),
		})
	}
	return events
}

// Hotels returns up to 6 hotel recommendations for the destination.
func (s *SerpClient) Hotels(ctx context.Context, destination string) []map[string]any {
	if s.apiKey == "" {
		return []map[string]any{}
	}

	params := url.Values{}
	params.Set("engine", "google_hotels")
	params.Set("q", "Hotels in "+destination)
	params.Set("currency", "INR")

	data, err := s.search(ctx, params)
	if err != nil {
		log.Printf("Hotels Error: %v", err)
		return []map[string]any{}
	}

	hotels := []map[string]any{}
	for _, item := range decodeList(data, "properties", maxHotels) {
		var price any = "N/A"
		if rate, ok := item["rate_per_night"].(map[string]any); ok {
			if v, ok := rate["extracted_lowest"]; ok {
				price = v
			}
		}
		image := ""
		if images, ok := item["images"].([]any); ok && len(images) > 0 {
			if first, ok := images[0].(map[string]any); ok {
				image = str(first, "thumbnail")
			}
		}
		hotels = append(hotels, map[string]any{
			"name":        str(item, "name"),
			"rating":      num(item, "overall_rating"),
			"price":       price,
			"image":       image,
			"link":        str(item, "link"),
			"description": str(item, "description"),
		})
	}
	return hotels
}

// Restaurants returns up to 8 restaurant and street-food picks for the
// destination.
func (s *SerpClient) Restaurants(ctx context.Context, destination string) []map[string]any {
	if s.apiKey == "" {
		return []map[string]any{}
	}

	params := url.Values{}
	params.Set("engine", "google_maps")
	params.Set("q", "restaurants and street food in "+destination)
	params.Set("type", "search")

	data, err := s.search(ctx, params)
	if err != nil {
		log.Printf("Restaurants Error: %v", err)
		return []map[string]any{}
	}

	restaurants := []map[string]any{}
	for _, item := range decodeList(data, "local_results", maxRestaurants) {
		placeType := str(item, "type")
		if placeType == "" {
			placeType = "Restaurant"
		}
		restaurants = append(restaurants, map[string]any{
			"name":      str(item, "title"),
			"rating":    num(item, "rating"),
			"reviews":   num(item, "reviews"),
			"price":     str(item, "price"),
			"type":      placeType,
			"address":   str(item, "address"),
			"thumbnail": str(item, "thumbnail"),
			"link":      str(item, "link"),
		})
	}
	return restaurants
}
