// README: Weather adapter backed by the OpenWeatherMap current-conditions API.
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

const weatherEndpoint = "https://api.openweathermap.org/data/2.5/weather"

// WeatherClient fetches a one-line current-conditions summary for a pair of
// coordinates. Coordinates are a precondition: without them no call is made.
type WeatherClient struct {
	apiKey   string
	endpoint string
	http     *http.Client
}

// NewWeatherClient creates a WeatherClient. An empty apiKey returns an
// unconfigured adapter that reports no weather without making network calls.
func NewWeatherClient(apiKey string) *WeatherClient {
	return &WeatherClient{
		apiKey:   apiKey,
		endpoint: weatherEndpoint,
		http:     &http.Client{Timeout: 8 * time.Second},
	}
}

type weatherResponse struct {
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp      *float64 `json:"temp"`
		FeelsLike *float64 `json:"feels_like"`
	} `json:"main"`
}

// Current returns a short summary like "Current weather: clear sky, 21.3°C
// (feels like 20.1°C)", or nil when unconfigured, when coordinates are
// missing, or on any provider failure.
func (w *WeatherClient) Current(ctx context.Context, lat, lng *float64) *string {
	if w.apiKey == "" || lat == nil || lng == nil {
		return nil
	}

	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", *lat))
	q.Set("lon", fmt.Sprintf("%f", *lng))
	q.Set("appid", w.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil
	}
	resp, err := w.http.Do(req)
	if err != nil {
		log.Printf("Weather Error: %v", err)
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Printf("Weather Error: status %d", resp.StatusCode)
		return nil
	}

	var data weatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		log.Printf("Weather Error: %v", err)
		return nil
	}

	var desc string
	if len(data.Weather) > 0 {
		desc = data.Weather[0].Description
	}
	switch {
	case data.Main.Temp != nil && data.Main.FeelsLike != nil:
		s := fmt.Sprintf("Current weather: %s, %.1f°C (feels like %.1f°C)", desc, *data.Main.Temp, *data.Main.FeelsLike)
		return &s
	case desc != "":
		s := fmt.Sprintf("Current weather: %s", desc)
		return &s
	}
	return nil
}
