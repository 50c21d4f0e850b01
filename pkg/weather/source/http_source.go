// pkg/weather/source/http_source.go

package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

type httpSource struct {
	endpoint string
	client   *http.Client
}

// NewHTTP returns a Source against an Open-Meteo style forecast endpoint.
func NewHTTP(endpoint string, timeout time.Duration) Source {
	return &httpSource{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func (s *httpSource) Fetch(ctx context.Context, lat, lon float64) (*Forecast, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%g", lat))
	q.Set("longitude", fmt.Sprintf("%g", lon))
	q.Set("current", "temperature_2m,relative_humidity_2m,weather_code")
	q.Set("hourly", "temperature_2m,relative_humidity_2m,weather_code")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("[weather] fetch: %v", err)
		return nil, fmt.Errorf("failed to call API")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[weather] read body: %v", err)
		return nil, fmt.Errorf("failed to read response")
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("[weather] API returned non-200 status: %d, body: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("weather API error")
	}

	var f Forecast
	if err := json.Unmarshal(body, &f); err != nil {
		log.Printf("[weather] unmarshal: %v", err)
		return nil, fmt.Errorf("failed to parse JSON")
	}
	return &f, nil
}
