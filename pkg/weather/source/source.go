// pkg/weather/source/source.go

package source

import "context"

// Forecast mirrors the forecast endpoint's JSON: a current block plus
// parallel hourly arrays. Missing hourly arrays decode to empty slices.
type Forecast struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		Humidity    int     `json:"relative_humidity_2m"`
		WeatherCode int     `json:"weather_code"`
	} `json:"current"`
	Hourly struct {
		Time        []string  `json:"time"`
		Temperature []float64 `json:"temperature_2m"`
		WeatherCode []int     `json:"weather_code"`
		Humidity    []int     `json:"relative_humidity_2m"`
	} `json:"hourly"`
}

type Source interface {
	Fetch(ctx context.Context, lat, lon float64) (*Forecast, error)
}
