package service

import (
	"context"

	"campo/entities"
)

type WeatherService interface {
	// Get prefers live data, caching it on success. On a fetch failure it
	// falls back to the cached snapshot, but only when the caller has loaded
	// successfully before; otherwise, and when the cache is empty, it returns
	// (nil, nil) — absence, not an error.
	Get(ctx context.Context, lat, lon float64, city string, hasLoadedSuccessfully bool) (*entities.Weather, error)
}
