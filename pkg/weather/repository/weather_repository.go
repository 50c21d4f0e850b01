package repository

import "campo/entities"

type WeatherRepository interface {
	// GetCache returns the singleton snapshot row with its hourly children,
	// or (nil, nil, nil) when nothing has been cached yet.
	GetCache() (*entities.WeatherCache, []entities.HourlyWeatherCache, error)
	// SaveCurrent overwrites the singleton row.
	SaveCurrent(w *entities.WeatherCache) error
	// SaveHourly replaces the full hourly set.
	SaveHourly(rows []entities.HourlyWeatherCache) error
}
