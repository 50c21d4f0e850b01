package serviceImp

import (
	"context"
	"log"

	"campo/entities"
	repo "campo/pkg/weather/repository"
	"campo/pkg/weather/service"
	"campo/pkg/weather/source"
)

type weatherSvc struct {
	src source.Source
	r   repo.WeatherRepository
}

func New(src source.Source, r repo.WeatherRepository) service.WeatherService {
	return &weatherSvc{src: src, r: r}
}

func (s *weatherSvc) Get(ctx context.Context, lat, lon float64, city string, hasLoadedSuccessfully bool) (*entities.Weather, error) {
	f, err := s.src.Fetch(ctx, lat, lon)
	if err != nil {
		log.Printf("[weather] live fetch failed: %v", err)
		if !hasLoadedSuccessfully {
			// Never succeeded before: nothing meaningful to fall back to.
			return nil, nil
		}
		return s.fromCache(lat, lon, city), nil
	}

	cur := &entities.WeatherCache{
		Temperature: f.Current.Temperature,
		Humidity:    f.Current.Humidity,
		WeatherCode: f.Current.WeatherCode,
	}
	hourly := hourlyRows(f)
	if err := s.r.SaveCurrent(cur); err != nil {
		return nil, err
	}
	if err := s.r.SaveHourly(hourly); err != nil {
		return nil, err
	}

	w := &entities.Weather{
		City:        city,
		Latitude:    lat,
		Longitude:   lon,
		Temperature: f.Current.Temperature,
		Humidity:    f.Current.Humidity,
		WeatherCode: f.Current.WeatherCode,
		Description: entities.DescribeWeatherCode(f.Current.WeatherCode),
		IsFromCache: false,
	}
	for _, h := range hourly {
		w.Hourly = append(w.Hourly, entities.HourlyForecast{
			Time:        h.Time,
			Temperature: h.Temperature,
			WeatherCode: h.WeatherCode,
			Humidity:    h.Humidity,
			Description: h.Description,
		})
	}
	return w, nil
}

func (s *weatherSvc) fromCache(lat, lon float64, city string) *entities.Weather {
	cur, hourly, err := s.r.GetCache()
	if err != nil {
		log.Printf("[weather] cache read failed: %v", err)
		return nil
	}
	if cur == nil {
		return nil
	}
	w := &entities.Weather{
		City:        city,
		Latitude:    lat,
		Longitude:   lon,
		Temperature: cur.Temperature,
		Humidity:    cur.Humidity,
		WeatherCode: cur.WeatherCode,
		Description: entities.DescribeWeatherCode(cur.WeatherCode),
		IsFromCache: true,
	}
	for _, h := range hourly {
		w.Hourly = append(w.Hourly, entities.HourlyForecast{
			Time:        h.Time,
			Temperature: h.Temperature,
			WeatherCode: h.WeatherCode,
			Humidity:    h.Humidity,
			Description: h.Description,
		})
	}
	return w
}

// hourlyRows zips the parallel hourly arrays, stopping at the shortest so a
// truncated response never indexes out of range.
func hourlyRows(f *source.Forecast) []entities.HourlyWeatherCache {
	n := len(f.Hourly.Time)
	if len(f.Hourly.Temperature) < n {
		n = len(f.Hourly.Temperature)
	}
	if len(f.Hourly.WeatherCode) < n {
		n = len(f.Hourly.WeatherCode)
	}
	if len(f.Hourly.Humidity) < n {
		n = len(f.Hourly.Humidity)
	}
	rows := make([]entities.HourlyWeatherCache, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, entities.HourlyWeatherCache{
			CacheID:     entities.WeatherCacheID,
			Time:        f.Hourly.Time[i],
			Temperature: f.Hourly.Temperature[i],
			WeatherCode: f.Hourly.WeatherCode[i],
			Humidity:    f.Hourly.Humidity[i],
			Description: entities.DescribeWeatherCode(f.Hourly.WeatherCode[i]),
		})
	}
	return rows
}
