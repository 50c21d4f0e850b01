package entities

// WeatherCacheID is the fixed key of the singleton snapshot row. Every
// successful fetch overwrites it; hourly rows are replaced wholesale.
const WeatherCacheID uint = 1

type WeatherCache struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Temperature float64 `json:"temperature"`
	Humidity    int     `json:"humidity"`
	WeatherCode int     `json:"weather_code"`
}

type HourlyWeatherCache struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	CacheID     uint    `gorm:"index" json:"cache_id"`
	Time        string  `json:"time"`
	Temperature float64 `json:"temperature"`
	WeatherCode int     `json:"weather_code"`
	Humidity    int     `json:"humidity"`
	Description string  `json:"description"`
}

// Weather is the value handed to callers, live or from cache.
type Weather struct {
	City        string           `json:"city"`
	Latitude    float64          `json:"latitude"`
	Longitude   float64          `json:"longitude"`
	Temperature float64          `json:"temperature"`
	Humidity    int              `json:"humidity"`
	WeatherCode int              `json:"weather_code"`
	Description string           `json:"description"`
	IsFromCache bool             `json:"is_from_cache"`
	Hourly      []HourlyForecast `json:"hourly"`
}

type HourlyForecast struct {
	Time        string  `json:"time"`
	Temperature float64 `json:"temperature"`
	WeatherCode int     `json:"weather_code"`
	Humidity    int     `json:"humidity"`
	Description string  `json:"description"`
}

// DescribeWeatherCode maps WMO weather codes to display labels. The same
// table is used for live and cached values.
func DescribeWeatherCode(code int) string {
	switch code {
	case 0:
		return "Céu limpo"
	case 1, 2, 3:
		return "Parcialmente nublado"
	case 45, 48:
		return "Nevoeiro"
	case 51, 53, 55:
		return "Garoa"
	case 61, 63, 65:
		return "Chuva"
	case 80, 81, 82:
		return "Pancadas de chuva"
	default:
		return "Desconhecido"
	}
}
