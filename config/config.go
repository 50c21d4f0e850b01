package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port            string
	DBPath          string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	WeatherEndpoint string
	WeatherTimeoutS int
	RefreshMinutes  int
	RetentionDays   int
	DefaultLat      float64
	DefaultLon      float64
	DefaultCity     string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getInt := func(k string, def int) int {
		if n, err := strconv.Atoi(get(k, "")); err == nil {
			return n
		}
		return def
	}
	getFloat := func(k string, def float64) float64 {
		if f, err := strconv.ParseFloat(get(k, ""), 64); err == nil {
			return f
		}
		return def
	}
	cfg := AppConfig{
		Port:            get("PORT", "8080"),
		DBPath:          get("DB_PATH", "campo.db"),
		RedisAddr:       get("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   get("REDIS_PASSWORD", ""),
		RedisDB:         getInt("REDIS_DB", 0),
		WeatherEndpoint: get("WEATHER_ENDPOINT", "https://api.open-meteo.com/v1/forecast"),
		WeatherTimeoutS: getInt("WEATHER_TIMEOUT_S", 15),
		RefreshMinutes:  getInt("WEATHER_REFRESH_MIN", 15),
		RetentionDays:   getInt("MIRROR_RETENTION_DAYS", 30),
		DefaultLat:      getFloat("DEFAULT_LAT", -15.60),
		DefaultLon:      getFloat("DEFAULT_LON", -56.10),
		DefaultCity:     get("DEFAULT_CITY", "Cuiabá"),
	}
	log.Printf("[cfg] %+v", cfg)
	return cfg
}
