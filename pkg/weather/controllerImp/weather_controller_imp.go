package controllerImp

import (
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/labstack/echo/v4"

	svc "campo/pkg/weather/service"
)

type WeatherCtrl struct {
	svc         svc.WeatherService
	defaultLat  float64
	defaultLon  float64
	defaultCity string
	// loaded remembers whether this caller ever got live data; the fallback
	// only engages after a first success.
	loaded atomic.Bool
}

func New(s svc.WeatherService, lat, lon float64, city string) *WeatherCtrl {
	return &WeatherCtrl{svc: s, defaultLat: lat, defaultLon: lon, defaultCity: city}
}

func (h *WeatherCtrl) Get(c echo.Context) error {
	lat, lon, city := h.defaultLat, h.defaultLon, h.defaultCity
	if v := c.QueryParam("lat"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			lat = p
		}
	}
	if v := c.QueryParam("lon"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			lon = p
		}
	}
	if v := c.QueryParam("city"); v != "" {
		city = v
	}

	w, err := h.svc.Get(c.Request().Context(), lat, lon, city, h.loaded.Load())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if w == nil {
		return c.NoContent(http.StatusNoContent)
	}
	if !w.IsFromCache {
		h.loaded.Store(true)
	}
	return c.JSON(http.StatusOK, w)
}
