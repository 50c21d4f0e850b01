package refresh

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"campo/pkg/mirror"
	svc "campo/pkg/weather/service"
)

// Job re-fetches weather on an interval so the cache stays warm, and runs the
// mirror retention purge once a day. Overlapping runs are harmless: each one
// falls back independently.
type Job struct {
	c         *cron.Cron
	weather   svc.WeatherService
	mirror    mirror.Client
	lat, lon  float64
	city      string
	every     time.Duration
	retention time.Duration
	loaded    atomic.Bool
}

func New(w svc.WeatherService, m mirror.Client, lat, lon float64, city string, every, retention time.Duration) *Job {
	return &Job{
		c:         cron.New(),
		weather:   w,
		mirror:    m,
		lat:       lat,
		lon:       lon,
		city:      city,
		every:     every,
		retention: retention,
	}
}

func (j *Job) Start() error {
	if _, err := j.c.AddFunc("@every "+j.every.String(), j.refreshWeather); err != nil {
		return err
	}
	if _, err := j.c.AddFunc("@daily", j.purgeMirror); err != nil {
		return err
	}
	j.c.Start()
	log.Printf("[refresh] weather every %s, mirror retention %s", j.every, j.retention)
	return nil
}

// Stop cancels the schedule and waits for in-flight runs to finish. No
// further invocations happen after it returns.
func (j *Job) Stop() {
	ctx := j.c.Stop()
	<-ctx.Done()
}

func (j *Job) refreshWeather() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	w, err := j.weather.Get(ctx, j.lat, j.lon, j.city, j.loaded.Load())
	if err != nil {
		log.Printf("[refresh] weather: %v", err)
		return
	}
	if w != nil && !w.IsFromCache {
		j.loaded.Store(true)
	}
}

func (j *Job) purgeMirror() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	n, err := j.mirror.PurgeDeleted(ctx, j.retention)
	if err != nil {
		log.Printf("[refresh] purge: %v", err)
		return
	}
	if n > 0 {
		log.Printf("[refresh] purged %d mirrored tasks past retention", n)
	}
}
