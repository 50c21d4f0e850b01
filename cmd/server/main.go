package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"campo/config"
	"campo/database"
	"campo/router"

	// Registry
	regCtrlImp "campo/pkg/registry/controllerImp"
	regRepoImp "campo/pkg/registry/repositoryImp"
	regSvcImp "campo/pkg/registry/serviceImp"

	// Task
	taskCtrlImp "campo/pkg/task/controllerImp"
	taskRepoImp "campo/pkg/task/repositoryImp"
	taskSvcImp "campo/pkg/task/serviceImp"

	// Weather
	weatherCtrlImp "campo/pkg/weather/controllerImp"
	weatherRepoImp "campo/pkg/weather/repositoryImp"
	weatherSvcImp "campo/pkg/weather/serviceImp"
	"campo/pkg/weather/source"

	// Mirror + jobs
	"campo/pkg/mirror"
	"campo/pkg/refresh"

	// Health
	healthCtrlImp "campo/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + migrations
	db := database.OpenSQLite(cfg.DBPath)
	notifier := database.NewNotifier()

	// 3) Remote mirror. Unreachable redis is not fatal: every mirror call is
	// best-effort and the app keeps working offline.
	m := mirror.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	{
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := m.Ping(ctx); err != nil {
			log.Printf("WARN: mirror unreachable, running offline: %v", err)
		}
		cancel()
	}

	// 4) Repos/services
	taskRepo := taskRepoImp.New(db, notifier)
	regRepo := regRepoImp.New(db, notifier)
	weatherRepo := weatherRepoImp.New(db)

	src := source.NewHTTP(cfg.WeatherEndpoint, time.Duration(cfg.WeatherTimeoutS)*time.Second)
	weatherSvc := weatherSvcImp.New(src, weatherRepo)
	taskSvc := taskSvcImp.New(taskRepo, m)
	regSvc := regSvcImp.New(regRepo, taskRepo, m)

	// 5) Background refresh: weather cache warmer + mirror retention purge
	job := refresh.New(
		weatherSvc, m,
		cfg.DefaultLat, cfg.DefaultLon, cfg.DefaultCity,
		time.Duration(cfg.RefreshMinutes)*time.Minute,
		time.Duration(cfg.RetentionDays)*24*time.Hour,
	)
	if err := job.Start(); err != nil {
		log.Fatalf("start refresh job: %v", err)
	}

	// 6) Controllers
	regCtrl := regCtrlImp.New(regSvc)
	taskCtrl := taskCtrlImp.New(taskSvc)
	weatherCtrl := weatherCtrlImp.New(weatherSvc, cfg.DefaultLat, cfg.DefaultLon, cfg.DefaultCity)
	hCtrl := healthCtrlImp.NewHealthCtrl(db, m)

	// 7) Echo + router
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	r := router.New(e, regCtrl, taskCtrl, weatherCtrl, hCtrl)

	// 8) Start. log.Fatal skips deferred calls, so stop the job before exiting.
	err := r.Start(":" + cfg.Port)
	job.Stop()
	log.Fatal(err)
}
