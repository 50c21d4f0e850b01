package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	regCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Watch(echo.Context) error
	},
	taskCtrl interface {
		List(echo.Context) error
		Get(echo.Context) error
		Patch(echo.Context) error
		Delete(echo.Context) error
		History(echo.Context) error
		Watch(echo.Context) error
		Export(echo.Context) error
	},
	weatherCtrl interface{ Get(echo.Context) error },
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	e.POST("/registries", regCtrl.Create)
	e.GET("/registries", regCtrl.List)
	e.GET("/registries/watch", regCtrl.Watch)

	e.GET("/tasks", taskCtrl.List)
	e.GET("/tasks/watch", taskCtrl.Watch)
	e.GET("/tasks/export", taskCtrl.Export)
	e.GET("/tasks/:id", taskCtrl.Get)
	e.PATCH("/tasks/:id", taskCtrl.Patch)
	e.DELETE("/tasks/:id", taskCtrl.Delete)
	e.GET("/tasks/:id/history", taskCtrl.History)

	e.GET("/weather", weatherCtrl.Get)
	return e
}
