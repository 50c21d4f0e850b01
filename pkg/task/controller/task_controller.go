package controller

import "github.com/labstack/echo/v4"

type TaskController interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Patch(c echo.Context) error
	Delete(c echo.Context) error
	History(c echo.Context) error
	Watch(c echo.Context) error
	Export(c echo.Context) error
}
