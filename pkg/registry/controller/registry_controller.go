package controller

import "github.com/labstack/echo/v4"

type RegistryController interface {
	Create(c echo.Context) error
	List(c echo.Context) error
	Watch(c echo.Context) error
}
