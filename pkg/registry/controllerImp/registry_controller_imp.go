package controllerImp

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"campo/entities"
	svc "campo/pkg/registry/service"
)

type RegistryCtrl struct{ svc svc.RegistryService }

func New(s svc.RegistryService) *RegistryCtrl { return &RegistryCtrl{svc: s} }

type registryReq struct {
	Type         string `json:"type"`
	Area         string `json:"area"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Observations string `json:"observations"`
}

func (h *RegistryCtrl) Create(c echo.Context) error {
	var req registryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	reg := &entities.TaskRegistry{
		Type:         req.Type,
		Area:         req.Area,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Observations: req.Observations,
	}
	task, msgs, err := h.svc.Register(c.Request().Context(), reg)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if len(msgs) > 0 {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{"errors": msgs})
	}
	return c.JSON(http.StatusCreated, map[string]any{"registry": reg, "task": task})
}

func (h *RegistryCtrl) List(c echo.Context) error {
	out, err := h.svc.All()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

// Watch streams the live registry list as server-sent events: one event per
// change, each carrying the full current list.
func (h *RegistryCtrl) Watch(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, "text/event-stream")
	c.Response().Header().Set("Cache-Control", "no-cache")
	c.Response().WriteHeader(http.StatusOK)

	ctx := c.Request().Context()
	for regs := range h.svc.Watch(ctx) {
		b, err := json.Marshal(regs)
		if err != nil {
			continue
		}
		if _, err := fmt.Fprintf(c.Response(), "data: %s\n\n", b); err != nil {
			return nil
		}
		c.Response().Flush()
	}
	return nil
}
