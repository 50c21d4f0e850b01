package controllerImp

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"campo/entities"
	"campo/pkg/export"
	svc "campo/pkg/task/service"
)

type TaskCtrl struct{ svc svc.TaskService }

func New(s svc.TaskService) *TaskCtrl { return &TaskCtrl{svc: s} }

func (h *TaskCtrl) List(c echo.Context) error {
	out, err := h.svc.All()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TaskCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	t, err := h.svc.Get(uint(id))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if t == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "task not found"})
	}
	return c.JSON(http.StatusOK, t)
}

type taskPatch struct {
	Name          *string `json:"name"`
	Area          *string `json:"area"`
	ScheduledTime *string `json:"scheduled_time"`
	EndTime       *string `json:"end_time"`
	Observations  *string `json:"observations"`
	Status        *string `json:"status"`
}

func (h *TaskCtrl) Patch(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	t, err := h.svc.Get(uint(id))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if t == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "task not found"})
	}
	var body taskPatch
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if body.Name != nil {
		t.Name = *body.Name
	}
	if body.Area != nil {
		t.Area = *body.Area
	}
	if body.ScheduledTime != nil {
		t.ScheduledTime = *body.ScheduledTime
	}
	if body.EndTime != nil {
		t.EndTime = *body.EndTime
	}
	if body.Observations != nil {
		t.Observations = *body.Observations
	}
	if body.Status != nil {
		t.Status = entities.TaskStatus(*body.Status)
	}
	if err := h.svc.Update(c.Request().Context(), t); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, t)
}

func (h *TaskCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	t, err := h.svc.Get(uint(id))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if t != nil {
		h.svc.Delete(c.Request().Context(), t)
	}
	if err := h.svc.DeleteLocal(uint(id)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *TaskCtrl) History(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	hist, err := h.svc.History(c.Request().Context(), uint(id))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if hist == nil {
		hist = []entities.HistoryEntry{}
	}
	return c.JSON(http.StatusOK, hist)
}

// Watch streams the live task list as server-sent events: one event per
// change, each carrying the full current list.
func (h *TaskCtrl) Watch(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, "text/event-stream")
	c.Response().Header().Set("Cache-Control", "no-cache")
	c.Response().WriteHeader(http.StatusOK)

	ctx := c.Request().Context()
	for ts := range h.svc.Watch(ctx) {
		b, err := json.Marshal(ts)
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

func (h *TaskCtrl) Export(c echo.Context) error {
	ts, err := h.svc.All()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	f, err := export.TasksXLSX(ts)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="tarefas.xlsx"`)
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response())
}
