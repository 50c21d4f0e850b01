package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"campo/pkg/mirror"
)

var appStart = time.Now()

type HealthCtrl struct {
	db *gorm.DB
	m  mirror.Client
}

func NewHealthCtrl(db *gorm.DB, m mirror.Client) *HealthCtrl { return &HealthCtrl{db: db, m: m} }

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbOK := true
	dbErr := ""
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil {
			dbOK = false
			dbErr = "db.DB(): " + err.Error()
		} else if err := sqlDB.PingContext(ctx); err != nil {
			dbOK = false
			dbErr = "ping: " + err.Error()
		}
	} else {
		dbOK = false
		dbErr = "gorm db is nil"
	}

	// The mirror is best-effort; report it but stay healthy without it.
	mirrorOK := true
	mirrorErr := ""
	if h.m != nil {
		if err := h.m.Ping(ctx); err != nil {
			mirrorOK = false
			mirrorErr = err.Error()
		}
	}

	allOK := dbOK
	status := http.StatusOK
	if !allOK {
		status = http.StatusServiceUnavailable
	}

	type sub struct {
		OK  bool   `json:"ok"`
		Err string `json:"err,omitempty"`
	}

	resp := map[string]any{
		"status":     map[string]any{"ok": allOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database": sub{OK: dbOK, Err: dbErr},
			"mirror":   sub{OK: mirrorOK, Err: mirrorErr},
		},
		"time": time.Now().Format(time.RFC3339),
	}

	return c.JSON(status, resp)
}
