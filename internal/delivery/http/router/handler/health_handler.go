package handler

import (
	"log/slog"
	"net/http"

	"planotes/internal/delivery/http/response"
	"planotes/internal/domain/service"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthHandler reports whether the service and its dependencies are up.
type HealthHandler struct {
	db     *gorm.DB
	mailer service.Mailer
	logger *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler, injected by Fx.
func NewHealthHandler(db *gorm.DB, mailer service.Mailer, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{db: db, mailer: mailer, logger: logger}
}

// Check pings the database and the mail transport.
func (h *HealthHandler) Check(c echo.Context) error {
	ctx := c.Request().Context()

	checks := map[string]string{
		"database": "ok",
		"mailer":   "ok",
	}
	healthy := true

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "database health check failed", slog.Any("error", err))
		checks["database"] = "unreachable"
		healthy = false
	}

	if err := h.mailer.Ping(ctx); err != nil {
		h.logger.ErrorContext(ctx, "mailer health check failed", slog.Any("error", err))
		checks["mailer"] = "unreachable"
		healthy = false
	}

	if !healthy {
		return response.Error(c, http.StatusServiceUnavailable, "UNHEALTHY", "Service is unhealthy", "")
	}

	return response.Success(c, http.StatusOK, checks, "Service is healthy")
}
