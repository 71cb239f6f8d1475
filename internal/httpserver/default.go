package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Skotchmaster/qa_api/internal/db"
	"github.com/Skotchmaster/qa_api/internal/logging"
)

const APIVersion = "1.0.0.0"

type DefaultHTTP struct {
	DB *gorm.DB
}

func (h *DefaultHTTP) Index(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "It works, welcome to QA API",
		"api_ver": APIVersion,
	})
}

func (h *DefaultHTTP) Live(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func (h *DefaultHTTP) Ready(c echo.Context) error {
	ctx := c.Request().Context()
	if err := db.Ping(ctx, h.DB); err != nil {
		logging.FromContext(ctx).Error("readiness_failed", "status", http.StatusServiceUnavailable, "error", err)
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "database unavailable"})
	}
	return c.NoContent(http.StatusOK)
}
