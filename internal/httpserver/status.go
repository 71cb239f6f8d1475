package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/qa_api/internal/logging"
	"github.com/Skotchmaster/qa_api/internal/service"
)

type StatusHTTP struct {
	Svc *service.StatusService
}

func (h *StatusHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "status.list")

	statuses, err := h.Svc.List(ctx)
	if err != nil {
		return fail(l, "list_statuses", err)
	}
	return c.JSON(http.StatusOK, statuses)
}

func (h *StatusHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "status.get")

	id, err := idParam(c, l, "get_status", "id")
	if err != nil {
		return err
	}
	status, err := h.Svc.Get(ctx, id)
	if err != nil {
		return fail(l, "get_status", err)
	}
	return c.JSON(http.StatusOK, status)
}
