package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/qa_api/internal/logging"
	"github.com/Skotchmaster/qa_api/internal/service"
	"github.com/Skotchmaster/qa_api/internal/transport"
)

type UserHTTP struct {
	Svc *service.UserService
}

func (h *UserHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.list")

	users, err := h.Svc.List(ctx)
	if err != nil {
		return fail(l, "list_users", err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *UserHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.get")

	user, err := h.Svc.Get(ctx, c.Param("ref"))
	if err != nil {
		return fail(l, "get_user", err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.create")

	var req transport.UserRequest
	if err := bind(c, l, "create_user", &req); err != nil {
		return err
	}

	user, err := h.Svc.Create(ctx, req)
	if err != nil {
		return fail(l, "create_user", err)
	}

	l.Info("create_user_success", "id", user.ID)
	return c.JSON(http.StatusCreated, user)
}

func (h *UserHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.update")

	id, err := idParam(c, l, "update_user", "id")
	if err != nil {
		return err
	}
	var req transport.UserRequest
	if err := bind(c, l, "update_user", &req); err != nil {
		return err
	}

	user, err := h.Svc.Update(ctx, id, req)
	if err != nil {
		return fail(l, "update_user", err)
	}

	l.Info("update_user_success", "id", user.ID)
	return c.JSON(http.StatusOK, user)
}

func (h *UserHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.delete")

	user, err := h.Svc.Delete(ctx, c.Param("ref"))
	if err != nil {
		return fail(l, "delete_user", err)
	}

	l.Info("delete_user_success", "id", user.ID)
	return c.JSON(http.StatusOK, user)
}
