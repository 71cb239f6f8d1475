package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/qa_api/internal/logging"
	"github.com/Skotchmaster/qa_api/internal/service"
	"github.com/Skotchmaster/qa_api/internal/transport"
)

type TransactionHTTP struct {
	Svc *service.TransactionService
}

func (h *TransactionHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "transaction.list")

	txs, err := h.Svc.List(ctx)
	if err != nil {
		return fail(l, "list_transactions", err)
	}
	return c.JSON(http.StatusOK, transport.NewTransactionViews(txs))
}

func (h *TransactionHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "transaction.get")

	id, err := idParam(c, l, "get_transaction", "id")
	if err != nil {
		return err
	}
	tx, err := h.Svc.Get(ctx, id)
	if err != nil {
		return fail(l, "get_transaction", err)
	}
	return c.JSON(http.StatusOK, transport.NewTransactionView(*tx))
}

func (h *TransactionHTTP) ListByUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "transaction.list_by_user")

	userID, err := idParam(c, l, "list_user_transactions", "id")
	if err != nil {
		return err
	}
	txs, err := h.Svc.ListByUser(ctx, userID)
	if err != nil {
		return fail(l, "list_user_transactions", err)
	}
	return c.JSON(http.StatusOK, transport.NewTransactionViews(txs))
}

func (h *TransactionHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "transaction.create")

	var req transport.CreateTransactionRequest
	if err := bind(c, l, "create_transaction", &req); err != nil {
		return err
	}

	tx, err := h.Svc.Create(ctx, req)
	if err != nil {
		return fail(l, "create_transaction", err)
	}

	l.Info("create_transaction_success", "id", tx.ID, "total", tx.Total)
	return c.JSON(http.StatusCreated, transport.NewTransactionView(*tx))
}

func (h *TransactionHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "transaction.update")

	var req transport.UpdateTransactionRequest
	if err := bind(c, l, "update_transaction", &req); err != nil {
		return err
	}

	tx, err := h.Svc.Update(ctx, req)
	if err != nil {
		return fail(l, "update_transaction", err)
	}

	l.Info("update_transaction_success", "id", tx.ID)
	return c.JSON(http.StatusOK, transport.NewTransactionView(*tx))
}

func (h *TransactionHTTP) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "transaction.update_status")

	var req transport.TransactionStatusRequest
	if err := bind(c, l, "update_transaction_status", &req); err != nil {
		return err
	}

	tx, err := h.Svc.UpdateStatus(ctx, req)
	if err != nil {
		return fail(l, "update_transaction_status", err)
	}

	l.Info("update_transaction_status_success", "id", tx.ID, "status", tx.Status.Name)
	return c.JSON(http.StatusOK, transport.NewTransactionView(*tx))
}

func (h *TransactionHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "transaction.delete")

	id, err := idParam(c, l, "delete_transaction", "id")
	if err != nil {
		return err
	}
	tx, err := h.Svc.Delete(ctx, id)
	if err != nil {
		return fail(l, "delete_transaction", err)
	}

	l.Info("delete_transaction_success", "id", tx.ID)
	return c.JSON(http.StatusOK, transport.NewTransactionView(*tx))
}
