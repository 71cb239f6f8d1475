package httpserver

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/qa_api/internal/service"
)

const internalMessage = "Internal Server Error"

// ErrorHandler renders every error as {"error": message}. Messages of 5xx
// errors are never shown to the client.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := internalMessage
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok && code < http.StatusInternalServerError {
			msg = m
		} else if code < http.StatusInternalServerError {
			msg = http.StatusText(code)
		}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, echo.Map{"error": msg})
}

var domainErrors = []struct {
	err  error
	code int
	msg  string
}{
	{service.ErrInvalidStatus, http.StatusBadRequest, "Invalid status"},
	{service.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{service.ErrProductNotFound, http.StatusNotFound, "Product not found"},
	{service.ErrStatusNotFound, http.StatusNotFound, "Status not found"},
	{service.ErrTransactionNotFound, http.StatusNotFound, "Transaction not found"},
	{service.ErrInsufficientStock, http.StatusConflict, "Insufficient stock"},
	{service.ErrConflict, http.StatusConflict, "Conflict"},
}

// fail logs err under "<op>_failed" and turns it into the HTTP error the
// client sees.
func fail(l *slog.Logger, op string, err error) error {
	event := op + "_failed"

	var ve *service.ValidationError
	if errors.As(err, &ve) {
		l.Warn(event, "status", http.StatusBadRequest, "reason", ve.Msg, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, ve.Msg)
	}
	for _, d := range domainErrors {
		if errors.Is(err, d.err) {
			l.Warn(event, "status", d.code, "reason", d.msg, "error", err)
			return echo.NewHTTPError(d.code, d.msg)
		}
	}

	l.Error(event, "status", http.StatusInternalServerError, "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, internalMessage)
}

func bind(c echo.Context, l *slog.Logger, op string, req any) error {
	if err := c.Bind(req); err != nil {
		l.Warn(op+"_failed", "status", http.StatusBadRequest, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	return nil
}

func idParam(c echo.Context, l *slog.Logger, op, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil {
		l.Warn(op+"_failed", "status", http.StatusBadRequest, "reason", "id is not an integer", "error", err)
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid id")
	}
	return uint(id), nil
}
