package middleware

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	ecM "github.com/labstack/echo/v4/middleware"

	loggingmw "github.com/Skotchmaster/qa_api/internal/middleware/logging"
)

// Common is the middleware chain every request passes through, outermost
// first. Recover sits inside the request logger so panics are logged as 500s.
func Common(logger *slog.Logger) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		ecM.RequestID(),
		loggingmw.RequestLogger(logger),
		ecM.Recover(),
		ecM.CORS(),
		ecM.Secure(),
		ecM.BodyLimit("1M"),
	}
}
