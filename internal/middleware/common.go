package middleware

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	ecM "github.com/labstack/echo/v4/middleware"

	loggingmw "github.com/Skotchmaster/lieferspatz/internal/middleware/logging"
)

// BodyLimit caps request bodies; the largest payload is an order with its items.
const BodyLimit = "1M"

// Common is the middleware chain every route runs behind.
func Common(logger *slog.Logger) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		ecM.Recover(),
		ecM.RequestID(),
		loggingmw.RequestLogger(logger),
		ecM.BodyLimit(BodyLimit),
		ecM.Secure(),
		ecM.CORS(),
	}
}
