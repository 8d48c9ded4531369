package httpserver

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/lieferspatz/internal/service"
	"github.com/Skotchmaster/lieferspatz/internal/transport"
)

// ErrorHandler renders every error as {"success": false, "message": ...}.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := "internal error"
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		msg = fmt.Sprint(he.Message)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, transport.MessageResponse{Success: false, Message: msg})
}

// serviceError maps a service error to the HTTP error the client sees and
// logs it under op.
func serviceError(l *slog.Logger, op string, err error) error {
	code, msg := http.StatusInternalServerError, "internal error"
	switch {
	case errors.Is(err, service.ErrValidation):
		code, msg = http.StatusBadRequest, "invalid body"
	case errors.Is(err, service.ErrInvalidCredentials):
		code, msg = http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, service.ErrCustomerNotFound):
		code, msg = http.StatusNotFound, "Customer not found"
	case errors.Is(err, service.ErrRestaurantNotFound):
		code, msg = http.StatusNotFound, "Restaurant not found"
	case errors.Is(err, service.ErrMenuItemNotFound):
		code, msg = http.StatusNotFound, "Menu item not found"
	case errors.Is(err, service.ErrOrderNotFound):
		code, msg = http.StatusNotFound, "Order not found"
	case errors.Is(err, service.ErrInsufficientBalance):
		code, msg = http.StatusBadRequest, "Insufficient balance to complete the payment."
	case errors.Is(err, service.ErrInvalidStatus):
		code, msg = http.StatusBadRequest, "Invalid status"
	}

	if code >= http.StatusInternalServerError {
		l.Error(op+"_error", "status", code, "reason", msg, "error", err)
	} else {
		l.Warn(op+"_error", "status", code, "reason", msg, "error", err)
	}
	return echo.NewHTTPError(code, msg)
}

func badRequest(l *slog.Logger, op, reason string, err error) error {
	l.Warn(op+"_error", "status", http.StatusBadRequest, "reason", reason, "error", err)
	return echo.NewHTTPError(http.StatusBadRequest, reason)
}

func parseID(c echo.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}
