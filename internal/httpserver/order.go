package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/lieferspatz/internal/logging"
	"github.com/Skotchmaster/lieferspatz/internal/service"
	"github.com/Skotchmaster/lieferspatz/internal/transport"
)

type OrderHTTP struct {
	Svc *service.OrderService
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create")

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "create_order", "invalid body", err)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(l, "create_order", "invalid body", err)
	}

	position, err := h.Svc.CreateOrder(ctx, req.CustomerID, req.RestaurantID, transport.OrderItems(req.Items))
	if err != nil {
		if errors.Is(err, service.ErrInsufficientBalance) {
			l = l.With("order_position", position)
		}
		return serviceError(l, "create_order", err)
	}

	l.Info("create_order_success", "order_id", position)
	return c.JSON(http.StatusOK, transport.OrderIDResponse{Success: true, OrderID: position})
}

func (h *OrderHTTP) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.update_status")

	restaurantID, err := parseID(c, "id")
	if err != nil {
		return badRequest(l, "update_status", "invalid restaurant id", err)
	}
	orderID, err := parseID(c, "oid")
	if err != nil {
		return badRequest(l, "update_status", "invalid order id", err)
	}

	var req transport.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "update_status", "invalid body", err)
	}

	status, err := h.Svc.UpdateOrderStatus(ctx, restaurantID, orderID, req.Status)
	if err != nil {
		return serviceError(l, "update_status", err)
	}

	return c.JSON(http.StatusOK, transport.MessageResponse{
		Success: true,
		Message: "Order status updated to " + status.String(),
	})
}
