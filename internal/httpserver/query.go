package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/lieferspatz/internal/logging"
	"github.com/Skotchmaster/lieferspatz/internal/service"
	"github.com/Skotchmaster/lieferspatz/internal/transport"
)

type QueryHTTP struct {
	Svc *service.QueryService
}

func (h *QueryHTTP) CustomerOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "query.customer_orders")

	customerID, err := parseID(c, "id")
	if err != nil {
		return badRequest(l, "customer_orders", "invalid customer id", err)
	}

	views, err := h.Svc.ListCustomerOrders(ctx, customerID)
	if err != nil {
		return serviceError(l, "customer_orders", err)
	}
	return c.JSON(http.StatusOK, transport.Orders(views))
}

func (h *QueryHTTP) CustomerOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "query.customer_order")

	customerID, err := parseID(c, "id")
	if err != nil {
		return badRequest(l, "customer_order", "invalid customer id", err)
	}
	orderID, err := strconv.Atoi(c.Param("oid"))
	if err != nil {
		return badRequest(l, "customer_order", "invalid order id", err)
	}

	view, err := h.Svc.GetOrderStatus(ctx, customerID, orderID)
	if err != nil {
		return serviceError(l, "customer_order", err)
	}
	return c.JSON(http.StatusOK, transport.Order(*view))
}

func (h *QueryHTTP) RestaurantOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "query.restaurant_orders")

	restaurantID, err := parseID(c, "id")
	if err != nil {
		return badRequest(l, "restaurant_orders", "invalid restaurant id", err)
	}

	views, err := h.Svc.ListRestaurantOrders(ctx, restaurantID)
	if err != nil {
		return serviceError(l, "restaurant_orders", err)
	}
	return c.JSON(http.StatusOK, transport.RestaurantOrders(views))
}

func (h *QueryHTTP) CustomerWallet(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "query.customer_wallet")

	customerID, err := parseID(c, "id")
	if err != nil {
		return badRequest(l, "customer_wallet", "invalid customer id", err)
	}

	balance, err := h.Svc.CustomerWallet(ctx, customerID)
	if err != nil {
		return serviceError(l, "customer_wallet", err)
	}
	return c.JSON(http.StatusOK, transport.WalletResponse{WalletBalance: transport.Money(balance)})
}

func (h *QueryHTTP) RestaurantWallet(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "query.restaurant_wallet")

	restaurantID, err := parseID(c, "id")
	if err != nil {
		return badRequest(l, "restaurant_wallet", "invalid restaurant id", err)
	}

	balance, err := h.Svc.RestaurantWallet(ctx, restaurantID)
	if err != nil {
		return serviceError(l, "restaurant_wallet", err)
	}
	return c.JSON(http.StatusOK, transport.WalletResponse{WalletBalance: transport.Money(balance)})
}

func (h *QueryHTTP) PlatformWallet(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "query.platform_wallet")

	balance, err := h.Svc.PlatformBalance(ctx)
	if err != nil {
		return serviceError(l, "platform_wallet", err)
	}
	return c.JSON(http.StatusOK, transport.PlatformWalletResponse{Balance: transport.Money(balance)})
}
