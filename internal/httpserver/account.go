package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/lieferspatz/internal/logging"
	"github.com/Skotchmaster/lieferspatz/internal/service"
	"github.com/Skotchmaster/lieferspatz/internal/transport"
)

type AccountHTTP struct {
	Svc *service.AccountService
}

func (h *AccountHTTP) CreateCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "account.create_customer")

	var req transport.CreateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "create_customer", "invalid body", err)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(l, "create_customer", "invalid body", err)
	}

	id, err := h.Svc.CreateCustomer(ctx, service.NewCustomer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
		ZipCode:   req.ZipCode,
		Password:  req.Password,
	})
	if err != nil {
		return serviceError(l, "create_customer", err)
	}

	l.Info("create_customer_success", "customer_id", id)
	return c.JSON(http.StatusOK, transport.CustomerIDResponse{Success: true, CustomerID: id})
}

func (h *AccountHTTP) LoginCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "account.login_customer")

	var req transport.LoginCustomerRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "login_customer", "invalid body", err)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(l, "login_customer", "invalid body", err)
	}

	id, err := h.Svc.AuthenticateCustomer(ctx, req.FirstName, req.LastName, req.Password)
	if err != nil {
		return serviceError(l, "login_customer", err)
	}

	l.Info("login_customer_success", "customer_id", id)
	return c.JSON(http.StatusOK, transport.CustomerIDResponse{Success: true, CustomerID: id})
}

func (h *AccountHTTP) CreateRestaurant(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "account.create_restaurant")

	var req transport.CreateRestaurantRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "create_restaurant", "invalid body", err)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(l, "create_restaurant", "invalid body", err)
	}

	id, err := h.Svc.CreateRestaurant(ctx, service.NewRestaurant{
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
		Password:    req.Password,
	})
	if err != nil {
		return serviceError(l, "create_restaurant", err)
	}

	l.Info("create_restaurant_success", "restaurant_id", id)
	return c.JSON(http.StatusOK, transport.RestaurantIDResponse{Success: true, RestaurantID: id})
}

func (h *AccountHTTP) LoginRestaurant(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "account.login_restaurant")

	var req transport.LoginRestaurantRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "login_restaurant", "invalid body", err)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(l, "login_restaurant", "invalid body", err)
	}

	id, err := h.Svc.AuthenticateRestaurant(ctx, req.Name, req.Password)
	if err != nil {
		return serviceError(l, "login_restaurant", err)
	}

	return c.JSON(http.StatusOK, transport.RestaurantIDResponse{Success: true, RestaurantID: id})
}
