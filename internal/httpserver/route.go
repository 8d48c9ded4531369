package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Skotchmaster/lieferspatz/internal/db"
	"github.com/Skotchmaster/lieferspatz/internal/logging"
	"github.com/Skotchmaster/lieferspatz/internal/transport"
)

type Deps struct {
	DB             *gorm.DB
	AccountHandler *AccountHTTP
	MenuHandler    *MenuHTTP
	OrderHandler   *OrderHTTP
	QueryHandler   *QueryHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.Validator = transport.NewValidator()
	e.HTTPErrorHandler = ErrorHandler

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		if err := db.Ping(c.Request().Context(), d.DB); err != nil {
			logging.FromContext(c.Request().Context()).Error("ready_check_failed", "error", err)
			return echo.NewHTTPError(http.StatusServiceUnavailable, "database unavailable")
		}
		return c.NoContent(http.StatusOK)
	})

	customer := e.Group("/customer")
	customer.POST("", d.AccountHandler.CreateCustomer)
	customer.POST("/login", d.AccountHandler.LoginCustomer)
	customer.GET("/:id/orders", d.QueryHandler.CustomerOrders)
	customer.GET("/:id/order/:oid", d.QueryHandler.CustomerOrder)
	customer.GET("/:id/wallet", d.QueryHandler.CustomerWallet)

	restaurant := e.Group("/restaurant")
	restaurant.POST("", d.AccountHandler.CreateRestaurant)
	restaurant.POST("/login", d.AccountHandler.LoginRestaurant)
	restaurant.POST("/:id/menu", d.MenuHandler.AddMenuItem)
	restaurant.GET("/:id/menu", d.MenuHandler.ListMenu)
	restaurant.GET("/:id/orders", d.QueryHandler.RestaurantOrders)
	restaurant.GET("/:id/wallet", d.QueryHandler.RestaurantWallet)
	restaurant.PUT("/:id/order/:oid/status", d.OrderHandler.UpdateStatus)

	e.GET("/menu/search", d.MenuHandler.SearchMenu)
	e.POST("/order", d.OrderHandler.CreateOrder)
	e.GET("/lieferspatz/wallet", d.QueryHandler.PlatformWallet)
}
