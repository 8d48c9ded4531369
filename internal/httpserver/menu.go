package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/lieferspatz/internal/logging"
	"github.com/Skotchmaster/lieferspatz/internal/service"
	"github.com/Skotchmaster/lieferspatz/internal/transport"
	"github.com/Skotchmaster/lieferspatz/internal/util"
)

type MenuHTTP struct {
	Svc *service.MenuService
}

func (h *MenuHTTP) AddMenuItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.add_item")

	restaurantID, err := parseID(c, "id")
	if err != nil {
		return badRequest(l, "add_menu_item", "invalid restaurant id", err)
	}

	var req transport.AddMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "add_menu_item", "invalid body", err)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(l, "add_menu_item", "invalid body", err)
	}

	id, err := h.Svc.AddMenuItem(ctx, restaurantID, service.NewMenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
	})
	if err != nil {
		return serviceError(l, "add_menu_item", err)
	}

	l.Info("add_menu_item_success", "item_id", id)
	return c.JSON(http.StatusOK, transport.ItemIDResponse{Success: true, ItemID: id})
}

func (h *MenuHTTP) ListMenu(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.list")

	restaurantID, err := parseID(c, "id")
	if err != nil {
		return badRequest(l, "list_menu", "invalid restaurant id", err)
	}

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	total, items, err := h.Svc.ListMenu(ctx, restaurantID, offset, limit)
	if err != nil {
		return serviceError(l, "list_menu", err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"data": transport.MenuItems(items),
		"meta": util.Meta(page, limit, total),
	})
}

func (h *MenuHTTP) SearchMenu(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.search")

	q := c.QueryParam("q")
	if q == "" {
		l.Warn("search_menu_error", "status", http.StatusBadRequest, "reason", "empty query")
		return echo.NewHTTPError(http.StatusBadRequest, "query error")
	}

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	from, limit := util.Calculate(page, size)

	total, items, err := h.Svc.SearchMenu(ctx, q, from, limit)
	if err != nil {
		return serviceError(l, "search_menu", err)
	}
	return c.JSON(http.StatusOK, transport.SearchResponse{Total: total, Items: transport.MenuItems(items)})
}
