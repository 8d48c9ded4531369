package transport

import (
	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/lieferspatz/internal/models"
	"github.com/Skotchmaster/lieferspatz/internal/service"
)

// TimestampLayout is the wire format of order timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// Money renders an amount as a JSON number with cent precision.
func Money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func MenuItem(it models.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:           it.ID,
		RestaurantID: it.RestaurantID,
		Name:         it.Name,
		Description:  it.Description,
		Price:        Money(it.Price),
		Image:        it.Image,
	}
}

func MenuItems(items []models.MenuItem) []MenuItemResponse {
	out := make([]MenuItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, MenuItem(it))
	}
	return out
}

func Order(v service.OrderView) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(v.Items))
	for _, l := range v.Items {
		lines = append(lines, OrderLineResponse{
			ItemID:    l.ItemID,
			Name:      l.Name,
			UnitPrice: Money(l.UnitPrice),
			Quantity:  l.Quantity,
		})
	}
	return OrderResponse{
		OrderID:        v.OrderID,
		RestaurantName: v.RestaurantName,
		Items:          lines,
		TotalPrice:     Money(v.TotalPrice),
		Status:         v.Status.String(),
		Paid:           v.Paid,
		Timestamp:      v.CreatedAt.Format(TimestampLayout),
	}
}

func Orders(views []service.OrderView) OrdersResponse {
	out := OrdersResponse{Orders: make([]OrderResponse, 0, len(views))}
	for _, v := range views {
		out.Orders = append(out.Orders, Order(v))
	}
	return out
}

func RestaurantOrders(views []service.OrderView) RestaurantOrdersResponse {
	out := RestaurantOrdersResponse{Orders: make([]RestaurantOrderResponse, 0, len(views))}
	for _, v := range views {
		out.Orders = append(out.Orders, RestaurantOrderResponse{OrderResponse: Order(v), CustomerID: v.CustomerID})
	}
	return out
}

func OrderItems(in []OrderItemRequest) []service.OrderItem {
	out := make([]service.OrderItem, 0, len(in))
	for _, it := range in {
		out = append(out, service.OrderItem{ItemID: it.ItemID, Quantity: it.Quantity})
	}
	return out
}
