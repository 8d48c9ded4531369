package transport

import "github.com/shopspring/decimal"

type CreateCustomerRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Address   string `json:"address"`
	ZipCode   string `json:"zip_code"`
	Password  string `json:"password"   validate:"required"`
}

type LoginCustomerRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Password  string `json:"password"   validate:"required"`
}

type CreateRestaurantRequest struct {
	Name        string `json:"name"     validate:"required"`
	Address     string `json:"address"`
	Description string `json:"description"`
	Password    string `json:"password" validate:"required"`
}

type LoginRestaurantRequest struct {
	Name     string `json:"name"     validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AddMenuItemRequest struct {
	Name        string          `json:"name"  validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"gt=0"`
	Image       *string         `json:"image"`
}

type OrderItemRequest struct {
	ItemID   uint `json:"item_id"  validate:"required"`
	Quantity int  `json:"quantity" validate:"gt=0"`
}

type CreateOrderRequest struct {
	CustomerID   uint               `json:"customer_id"   validate:"required"`
	RestaurantID uint               `json:"restaurant_id" validate:"required"`
	Items        []OrderItemRequest `json:"items"         validate:"required,min=1,dive"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type CustomerIDResponse struct {
	Success    bool `json:"success"`
	CustomerID uint `json:"customer_id"`
}

type RestaurantIDResponse struct {
	Success      bool `json:"success"`
	RestaurantID uint `json:"restaurant_id"`
}

type ItemIDResponse struct {
	Success bool `json:"success"`
	ItemID  uint `json:"item_id"`
}

type OrderIDResponse struct {
	Success bool `json:"success"`
	OrderID uint `json:"order_id"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type MenuItemResponse struct {
	ID           uint    `json:"id"`
	RestaurantID uint    `json:"restaurant_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Image        *string `json:"image"`
}

type OrderLineResponse struct {
	ItemID    uint    `json:"item_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  uint    `json:"quantity"`
}

type OrderResponse struct {
	OrderID        uint                `json:"order_id"`
	RestaurantName string              `json:"restaurant_name"`
	Items          []OrderLineResponse `json:"items"`
	TotalPrice     float64             `json:"total_price"`
	Status         string              `json:"status"`
	Paid           bool                `json:"paid"`
	Timestamp      string              `json:"timestamp"`
}

type RestaurantOrderResponse struct {
	OrderResponse
	CustomerID uint `json:"customer_id"`
}

type OrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}

type RestaurantOrdersResponse struct {
	Orders []RestaurantOrderResponse `json:"orders"`
}

type WalletResponse struct {
	WalletBalance float64 `json:"wallet_balance"`
}

type PlatformWalletResponse struct {
	Balance float64 `json:"lieferspatz_wallet_balance"`
}

type SearchResponse struct {
	Total int64              `json:"total"`
	Items []MenuItemResponse `json:"items"`
}
