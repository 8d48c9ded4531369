package httpserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter_OrderLifecycle(t *testing.T) {
	env := newTestEnv(t)
	cid, rid, item := env.seed(t)
	assert.EqualValues(t, 1, cid)
	assert.EqualValues(t, 1, rid)
	assert.EqualValues(t, 1, item)

	rec := env.do(t, http.MethodPost, "/order", map[string]any{
		"customer_id": 1, "restaurant_id": 1,
		"items": []map[string]any{{"item_id": 1, "quantity": 2}},
	})
	requireStatus(t, rec, http.StatusOK)
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.EqualValues(t, 1, body["order_id"])

	rec = env.do(t, http.MethodGet, "/customer/1/wallet", nil)
	requireStatus(t, rec, http.StatusOK)
	assert.EqualValues(t, 80, decode(t, rec)["wallet_balance"])

	rec = env.do(t, http.MethodGet, "/restaurant/1/wallet", nil)
	requireStatus(t, rec, http.StatusOK)
	assert.EqualValues(t, 20, decode(t, rec)["wallet_balance"])

	rec = env.do(t, http.MethodGet, "/lieferspatz/wallet", nil)
	requireStatus(t, rec, http.StatusOK)
	assert.EqualValues(t, 0, decode(t, rec)["lieferspatz_wallet_balance"])

	rec = env.do(t, http.MethodGet, "/customer/1/orders", nil)
	requireStatus(t, rec, http.StatusOK)
	orders := decode(t, rec)["orders"].([]any)
	require.Len(t, orders, 1)
	first := orders[0].(map[string]any)
	assert.EqualValues(t, 1, first["order_id"])
	assert.Equal(t, "Luigi", first["restaurant_name"])
	assert.Equal(t, "in Bearbeitung", first["status"])
	assert.EqualValues(t, 20, first["total_price"])
	assert.Equal(t, "2024-05-01 18:01:00", first["timestamp"])
	lines := first["items"].([]any)
	require.Len(t, lines, 1)
	assert.EqualValues(t, 2, lines[0].(map[string]any)["quantity"])

	rec = env.do(t, http.MethodPut, "/restaurant/1/order/1/status", map[string]any{"status": "in Zubereitung"})
	requireStatus(t, rec, http.StatusOK)
	body = decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Order status updated to in Zubereitung", body["message"])

	rec = env.do(t, http.MethodGet, "/customer/1/order/1", nil)
	requireStatus(t, rec, http.StatusOK)
	body = decode(t, rec)
	assert.Equal(t, "in Zubereitung", body["status"])
	assert.EqualValues(t, 1, body["order_id"])

	rec = env.do(t, http.MethodGet, "/restaurant/1/orders", nil)
	requireStatus(t, rec, http.StatusOK)
	restaurantOrders := decode(t, rec)["orders"].([]any)
	require.Len(t, restaurantOrders, 1)
	assert.EqualValues(t, 1, restaurantOrders[0].(map[string]any)["customer_id"])
}

func TestRouter_InsufficientBalanceKeepsOrder(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)

	rec := env.do(t, http.MethodPost, "/order", map[string]any{
		"customer_id": 1, "restaurant_id": 1,
		"items": []map[string]any{{"item_id": 1, "quantity": 11}},
	})
	requireStatus(t, rec, http.StatusBadRequest)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Insufficient balance to complete the payment.", body["message"])

	rec = env.do(t, http.MethodGet, "/customer/1/wallet", nil)
	assert.EqualValues(t, 100, decode(t, rec)["wallet_balance"])

	rec = env.do(t, http.MethodGet, "/customer/1/orders", nil)
	orders := decode(t, rec)["orders"].([]any)
	require.Len(t, orders, 1)
	assert.Equal(t, false, orders[0].(map[string]any)["paid"])
}

func TestRouter_Errors(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)

	tests := []struct {
		name    string
		method  string
		path    string
		body    any
		code    int
		message string
	}{
		{"bad login", http.MethodPost, "/customer/login", map[string]any{"first_name": "Anna", "last_name": "Muster", "password": "x"}, http.StatusUnauthorized, "Invalid credentials"},
		{"bad restaurant login", http.MethodPost, "/restaurant/login", map[string]any{"name": "Luigi", "password": "x"}, http.StatusUnauthorized, "Invalid credentials"},
		{"menu for unknown restaurant", http.MethodPost, "/restaurant/9/menu", map[string]any{"name": "X", "price": 1}, http.StatusNotFound, "Restaurant not found"},
		{"non-positive price", http.MethodPost, "/restaurant/1/menu", map[string]any{"name": "X", "price": 0}, http.StatusBadRequest, "invalid body"},
		{"malformed json", http.MethodPost, "/customer", `{"first_name":`, http.StatusBadRequest, "invalid body"},
		{"missing fields", http.MethodPost, "/customer", map[string]any{"first_name": "Anna"}, http.StatusBadRequest, "invalid body"},
		{"order unknown customer", http.MethodPost, "/order", map[string]any{"customer_id": 9, "restaurant_id": 1, "items": []map[string]any{{"item_id": 1, "quantity": 1}}}, http.StatusNotFound, "Customer not found"},
		{"order unknown restaurant", http.MethodPost, "/order", map[string]any{"customer_id": 1, "restaurant_id": 9, "items": []map[string]any{{"item_id": 1, "quantity": 1}}}, http.StatusNotFound, "Restaurant not found"},
		{"order unknown item", http.MethodPost, "/order", map[string]any{"customer_id": 1, "restaurant_id": 1, "items": []map[string]any{{"item_id": 9, "quantity": 1}}}, http.StatusNotFound, "Menu item not found"},
		{"order zero quantity", http.MethodPost, "/order", map[string]any{"customer_id": 1, "restaurant_id": 1, "items": []map[string]any{{"item_id": 1, "quantity": 0}}}, http.StatusBadRequest, "invalid body"},
		{"order without items", http.MethodPost, "/order", map[string]any{"customer_id": 1, "restaurant_id": 1, "items": []any{}}, http.StatusBadRequest, "invalid body"},
		{"status unknown restaurant", http.MethodPut, "/restaurant/9/order/1/status", map[string]any{"status": "storniert"}, http.StatusNotFound, "Restaurant not found"},
		{"status unknown order", http.MethodPut, "/restaurant/1/order/9/status", map[string]any{"status": "storniert"}, http.StatusNotFound, "Order not found"},
		{"orders unknown customer", http.MethodGet, "/customer/9/orders", nil, http.StatusNotFound, "Customer not found"},
		{"order detail out of range", http.MethodGet, "/customer/1/order/1", nil, http.StatusNotFound, "Order not found"},
		{"order detail zero", http.MethodGet, "/customer/1/order/0", nil, http.StatusNotFound, "Order not found"},
		{"order detail negative", http.MethodGet, "/customer/1/order/-1", nil, http.StatusNotFound, "Order not found"},
		{"wallet unknown customer", http.MethodGet, "/customer/9/wallet", nil, http.StatusNotFound, "Customer not found"},
		{"wallet unknown restaurant", http.MethodGet, "/restaurant/9/wallet", nil, http.StatusNotFound, "Restaurant not found"},
		{"non-numeric id", http.MethodGet, "/customer/abc/wallet", nil, http.StatusBadRequest, "invalid customer id"},
		{"empty search", http.MethodGet, "/menu/search", nil, http.StatusBadRequest, "query error"},
		{"menu unknown restaurant", http.MethodGet, "/restaurant/9/menu", nil, http.StatusNotFound, "Restaurant not found"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := env.do(t, tc.method, tc.path, tc.body)
			requireStatus(t, rec, tc.code)
			body := decode(t, rec)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tc.message, body["message"])
		})
	}
}

func TestRouter_InvalidStatus(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)
	rec := env.do(t, http.MethodPost, "/order", map[string]any{
		"customer_id": 1, "restaurant_id": 1,
		"items": []map[string]any{{"item_id": 1, "quantity": 1}},
	})
	requireStatus(t, rec, http.StatusOK)

	rec = env.do(t, http.MethodPut, "/restaurant/1/order/1/status", map[string]any{"status": "geliefert"})
	requireStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, "Invalid status", decode(t, rec)["message"])

	rec = env.do(t, http.MethodPut, "/restaurant/1/order/1/status", nil)
	requireStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, "Invalid status", decode(t, rec)["message"])
}

func TestRouter_LoginAndMenu(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)

	rec := env.do(t, http.MethodPost, "/customer/login", map[string]any{"first_name": "Anna", "last_name": "Muster", "password": "pw"})
	requireStatus(t, rec, http.StatusOK)
	assert.EqualValues(t, 1, decode(t, rec)["customer_id"])

	rec = env.do(t, http.MethodPost, "/restaurant/login", map[string]any{"name": "Luigi", "password": "pw"})
	requireStatus(t, rec, http.StatusOK)
	assert.EqualValues(t, 1, decode(t, rec)["restaurant_id"])

	rec = env.do(t, http.MethodPost, "/restaurant/1/menu", map[string]any{"name": "Tiramisu", "description": "Dessert", "price": "4.50", "image": "tiramisu.png"})
	requireStatus(t, rec, http.StatusOK)

	rec = env.do(t, http.MethodGet, "/restaurant/1/menu?page=1&size=1", nil)
	requireStatus(t, rec, http.StatusOK)
	body := decode(t, rec)
	data := body["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "Margherita", data[0].(map[string]any)["name"])
	meta := body["meta"].(map[string]any)
	assert.EqualValues(t, 2, meta["total"])
	assert.Equal(t, true, meta["has_next"])

	rec = env.do(t, http.MethodGet, "/menu/search?q=tira", nil)
	requireStatus(t, rec, http.StatusOK)
	body = decode(t, rec)
	assert.EqualValues(t, 1, body["total"])
	items := body["items"].([]any)
	require.Len(t, items, 1)
	assert.EqualValues(t, 4.5, items[0].(map[string]any)["price"])
	assert.Equal(t, "tiramisu.png", items[0].(map[string]any)["image"])
}

func TestRouter_Health(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/health/live", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/health/ready", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_UnknownRoute(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/nope", nil)
	requireStatus(t, rec, http.StatusNotFound)
	assert.Equal(t, false, decode(t, rec)["success"])
}
