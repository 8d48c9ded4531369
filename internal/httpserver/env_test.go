package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/lieferspatz/internal/db"
	"github.com/Skotchmaster/lieferspatz/internal/events"
	"github.com/Skotchmaster/lieferspatz/internal/logging"
	"github.com/Skotchmaster/lieferspatz/internal/middleware"
	"github.com/Skotchmaster/lieferspatz/internal/repo"
	"github.com/Skotchmaster/lieferspatz/internal/service"
)

type testEnv struct {
	E    *echo.Echo
	Deps *Deps
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gdb, err := db.Open(context.Background(), db.MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(gdb) })

	r := repo.New(gdb)
	clock := time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC)
	deps := &Deps{
		DB: gdb,
		AccountHandler: &AccountHTTP{Svc: &service.AccountService{
			Repo: r, Events: events.Nop{}, CustomerStartBalance: decimal.NewFromInt(100),
		}},
		MenuHandler: &MenuHTTP{Svc: &service.MenuService{Repo: r, Events: events.Nop{}}},
		OrderHandler: &OrderHTTP{Svc: &service.OrderService{Repo: r, Events: events.Nop{}, Now: func() time.Time {
			clock = clock.Add(time.Minute)
			return clock
		}}},
		QueryHandler: &QueryHTTP{Svc: &service.QueryService{Repo: r}},
	}

	e := echo.New()
	e.Use(middleware.Common(logging.NewWithWriter(io.Discard, "error"))...)
	Register(e, deps)
	return &testEnv{E: e, Deps: deps}
}

// do sends the request through the full router.
func (env *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			rd = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			rd = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, rd)
	if rd != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

// context builds an echo context for calling a handler directly.
func (env *testEnv) context(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, env.E.NewContext(req, rec)
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, code int) {
	t.Helper()
	require.Equal(t, code, rec.Code, rec.Body.String())
}

func (env *testEnv) seed(t *testing.T) (customerID, restaurantID, itemID float64) {
	t.Helper()
	rec := env.do(t, http.MethodPost, "/customer", map[string]any{
		"first_name": "Anna", "last_name": "Muster", "address": "Hauptstr. 1", "zip_code": "47057", "password": "pw",
	})
	requireStatus(t, rec, http.StatusOK)
	customerID = decode(t, rec)["customer_id"].(float64)

	rec = env.do(t, http.MethodPost, "/restaurant", map[string]any{
		"name": "Luigi", "address": "Weg 2", "description": "Pizza", "password": "pw",
	})
	requireStatus(t, rec, http.StatusOK)
	restaurantID = decode(t, rec)["restaurant_id"].(float64)

	rec = env.do(t, http.MethodPost, "/restaurant/1/menu", map[string]any{
		"name": "Margherita", "description": "Tomate", "price": 10.0,
	})
	requireStatus(t, rec, http.StatusOK)
	itemID = decode(t, rec)["item_id"].(float64)
	return customerID, restaurantID, itemID
}
