package repo

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/lieferspatz/internal/db"
	"github.com/Skotchmaster/lieferspatz/internal/models"
)

func newTestRepo(t *testing.T) *GormRepo {
	t.Helper()
	gdb, err := db.Open(context.Background(), db.MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(gdb) })
	return New(gdb)
}

func TestGormRepo_CustomerLifecycle(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	c := &models.Customer{FirstName: "Anna", LastName: "Muster", Address: "Hauptstr. 1", ZipCode: "47057", PasswordHash: "h", WalletBalance: decimal.NewFromInt(100)}
	require.NoError(t, r.CreateCustomer(ctx, c))
	require.NotZero(t, c.ID)

	got, err := r.GetCustomer(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(100).Equal(got.WalletBalance))

	require.NoError(t, r.SetCustomerBalance(ctx, c.ID, decimal.RequireFromString("12.34")))
	got, err = r.GetCustomer(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "12.34", got.WalletBalance.StringFixed(2))

	_, err = r.GetCustomer(ctx, c.ID+100)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	found, err := r.FindCustomersByName(ctx, "Anna", "Muster")
	require.NoError(t, err)
	require.Len(t, found, 1)

	found, err = r.FindCustomersByName(ctx, "anna", "Muster")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestGormRepo_MenuAndSearch(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	rest := &models.Restaurant{Name: "Imbiss", Address: "Weg 2", PasswordHash: "h"}
	require.NoError(t, r.CreateRestaurant(ctx, rest))

	for _, name := range []string{"Burger", "Cheeseburger", "Pommes 100%"} {
		require.NoError(t, r.CreateMenuItem(ctx, &models.MenuItem{RestaurantID: rest.ID, Name: name, Price: decimal.NewFromInt(5)}))
	}

	total, items, err := r.ListMenu(ctx, rest.ID, 0, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, items, 2)
	assert.Equal(t, "Burger", items[0].Name)

	total, items, err = r.SearchMenuItems(ctx, "BURGER", 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, items, 2)

	total, _, err = r.SearchMenuItems(ctx, "100%", 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	byID, err := r.MenuItemsByID(ctx, []uint{items[0].ID, 999})
	require.NoError(t, err)
	assert.Len(t, byID, 1)

	names, err := r.RestaurantNames(ctx, []uint{rest.ID, 42})
	require.NoError(t, err)
	assert.Equal(t, map[uint]string{rest.ID: "Imbiss"}, names)
}

func TestGormRepo_OrdersAndTransaction(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	c := &models.Customer{FirstName: "A", LastName: "B", Address: "x", ZipCode: "1", PasswordHash: "h"}
	require.NoError(t, r.CreateCustomer(ctx, c))
	rest := &models.Restaurant{Name: "R", Address: "y", PasswordHash: "h"}
	require.NoError(t, r.CreateRestaurant(ctx, rest))
	item := &models.MenuItem{RestaurantID: rest.ID, Name: "Burger", Price: decimal.NewFromInt(5)}
	require.NoError(t, r.CreateMenuItem(ctx, item))

	order := &models.Order{
		CustomerID:   c.ID,
		RestaurantID: rest.ID,
		Status:       models.StatusPending,
		CreatedAt:    time.Now().UTC(),
		Lines:        []models.OrderLine{{MenuItemID: item.ID, Quantity: 2}},
	}
	require.NoError(t, r.CreateOrder(ctx, order))

	n, err := r.CountOrders(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	_, err = r.GetRestaurantOrder(ctx, rest.ID+1, order.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, r.UpdateOrderStatus(ctx, order.ID, models.StatusCompleted))
	require.NoError(t, r.MarkOrderPaid(ctx, order.ID))

	orders, err := r.CustomerOrders(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, models.StatusCompleted, orders[0].Status)
	assert.True(t, orders[0].Paid)
	require.Len(t, orders[0].Lines, 1)
	assert.EqualValues(t, 2, orders[0].Lines[0].Quantity)

	restOrders, err := r.RestaurantOrders(ctx, rest.ID)
	require.NoError(t, err)
	assert.Len(t, restOrders, 1)

	// a failing transaction leaves no trace
	err = r.Transaction(ctx, func(tx *GormRepo) error {
		if err := tx.SetCustomerBalance(ctx, c.ID, decimal.NewFromInt(1)); err != nil {
			return err
		}
		return gorm.ErrInvalidTransaction
	})
	require.ErrorIs(t, err, gorm.ErrInvalidTransaction)
	got, err := r.GetCustomer(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, got.WalletBalance.IsZero())

	platform, err := r.PlatformBalance(ctx)
	require.NoError(t, err)
	assert.True(t, platform.IsZero())
}
