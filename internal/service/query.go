package service

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/lieferspatz/internal/models"
	"github.com/Skotchmaster/lieferspatz/internal/repo"
)

// QueryService is the read side: order history, order detail and wallets.
type QueryService struct {
	Repo *repo.GormRepo
}

type LineView struct {
	ItemID    uint
	Name      string
	UnitPrice decimal.Decimal
	Quantity  uint
}

// OrderView is an order with its lines resolved against the menu. OrderID
// holds whatever number the listing assigns, not necessarily the stored id.
type OrderView struct {
	OrderID        uint
	CustomerID     uint
	RestaurantID   uint
	RestaurantName string
	Items          []LineView
	TotalPrice     decimal.Decimal
	Status         models.OrderStatus
	Paid           bool
	CreatedAt      time.Time
}

// ListCustomerOrders returns pending orders first, then the rest, each
// group by creation time. Entries are numbered 1..n in that display order.
func (s *QueryService) ListCustomerOrders(ctx context.Context, customerID uint) ([]OrderView, error) {
	if _, err := s.Repo.GetCustomer(ctx, customerID); err != nil {
		return nil, notFound(err, ErrCustomerNotFound)
	}
	orders, err := s.Repo.CustomerOrders(ctx, customerID)
	if err != nil {
		return nil, err
	}
	views, err := s.views(ctx, orders)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(views, func(i, j int) bool {
		pi, pj := views[i].Status.IsPending(), views[j].Status.IsPending()
		if pi != pj {
			return pi
		}
		return views[i].CreatedAt.Before(views[j].CreatedAt)
	})
	for i := range views {
		views[i].OrderID = uint(i + 1)
	}
	return views, nil
}

// GetOrderStatus picks the customer's orderID-th order in creation order.
// This numbering differs from the one ListCustomerOrders hands out.
func (s *QueryService) GetOrderStatus(ctx context.Context, customerID uint, orderID int) (*OrderView, error) {
	if _, err := s.Repo.GetCustomer(ctx, customerID); err != nil {
		return nil, notFound(err, ErrCustomerNotFound)
	}
	orders, err := s.Repo.CustomerOrders(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if orderID < 1 || orderID > len(orders) {
		return nil, ErrOrderNotFound
	}

	views, err := s.views(ctx, orders[orderID-1:orderID])
	if err != nil {
		return nil, err
	}
	v := views[0]
	v.OrderID = uint(orderID)
	return &v, nil
}

// ListRestaurantOrders returns the orders a restaurant received, in
// creation order, numbered by their stored id.
func (s *QueryService) ListRestaurantOrders(ctx context.Context, restaurantID uint) ([]OrderView, error) {
	if _, err := s.Repo.GetRestaurant(ctx, restaurantID); err != nil {
		return nil, notFound(err, ErrRestaurantNotFound)
	}
	orders, err := s.Repo.RestaurantOrders(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, orders)
}

func (s *QueryService) CustomerWallet(ctx context.Context, customerID uint) (decimal.Decimal, error) {
	c, err := s.Repo.GetCustomer(ctx, customerID)
	if err != nil {
		return decimal.Zero, notFound(err, ErrCustomerNotFound)
	}
	return c.WalletBalance, nil
}

func (s *QueryService) RestaurantWallet(ctx context.Context, restaurantID uint) (decimal.Decimal, error) {
	r, err := s.Repo.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return decimal.Zero, notFound(err, ErrRestaurantNotFound)
	}
	return r.WalletBalance, nil
}

func (s *QueryService) PlatformBalance(ctx context.Context) (decimal.Decimal, error) {
	return s.Repo.PlatformBalance(ctx)
}

func (s *QueryService) views(ctx context.Context, orders []models.Order) ([]OrderView, error) {
	var itemIDs, restaurantIDs []uint
	for _, o := range orders {
		restaurantIDs = append(restaurantIDs, o.RestaurantID)
		for _, line := range o.Lines {
			itemIDs = append(itemIDs, line.MenuItemID)
		}
	}
	menu, err := s.Repo.MenuItemsByID(ctx, itemIDs)
	if err != nil {
		return nil, err
	}
	names, err := s.Repo.RestaurantNames(ctx, restaurantIDs)
	if err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		total, err := OrderTotal(o.Lines, menu)
		if err != nil {
			return nil, err
		}
		lines := make([]LineView, 0, len(o.Lines))
		for _, line := range o.Lines {
			item := menu[line.MenuItemID]
			lines = append(lines, LineView{
				ItemID:    line.MenuItemID,
				Name:      item.Name,
				UnitPrice: item.Price,
				Quantity:  line.Quantity,
			})
		}
		views = append(views, OrderView{
			OrderID:        o.ID,
			CustomerID:     o.CustomerID,
			RestaurantID:   o.RestaurantID,
			RestaurantName: names[o.RestaurantID],
			Items:          lines,
			TotalPrice:     total,
			Status:         o.Status,
			Paid:           o.Paid,
			CreatedAt:      o.CreatedAt,
		})
	}
	return views, nil
}
