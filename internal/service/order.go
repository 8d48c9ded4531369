package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/lieferspatz/internal/events"
	"github.com/Skotchmaster/lieferspatz/internal/logging"
	"github.com/Skotchmaster/lieferspatz/internal/models"
	"github.com/Skotchmaster/lieferspatz/internal/repo"
)

// OrderService owns every write that touches balances or order status.
// Writes are serialised by mu and each runs in its own transaction.
type OrderService struct {
	Repo   *repo.GormRepo
	Events events.Publisher
	Now    func() time.Time

	mu sync.Mutex
}

type OrderItem struct {
	ItemID   uint
	Quantity int
}

func (s *OrderService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CreateOrder persists a pending order and transfers its total from the
// customer to the restaurant. When the customer cannot pay, the order is
// still committed unpaid and ErrInsufficientBalance is returned together
// with the order's position.
//
// The returned number is the order's 1-based position in the global order
// list.
func (s *OrderService) CreateOrder(ctx context.Context, customerID, restaurantID uint, items []OrderItem) (uint, error) {
	l := logging.FromContext(ctx).With("svc", "order.create", "customer_id", customerID, "restaurant_id", restaurantID)

	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		order    models.Order
		position int64
		total    decimal.Decimal
		paid     bool
	)
	err := s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		customer, err := tx.GetCustomer(ctx, customerID)
		if err != nil {
			return notFound(err, ErrCustomerNotFound)
		}
		restaurant, err := tx.GetRestaurant(ctx, restaurantID)
		if err != nil {
			return notFound(err, ErrRestaurantNotFound)
		}

		if len(items) == 0 {
			return fmt.Errorf("%w: order has no items", ErrValidation)
		}
		ids := make([]uint, 0, len(items))
		for _, it := range items {
			if it.Quantity <= 0 {
				return fmt.Errorf("%w: quantity must be positive (item %d)", ErrValidation, it.ItemID)
			}
			ids = append(ids, it.ItemID)
		}
		menu, err := tx.MenuItemsByID(ctx, ids)
		if err != nil {
			return err
		}

		order = models.Order{
			CustomerID:   customer.ID,
			RestaurantID: restaurant.ID,
			Status:       models.StatusPending,
			CreatedAt:    s.now(),
		}
		for _, it := range items {
			if _, ok := menu[it.ItemID]; !ok {
				return fmt.Errorf("%w: %d", ErrMenuItemNotFound, it.ItemID)
			}
			order.Lines = append(order.Lines, models.OrderLine{MenuItemID: it.ItemID, Quantity: uint(it.Quantity)})
		}

		if err := tx.CreateOrder(ctx, &order); err != nil {
			return err
		}
		if position, err = tx.CountOrders(ctx); err != nil {
			return err
		}

		total, err = OrderTotal(order.Lines, menu)
		if err != nil {
			return err
		}
		if customer.WalletBalance.LessThan(total) {
			return nil
		}

		if err := tx.SetCustomerBalance(ctx, customer.ID, customer.WalletBalance.Sub(total)); err != nil {
			return err
		}
		if err := tx.SetRestaurantBalance(ctx, restaurant.ID, restaurant.WalletBalance.Add(total)); err != nil {
			return err
		}
		if err := tx.MarkOrderPaid(ctx, order.ID); err != nil {
			return err
		}
		paid = true
		return nil
	})
	if err != nil {
		l.Warn("create_order_error", "error", err)
		return 0, err
	}

	payload := map[string]any{
		"order_id":      order.ID,
		"customer_id":   customerID,
		"restaurant_id": restaurantID,
		"total":         total.StringFixed(2),
		"paid":          paid,
	}
	publish(ctx, s.Events, events.TopicOrders, order.ID, events.New(events.TypeOrderCreated, payload))

	if !paid {
		publish(ctx, s.Events, events.TopicOrders, order.ID, events.New(events.TypeOrderPaymentFailed, payload))
		l.Warn("create_order_unpaid", "order_id", order.ID, "total", total.StringFixed(2))
		return uint(position), ErrInsufficientBalance
	}

	l.Info("create_order_success", "order_id", order.ID, "total", total.StringFixed(2))
	return uint(position), nil
}

// UpdateOrderStatus sets the status of one of the restaurant's orders. Any
// status may follow any other and cancelling does not refund.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, restaurantID, orderID uint, status string) (models.OrderStatus, error) {
	l := logging.FromContext(ctx).With("svc", "order.update_status", "restaurant_id", restaurantID, "order_id", orderID)

	s.mu.Lock()
	defer s.mu.Unlock()

	var previous, next models.OrderStatus
	err := s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		if _, err := tx.GetRestaurant(ctx, restaurantID); err != nil {
			return notFound(err, ErrRestaurantNotFound)
		}
		order, err := tx.GetRestaurantOrder(ctx, restaurantID, orderID)
		if err != nil {
			return notFound(err, ErrOrderNotFound)
		}
		parsed, ok := models.ParseOrderStatus(status)
		if !ok {
			return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
		}
		previous, next = order.Status, parsed
		return tx.UpdateOrderStatus(ctx, order.ID, parsed)
	})
	if err != nil {
		l.Warn("update_status_error", "error", err)
		return "", err
	}

	publish(ctx, s.Events, events.TopicOrders, orderID, events.New(events.TypeOrderStatusChanged, map[string]any{
		"order_id":      orderID,
		"restaurant_id": restaurantID,
		"from":          previous.String(),
		"to":            next.String(),
	}))

	l.Info("update_status_success", "from", previous, "to", next)
	return next, nil
}

// OrderTotal sums unit price times quantity over the lines.
func OrderTotal(lines []models.OrderLine, menu map[uint]models.MenuItem) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, line := range lines {
		item, ok := menu[line.MenuItemID]
		if !ok {
			return decimal.Zero, fmt.Errorf("%w: %d", ErrMenuItemNotFound, line.MenuItemID)
		}
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total, nil
}
