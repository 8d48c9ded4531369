package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	TopicCustomers   = "customer_events"
	TopicRestaurants = "restaurant_events"
	TopicOrders      = "order_events"
)

const (
	TypeCustomerRegistered   = "customer_registered"
	TypeCustomerLoggedIn     = "customer_logged_in"
	TypeRestaurantRegistered = "restaurant_registered"
	TypeMenuItemAdded        = "menu_item_added"
	TypeOrderCreated         = "order_created"
	TypeOrderPaymentFailed   = "order_payment_failed"
	TypeOrderStatusChanged   = "order_status_changed"
)

type Event struct {
	ID         string         `json:"event_id"`
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

func New(typ string, payload map[string]any) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       typ,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

type Publisher interface {
	PublishEvent(ctx context.Context, topic, key string, event any) error
	Close() error
}

// Nop drops every event. It is used when no brokers are configured.
type Nop struct{}

func (Nop) PublishEvent(context.Context, string, string, any) error { return nil }

func (Nop) Close() error { return nil }
