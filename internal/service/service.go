package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Skotchmaster/lieferspatz/internal/events"
	"github.com/Skotchmaster/lieferspatz/internal/logging"
)

var (
	ErrValidation          = errors.New("validation")            // 400
	ErrInvalidCredentials  = errors.New("invalid credentials")   // 401
	ErrCustomerNotFound    = errors.New("customer not found")    // 404
	ErrRestaurantNotFound  = errors.New("restaurant not found")  // 404
	ErrMenuItemNotFound    = errors.New("menu item not found")   // 404
	ErrOrderNotFound       = errors.New("order not found")       // 404
	ErrInsufficientBalance = errors.New("insufficient balance")  // 400
	ErrInvalidStatus       = errors.New("invalid status")        // 400
)

const publishTimeout = 5 * time.Second

// notFound swaps gorm's missing-row error for the domain sentinel.
func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

func publish(ctx context.Context, p events.Publisher, topic string, key any, ev events.Event) {
	if p == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	if err := p.PublishEvent(ctx, topic, fmt.Sprint(key), ev); err != nil {
		logging.FromContext(ctx).Error("event_publish_failed", "topic", topic, "type", ev.Type, "error", err)
	}
}
