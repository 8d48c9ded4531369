package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/lieferspatz/internal/events"
	"github.com/Skotchmaster/lieferspatz/internal/logging"
	"github.com/Skotchmaster/lieferspatz/internal/models"
	"github.com/Skotchmaster/lieferspatz/internal/repo"
)

// MenuIndexer is the optional full-text index behind SearchMenu.
type MenuIndexer interface {
	IndexMenuItem(ctx context.Context, item models.MenuItem) error
	SearchMenu(ctx context.Context, query string, from, size int) (int64, []models.MenuItem, error)
}

type MenuService struct {
	Repo   *repo.GormRepo
	Events events.Publisher
	// Index is nil when no search cluster is configured.
	Index MenuIndexer
}

type NewMenuItem struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Image       *string
}

func (s *MenuService) AddMenuItem(ctx context.Context, restaurantID uint, in NewMenuItem) (uint, error) {
	l := logging.FromContext(ctx).With("svc", "menu.add_item", "restaurant_id", restaurantID)

	if _, err := s.Repo.GetRestaurant(ctx, restaurantID); err != nil {
		return 0, notFound(err, ErrRestaurantNotFound)
	}
	if in.Name == "" {
		return 0, fmt.Errorf("%w: name required", ErrValidation)
	}
	if !in.Price.IsPositive() {
		return 0, fmt.Errorf("%w: price must be positive", ErrValidation)
	}

	item := models.MenuItem{
		RestaurantID: restaurantID,
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		Image:        in.Image,
	}
	if err := s.Repo.CreateMenuItem(ctx, &item); err != nil {
		l.Error("add_item_error", "reason", "db_error", "error", err)
		return 0, err
	}

	if s.Index != nil {
		if err := s.Index.IndexMenuItem(ctx, item); err != nil {
			l.Warn("add_item_index_error", "item_id", item.ID, "error", err)
		}
	}

	publish(ctx, s.Events, events.TopicRestaurants, restaurantID, events.New(events.TypeMenuItemAdded, map[string]any{
		"restaurant_id": restaurantID,
		"item_id":       item.ID,
		"price":         item.Price.String(),
	}))

	l.Info("add_item_success", "item_id", item.ID)
	return item.ID, nil
}

func (s *MenuService) ListMenu(ctx context.Context, restaurantID uint, offset, limit int) (int64, []models.MenuItem, error) {
	if _, err := s.Repo.GetRestaurant(ctx, restaurantID); err != nil {
		return 0, nil, notFound(err, ErrRestaurantNotFound)
	}
	return s.Repo.ListMenu(ctx, restaurantID, offset, limit)
}

// SearchMenu asks the index first and falls back to a SQL scan when the
// index is absent or unreachable.
func (s *MenuService) SearchMenu(ctx context.Context, query string, offset, limit int) (int64, []models.MenuItem, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return 0, nil, fmt.Errorf("%w: empty query", ErrValidation)
	}

	if s.Index != nil {
		total, items, err := s.Index.SearchMenu(ctx, query, offset, limit)
		if err == nil {
			return total, items, nil
		}
		logging.FromContext(ctx).Warn("search_menu_index_error", "error", err)
	}
	return s.Repo.SearchMenuItems(ctx, query, offset, limit)
}
