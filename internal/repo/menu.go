package repo

import (
	"context"
	"strings"

	"github.com/Skotchmaster/lieferspatz/internal/models"
)

func (r *GormRepo) CreateMenuItem(ctx context.Context, item *models.MenuItem) error {
	return r.DB.WithContext(ctx).Create(item).Error
}

// MenuItemsByID returns the referenced items keyed by id; ids that do not
// exist are simply missing from the map.
func (r *GormRepo) MenuItemsByID(ctx context.Context, ids []uint) (map[uint]models.MenuItem, error) {
	out := make(map[uint]models.MenuItem, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var items []models.MenuItem
	if err := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, err
	}
	for _, it := range items {
		out[it.ID] = it
	}
	return out, nil
}

func (r *GormRepo) ListMenu(ctx context.Context, restaurantID uint, offset, limit int) (int64, []models.MenuItem, error) {
	q := r.DB.WithContext(ctx).Model(&models.MenuItem{}).Where("restaurant_id = ?", restaurantID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, nil, err
	}

	items := make([]models.MenuItem, 0, limit)
	if err := r.DB.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error; err != nil {
		return 0, nil, err
	}
	return total, items, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// SearchMenuItems is the database fallback used when no search index is
// configured: a case-insensitive substring match on name and description.
func (r *GormRepo) SearchMenuItems(ctx context.Context, q string, offset, limit int) (int64, []models.MenuItem, error) {
	pattern := "%" + strings.ToLower(escapeLike(q)) + "%"
	where := `LOWER(name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\'`

	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.MenuItem{}).Where(where, pattern, pattern).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	items := make([]models.MenuItem, 0, limit)
	if err := r.DB.WithContext(ctx).
		Where(where, pattern, pattern).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error; err != nil {
		return 0, nil, err
	}
	return total, items, nil
}
