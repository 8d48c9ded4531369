package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Skotchmaster/lieferspatz/internal/models"
)

// CreateOrder inserts the order together with its lines.
func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order) error {
	return r.DB.WithContext(ctx).Create(order).Error
}

func (r *GormRepo) CountOrders(ctx context.Context) (int64, error) {
	var n int64
	if err := r.DB.WithContext(ctx).Model(&models.Order{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *GormRepo) MarkOrderPaid(ctx context.Context, orderID uint) error {
	return r.DB.WithContext(ctx).Model(&models.Order{}).Where("id = ?", orderID).Update("paid", true).Error
}

// GetRestaurantOrder looks the order up among the restaurant's own orders only.
func (r *GormRepo) GetRestaurantOrder(ctx context.Context, restaurantID, orderID uint) (*models.Order, error) {
	var o models.Order
	if err := r.DB.WithContext(ctx).
		Where("id = ? AND restaurant_id = ?", orderID, restaurantID).
		First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *GormRepo) UpdateOrderStatus(ctx context.Context, orderID uint, status models.OrderStatus) error {
	return r.DB.WithContext(ctx).Model(&models.Order{}).Where("id = ?", orderID).Update("status", status).Error
}

// CustomerOrders returns the customer's orders in creation order.
func (r *GormRepo) CustomerOrders(ctx context.Context, customerID uint) ([]models.Order, error) {
	var out []models.Order
	if err := r.DB.WithContext(ctx).
		Preload("Lines", orderLinesByID).
		Where("customer_id = ?", customerID).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GormRepo) RestaurantOrders(ctx context.Context, restaurantID uint) ([]models.Order, error) {
	var out []models.Order
	if err := r.DB.WithContext(ctx).
		Preload("Lines", orderLinesByID).
		Where("restaurant_id = ?", restaurantID).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func orderLinesByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}
