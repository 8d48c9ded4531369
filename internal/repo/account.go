package repo

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/lieferspatz/internal/models"
)

func (r *GormRepo) CreateCustomer(ctx context.Context, c *models.Customer) error {
	return r.DB.WithContext(ctx).Create(c).Error
}

func (r *GormRepo) GetCustomer(ctx context.Context, id uint) (*models.Customer, error) {
	var c models.Customer
	if err := r.DB.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormRepo) FindCustomersByName(ctx context.Context, firstName, lastName string) ([]models.Customer, error) {
	var out []models.Customer
	if err := r.DB.WithContext(ctx).
		Where("first_name = ? AND last_name = ?", firstName, lastName).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GormRepo) SetCustomerBalance(ctx context.Context, id uint, balance decimal.Decimal) error {
	return r.DB.WithContext(ctx).Model(&models.Customer{}).
		Where("id = ?", id).
		Update("wallet_balance", balance).Error
}

func (r *GormRepo) CreateRestaurant(ctx context.Context, rest *models.Restaurant) error {
	return r.DB.WithContext(ctx).Create(rest).Error
}

func (r *GormRepo) GetRestaurant(ctx context.Context, id uint) (*models.Restaurant, error) {
	var rest models.Restaurant
	if err := r.DB.WithContext(ctx).First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *GormRepo) FindRestaurantsByName(ctx context.Context, name string) ([]models.Restaurant, error) {
	var out []models.Restaurant
	if err := r.DB.WithContext(ctx).Where("name = ?", name).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GormRepo) SetRestaurantBalance(ctx context.Context, id uint, balance decimal.Decimal) error {
	return r.DB.WithContext(ctx).Model(&models.Restaurant{}).
		Where("id = ?", id).
		Update("wallet_balance", balance).Error
}

// RestaurantNames maps ids to names; unknown ids are absent from the result.
func (r *GormRepo) RestaurantNames(ctx context.Context, ids []uint) (map[uint]string, error) {
	out := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []models.Restaurant
	if err := r.DB.WithContext(ctx).Select("id", "name").Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.ID] = row.Name
	}
	return out, nil
}

func (r *GormRepo) PlatformBalance(ctx context.Context) (decimal.Decimal, error) {
	var w models.PlatformWallet
	if err := r.DB.WithContext(ctx).First(&w, models.PlatformWalletID).Error; err != nil {
		return decimal.Zero, err
	}
	return w.Balance, nil
}
