package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	ID            uint            `gorm:"primaryKey;autoIncrement"           json:"id"`
	FirstName     string          `gorm:"not null;index:idx_customer_name"   json:"first_name"`
	LastName      string          `gorm:"not null;index:idx_customer_name"   json:"last_name"`
	Address       string          `gorm:"not null"                           json:"address"`
	ZipCode       string          `gorm:"not null"                           json:"zip_code"`
	PasswordHash  string          `gorm:"not null"                           json:"-"`
	WalletBalance decimal.Decimal `gorm:"type:decimal(12,2);not null"        json:"wallet_balance"`
	CreatedAt     time.Time       `json:"created_at"`
}

type Restaurant struct {
	ID            uint            `gorm:"primaryKey;autoIncrement"    json:"id"`
	Name          string          `gorm:"not null;index"              json:"name"`
	Address       string          `gorm:"not null"                    json:"address"`
	Description   string          `json:"description"`
	PasswordHash  string          `gorm:"not null"                    json:"-"`
	WalletBalance decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"wallet_balance"`
	CreatedAt     time.Time       `json:"created_at"`
}

type MenuItem struct {
	ID           uint            `gorm:"primaryKey;autoIncrement"    json:"id"`
	RestaurantID uint            `gorm:"index;not null"              json:"restaurant_id"`
	Name         string          `gorm:"not null"                    json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Image        *string         `json:"image,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Order only ever changes its Status after creation. Paid records whether the
// wallet transfer happened; an unpaid order is still part of both histories.
type Order struct {
	ID           uint        `gorm:"primaryKey;autoIncrement"  json:"id"`
	CustomerID   uint        `gorm:"index;not null"            json:"customer_id"`
	RestaurantID uint        `gorm:"index;not null"            json:"restaurant_id"`
	Status       OrderStatus `gorm:"type:varchar(32);not null" json:"status"`
	Paid         bool        `gorm:"not null;default:false"    json:"paid"`
	CreatedAt    time.Time   `gorm:"not null"                  json:"created_at"`
	Lines        []OrderLine `gorm:"foreignKey:OrderID"        json:"items"`
}

type OrderLine struct {
	ID         uint `gorm:"primaryKey"                 json:"-"`
	OrderID    uint `gorm:"index;not null"             json:"-"`
	MenuItemID uint `gorm:"not null"                   json:"item_id"`
	Quantity   uint `gorm:"not null;check:quantity>0"  json:"quantity"`
}

// PlatformWallet is a single-row table holding the operator's balance.
type PlatformWallet struct {
	ID      uint            `gorm:"primaryKey"`
	Balance decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

const PlatformWalletID = 1

func All() []any {
	return []any{&Customer{}, &Restaurant{}, &MenuItem{}, &Order{}, &OrderLine{}, &PlatformWallet{}}
}
