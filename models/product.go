package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID            int             `gorm:"primary_key" json:"id"`
	BusinessId    string          `gorm:"index;not null" json:"business_id" binding:"required"`
	Name          string          `gorm:"size:100;not null" json:"name" binding:"required"`
	Description   string          `gorm:"type:text" json:"description"`
	Sku           string          `gorm:"size:100" json:"sku"`
	SalesPrice    decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"sales_price"`
	CurrentStock  decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"current_stock"`
	CriticalLevel decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"critical_level"`
	TotalSold     decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"total_sold"`
	StockStatus   StockStatus     `gorm:"type:enum('in_stock','low_stock','out_of_stock');not null;default:'in_stock'" json:"stock_status"`
	IsActive      *bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p Product) GetId() int {
	return p.ID
}

// OutOfStock covers both the explicit flag and a literal zero stock count;
// the two can drift when imports bypass the status recalculation.
func (p Product) OutOfStock() bool {
	return p.StockStatus == StockStatusOutOfStock || p.CurrentStock.IsZero()
}

// DeadStock is inventory that has never sold despite being on hand.
func (p Product) DeadStock() bool {
	return p.TotalSold.IsZero() && p.CurrentStock.GreaterThan(decimal.Zero)
}
