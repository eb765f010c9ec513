package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	ID           int             `gorm:"primary_key" json:"id"`
	BusinessId   string          `gorm:"index;not null" json:"business_id" binding:"required"`
	Name         string          `gorm:"size:100;not null" json:"name" binding:"required"`
	Email        string          `gorm:"size:100" json:"email"`
	Phone        string          `gorm:"size:20" json:"phone"`
	Notes        string          `gorm:"type:text" json:"notes"`
	TotalRevenue decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"total_revenue"`
	IsActive     *bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (c Customer) GetId() int {
	return c.ID
}

func (c Customer) Active() bool {
	return c.IsActive != nil && *c.IsActive
}
