package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type MoneyAccount struct {
	ID             int              `gorm:"primary_key" json:"id"`
	BusinessId     string           `gorm:"index;not null" json:"business_id"`
	AccountType    MoneyAccountType `gorm:"type:enum('cash','bank','card');default:'cash';size:12;not null" json:"account_type" binding:"required"`
	AccountName    string           `gorm:"index;size:100;not null" json:"account_name" binding:"required"`
	AccountCode    string           `gorm:"size:50" json:"account_code"`
	AccountNumber  string           `gorm:"size:50" json:"account_number"`
	BankName       string           `gorm:"size:100" json:"bank_name"`
	OpeningBalance decimal.Decimal  `gorm:"type:decimal(20,4);default:0" json:"opening_balance"`
	CurrentBalance decimal.Decimal  `gorm:"type:decimal(20,4);default:0" json:"current_balance"`
	Description    string           `gorm:"type:text" json:"description"`
	IsActive       *bool            `gorm:"not null;default:true" json:"is_active"`
	CreatedAt      time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ma MoneyAccount) GetId() int {
	return ma.ID
}

// Active accounts are the only ones whose balance counts as cash on hand.
func (ma MoneyAccount) Active() bool {
	return ma.IsActive != nil && *ma.IsActive
}
