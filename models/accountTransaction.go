package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type AccountTransaction struct {
	ID              int                    `gorm:"primary_key" json:"id"`
	BusinessId      string                 `gorm:"index;not null" json:"business_id"`
	MoneyAccountId  int                    `gorm:"index;not null" json:"money_account_id"`
	TransactionType AccountTransactionType `gorm:"type:enum('Incoming','Outgoing');not null" json:"transaction_type"`
	TransactionDate time.Time              `gorm:"index;not null" json:"transaction_date"`
	Amount          decimal.Decimal        `gorm:"type:decimal(20,4);default:0" json:"amount"`
	Description     string                 `gorm:"type:text" json:"description"`
	ReferenceNumber string                 `gorm:"size:255" json:"reference_number"`
	CreatedAt       time.Time              `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time              `gorm:"autoUpdateTime" json:"updated_at"`
}

func (t AccountTransaction) GetId() int {
	return t.ID
}
