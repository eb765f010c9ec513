package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Expense struct {
	ID               int              `gorm:"primary_key" json:"id"`
	BusinessId       string           `gorm:"index;not null" json:"business_id" binding:"required"`
	BranchId         int              `gorm:"index" json:"branch_id"`
	ExpenseDate      time.Time        `gorm:"not null;index" json:"expense_date" binding:"required"`
	ExpenseNumber    string           `gorm:"size:255;not null" json:"expense_number" binding:"required"`
	Category         string           `gorm:"size:100;not null;default:'Uncategorized'" json:"category"`
	ReferenceNumber  string           `gorm:"size:255" json:"reference_number"`
	Notes            string           `gorm:"type:text" json:"notes"`
	Amount           decimal.Decimal  `gorm:"type:decimal(20,4);default:0" json:"amount"`
	RemainingBalance *decimal.Decimal `gorm:"type:decimal(20,4)" json:"remaining_balance"`
	CurrentStatus    ExpenseStatus    `gorm:"type:enum('Unpaid', 'Partial Paid', 'Paid');not null;default:'Unpaid'" json:"current_status"`
	CreatedAt        time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (e Expense) GetId() int {
	return e.ID
}

// OutstandingAmount is the unpaid portion: the remaining balance when one has
// been recorded, otherwise the full amount.
func (e Expense) OutstandingAmount() decimal.Decimal {
	if e.RemainingBalance != nil {
		return *e.RemainingBalance
	}
	return e.Amount
}
