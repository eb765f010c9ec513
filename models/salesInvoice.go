package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type SalesInvoice struct {
	ID                 int                `gorm:"primary_key" json:"id"`
	BusinessId         string             `gorm:"index;not null" json:"business_id" binding:"required"`
	CustomerId         int                `gorm:"index;not null" json:"customer_id" binding:"required"`
	BranchId           int                `gorm:"index" json:"branch_id"`
	InvoiceNumber      string             `gorm:"size:255;not null" json:"invoice_number" binding:"required"`
	ReferenceNumber    string             `gorm:"size:255;default:null" json:"reference_number"`
	InvoiceDate        time.Time          `gorm:"not null" json:"invoice_date" binding:"required"`
	InvoiceDueDate     *time.Time         `gorm:"index" json:"invoice_due_date"`
	CurrentStatus      SalesInvoiceStatus `gorm:"type:enum('Draft', 'Sent', 'Pending', 'Paid', 'Overdue', 'Cancelled');not null" json:"current_status" binding:"required"`
	InvoiceTotalAmount decimal.Decimal    `gorm:"type:decimal(20,4);default:0" json:"invoice_total_amount"`
	RemainingBalance   decimal.Decimal    `gorm:"type:decimal(20,4);default:0" json:"remaining_balance"`
	PaidDate           *time.Time         `json:"paid_date"`
	Notes              string             `gorm:"type:text;default:null" json:"notes"`
	CreatedAt          time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time          `gorm:"autoUpdateTime" json:"updated_at"`
}

func (inv SalesInvoice) GetId() int {
	return inv.ID
}

// IsConfirmed reports whether the invoice counts toward confirmed revenue:
// every non-draft, non-cancelled state.
func (inv SalesInvoice) IsConfirmed() bool {
	switch inv.CurrentStatus {
	case SalesInvoiceStatusDraft, SalesInvoiceStatusCancelled:
		return false
	}
	return true
}

// Outstanding is the uncollected portion: the remaining balance when one has
// been recorded, otherwise the full invoice amount.
func (inv SalesInvoice) Outstanding() decimal.Decimal {
	if inv.RemainingBalance.GreaterThan(decimal.Zero) {
		return inv.RemainingBalance
	}
	return inv.InvoiceTotalAmount
}

// IsOverdue treats explicit Overdue status and past-due Pending invoices the
// same way the collections screens do.
func (inv SalesInvoice) IsOverdue(asOf time.Time) bool {
	if inv.CurrentStatus == SalesInvoiceStatusOverdue {
		return true
	}
	if inv.CurrentStatus == SalesInvoiceStatusPending && inv.InvoiceDueDate != nil && inv.InvoiceDueDate.Before(asOf) {
		return true
	}
	return false
}
