package finance

import (
	"time"

	"github.com/mosaicerp/mosaic_backend/models"
)

// Snapshot is one tenant's materialized row-sets for a report run. The
// engine never queries for these itself; the caller hands them over.
type Snapshot struct {
	Invoices     []models.SalesInvoice
	Expenses     []models.Expense
	Customers    []models.Customer
	Products     []models.Product
	Accounts     []models.MoneyAccount
	Transactions []models.AccountTransaction
}

// AnalyzeSnapshot runs all five extractors and analyzers over a snapshot.
// prev, when present, supplies the previous period for trend classification.
func AnalyzeSnapshot(curr Snapshot, prev *Snapshot, asOf time.Time, policy ScoringPolicy) DomainAnalyses {
	invoiceMetrics := ExtractInvoiceMetrics(curr.Invoices, asOf)
	expenseMetrics := ExtractExpenseMetrics(curr.Expenses, asOf)
	customerMetrics := ExtractCustomerMetrics(curr.Customers, curr.Invoices, asOf)
	inventoryMetrics := ExtractInventoryMetrics(curr.Products, asOf)
	cashMetrics := ExtractCashFlowMetrics(curr.Accounts, curr.Transactions, asOf)

	var prevInvoice *InvoiceMetrics
	var prevExpense *ExpenseMetrics
	var prevCustomer *CustomerMetrics
	var prevInventory *InventoryMetrics
	var prevCash *CashFlowMetrics
	if prev != nil {
		prevAsOf := asOf.AddDate(0, -1, 0)
		im := ExtractInvoiceMetrics(prev.Invoices, prevAsOf)
		em := ExtractExpenseMetrics(prev.Expenses, prevAsOf)
		cm := ExtractCustomerMetrics(prev.Customers, prev.Invoices, prevAsOf)
		nm := ExtractInventoryMetrics(prev.Products, prevAsOf)
		fm := ExtractCashFlowMetrics(prev.Accounts, prev.Transactions, prevAsOf)
		prevInvoice, prevExpense, prevCustomer, prevInventory, prevCash = &im, &em, &cm, &nm, &fm
	}

	return DomainAnalyses{
		Invoices:  Analyze[InvoiceMetrics](InvoiceAnalyzer{Policy: policy.Invoice}, invoiceMetrics, prevInvoice),
		Expenses:  Analyze[ExpenseMetrics](ExpenseAnalyzer{Policy: policy.Expense}, expenseMetrics, prevExpense),
		Customers: Analyze[CustomerMetrics](CustomerAnalyzer{Policy: policy.Customer}, customerMetrics, prevCustomer),
		Inventory: Analyze[InventoryMetrics](InventoryAnalyzer{Policy: policy.Inventory}, inventoryMetrics, prevInventory),
		CashFlow:  Analyze[CashFlowMetrics](CashFlowAnalyzer{Policy: policy.CashFlow}, cashMetrics, prevCash),
	}
}
