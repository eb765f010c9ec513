package models

type SalesInvoiceStatus string

const (
	SalesInvoiceStatusDraft     SalesInvoiceStatus = "Draft"
	SalesInvoiceStatusSent      SalesInvoiceStatus = "Sent"
	SalesInvoiceStatusPending   SalesInvoiceStatus = "Pending"
	SalesInvoiceStatusPaid      SalesInvoiceStatus = "Paid"
	SalesInvoiceStatusOverdue   SalesInvoiceStatus = "Overdue"
	SalesInvoiceStatusCancelled SalesInvoiceStatus = "Cancelled"
)

type ExpenseStatus string

const (
	ExpenseStatusUnpaid      ExpenseStatus = "Unpaid"
	ExpenseStatusPartialPaid ExpenseStatus = "Partial Paid"
	ExpenseStatusPaid        ExpenseStatus = "Paid"
)

type StockStatus string

const (
	StockStatusInStock    StockStatus = "in_stock"
	StockStatusLowStock   StockStatus = "low_stock"
	StockStatusOutOfStock StockStatus = "out_of_stock"
)

type MoneyAccountType string

const (
	MoneyAccountTypeCash MoneyAccountType = "cash"
	MoneyAccountTypeBank MoneyAccountType = "bank"
	MoneyAccountTypeCard MoneyAccountType = "card"
)

type AccountTransactionType string

const (
	AccountTransactionTypeIncoming AccountTransactionType = "Incoming"
	AccountTransactionTypeOutgoing AccountTransactionType = "Outgoing"
)
