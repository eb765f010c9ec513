// seed-dev loads a demo tenant with rows for all five analytics domains so
// the report endpoints return meaningful output on a fresh database.
//
// Usage:
//   DB_USER=... DB_PASSWORD=... DB_HOST=... DB_PORT=... DB_NAME=... go run ./cmd/seed-dev
//
// Prints a bearer token for the demo tenant on success.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mosaicerp/mosaic_backend/config"
	"github.com/mosaicerp/mosaic_backend/models"
	"github.com/mosaicerp/mosaic_backend/utils"
	"github.com/shopspring/decimal"
)

const demoBusinessId = "demo-business"

func main() {
	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil). Set DB_* env vars.")
		os.Exit(1)
	}

	if err := db.AutoMigrate(
		&models.SalesInvoice{},
		&models.Expense{},
		&models.Customer{},
		&models.Product{},
		&models.MoneyAccount{},
		&models.AccountTransaction{},
	); err != nil {
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}

	now := time.Now()
	active := true

	customers := []models.Customer{
		{BusinessId: demoBusinessId, Name: "Aurora Trading", TotalRevenue: decimal.NewFromInt(48000), IsActive: &active},
		{BusinessId: demoBusinessId, Name: "Beacon Retail", TotalRevenue: decimal.NewFromInt(21500), IsActive: &active},
		{BusinessId: demoBusinessId, Name: "Cascade Foods", TotalRevenue: decimal.NewFromInt(9800), IsActive: &active},
	}
	if err := db.Create(&customers).Error; err != nil {
		fail("customers", err)
	}

	dueSoon := now.AddDate(0, 0, 14)
	duePast := now.AddDate(0, 0, -21)
	paidAt := now.AddDate(0, 0, -9)
	invoices := []models.SalesInvoice{
		{BusinessId: demoBusinessId, CustomerId: customers[0].ID, InvoiceNumber: "INV-0001", InvoiceDate: now.AddDate(0, 0, -40), InvoiceDueDate: &duePast, CurrentStatus: models.SalesInvoiceStatusOverdue, InvoiceTotalAmount: decimal.NewFromInt(5200), RemainingBalance: decimal.NewFromInt(5200)},
		{BusinessId: demoBusinessId, CustomerId: customers[1].ID, InvoiceNumber: "INV-0002", InvoiceDate: now.AddDate(0, 0, -15), InvoiceDueDate: &dueSoon, CurrentStatus: models.SalesInvoiceStatusSent, InvoiceTotalAmount: decimal.NewFromInt(3100), RemainingBalance: decimal.NewFromInt(3100)},
		{BusinessId: demoBusinessId, CustomerId: customers[0].ID, InvoiceNumber: "INV-0003", InvoiceDate: now.AddDate(0, 0, -20), InvoiceDueDate: &dueSoon, CurrentStatus: models.SalesInvoiceStatusPaid, InvoiceTotalAmount: decimal.NewFromInt(7600), PaidDate: &paidAt},
		{BusinessId: demoBusinessId, CustomerId: customers[2].ID, InvoiceNumber: "INV-0004", InvoiceDate: now.AddDate(0, 0, -3), CurrentStatus: models.SalesInvoiceStatusDraft, InvoiceTotalAmount: decimal.NewFromInt(1900)},
	}
	if err := db.Create(&invoices).Error; err != nil {
		fail("invoices", err)
	}

	remaining := decimal.NewFromInt(450)
	expenses := []models.Expense{
		{BusinessId: demoBusinessId, ExpenseNumber: "EXP-0001", ExpenseDate: now.AddDate(0, 0, -5), Category: "Rent", Amount: decimal.NewFromInt(2400), CurrentStatus: models.ExpenseStatusPaid},
		{BusinessId: demoBusinessId, ExpenseNumber: "EXP-0002", ExpenseDate: now.AddDate(0, 0, -12), Category: "Logistics", Amount: decimal.NewFromInt(900), CurrentStatus: models.ExpenseStatusPartialPaid, RemainingBalance: &remaining},
		{BusinessId: demoBusinessId, ExpenseNumber: "EXP-0003", ExpenseDate: now.AddDate(0, -1, -2), Category: "Marketing", Amount: decimal.NewFromInt(1500), CurrentStatus: models.ExpenseStatusPaid},
	}
	if err := db.Create(&expenses).Error; err != nil {
		fail("expenses", err)
	}

	products := []models.Product{
		{BusinessId: demoBusinessId, Name: "Filter Cartridge", Sku: "FC-100", SalesPrice: decimal.NewFromInt(35), CurrentStock: decimal.NewFromInt(120), CriticalLevel: decimal.NewFromInt(20), TotalSold: decimal.NewFromInt(340), StockStatus: models.StockStatusInStock, IsActive: &active},
		{BusinessId: demoBusinessId, Name: "Pump Unit", Sku: "PU-200", SalesPrice: decimal.NewFromInt(410), CurrentStock: decimal.Zero, CriticalLevel: decimal.NewFromInt(5), TotalSold: decimal.NewFromInt(58), StockStatus: models.StockStatusOutOfStock, IsActive: &active},
		{BusinessId: demoBusinessId, Name: "Legacy Valve", Sku: "LV-300", SalesPrice: decimal.NewFromInt(75), CurrentStock: decimal.NewFromInt(44), CriticalLevel: decimal.NewFromInt(10), TotalSold: decimal.Zero, StockStatus: models.StockStatusInStock, IsActive: &active},
	}
	if err := db.Create(&products).Error; err != nil {
		fail("products", err)
	}

	accounts := []models.MoneyAccount{
		{BusinessId: demoBusinessId, AccountType: models.MoneyAccountTypeBank, AccountName: "Operating Account", OpeningBalance: decimal.NewFromInt(10000), CurrentBalance: decimal.NewFromInt(18400), IsActive: &active},
		{BusinessId: demoBusinessId, AccountType: models.MoneyAccountTypeCash, AccountName: "Till", OpeningBalance: decimal.NewFromInt(500), CurrentBalance: decimal.NewFromInt(750), IsActive: &active},
	}
	if err := db.Create(&accounts).Error; err != nil {
		fail("accounts", err)
	}

	transactions := []models.AccountTransaction{
		{BusinessId: demoBusinessId, MoneyAccountId: accounts[0].ID, TransactionType: models.AccountTransactionTypeIncoming, TransactionDate: now.AddDate(0, 0, -8), Amount: decimal.NewFromInt(7600), Description: "INV-0003 payment"},
		{BusinessId: demoBusinessId, MoneyAccountId: accounts[0].ID, TransactionType: models.AccountTransactionTypeOutgoing, TransactionDate: now.AddDate(0, 0, -5), Amount: decimal.NewFromInt(2400), Description: "Rent"},
		{BusinessId: demoBusinessId, MoneyAccountId: accounts[0].ID, TransactionType: models.AccountTransactionTypeIncoming, TransactionDate: now.AddDate(0, -1, -10), Amount: decimal.NewFromInt(5300), Description: "Prior month receipts"},
		{BusinessId: demoBusinessId, MoneyAccountId: accounts[0].ID, TransactionType: models.AccountTransactionTypeOutgoing, TransactionDate: now.AddDate(0, -1, -6), Amount: decimal.NewFromInt(3100), Description: "Prior month costs"},
	}
	if err := db.Create(&transactions).Error; err != nil {
		fail("transactions", err)
	}

	token, err := utils.JwtGenerate(1, demoBusinessId, "Owner")
	if err != nil {
		fail("token", err)
	}
	fmt.Printf("seeded business %q\nbearer token:\n%s\n", demoBusinessId, token)
}

func fail(what string, err error) {
	fmt.Fprintf(os.Stderr, "failed to seed %s: %v\n", what, err)
	os.Exit(1)
}
