package reports

import (
	"context"
	"time"

	"github.com/mosaicerp/mosaic_backend/config"
	"github.com/mosaicerp/mosaic_backend/finance"
	"golang.org/x/sync/errgroup"
)

// transactionHistoryMonths bounds the cash movement fetch; the forecast only
// ever looks at the trailing three month buckets.
const transactionHistoryMonths = 6

// fetchSnapshot materializes one tenant's row-sets with one read per domain.
// The five reads are independent, so they fan out and join before scoring.
func fetchSnapshot(ctx context.Context, businessId string, asOf time.Time) (finance.Snapshot, error) {
	db := config.GetDB()
	var snap finance.Snapshot

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return db.WithContext(gctx).
			Where("business_id = ?", businessId).
			Order("invoice_date").
			Find(&snap.Invoices).Error
	})
	g.Go(func() error {
		return db.WithContext(gctx).
			Where("business_id = ?", businessId).
			Order("expense_date").
			Find(&snap.Expenses).Error
	})
	g.Go(func() error {
		return db.WithContext(gctx).
			Where("business_id = ?", businessId).
			Find(&snap.Customers).Error
	})
	g.Go(func() error {
		return db.WithContext(gctx).
			Where("business_id = ?", businessId).
			Find(&snap.Products).Error
	})
	g.Go(func() error {
		if err := db.WithContext(gctx).
			Where("business_id = ?", businessId).
			Find(&snap.Accounts).Error; err != nil {
			return err
		}
		return db.WithContext(gctx).
			Where("business_id = ? AND transaction_date >= ?", businessId, asOf.AddDate(0, -transactionHistoryMonths, 0)).
			Order("transaction_date").
			Find(&snap.Transactions).Error
	})

	if err := g.Wait(); err != nil {
		return finance.Snapshot{}, err
	}
	return snap, nil
}

// previousSnapshot derives the prior-period view by filtering the already
// fetched rows to everything dated at or before the cutoff. Products and
// accounts carry no usable history, so they pass through unchanged and their
// trends read as stable.
func previousSnapshot(snap finance.Snapshot, cutoff time.Time) finance.Snapshot {
	prev := finance.Snapshot{
		Products: snap.Products,
		Accounts: snap.Accounts,
	}
	for _, inv := range snap.Invoices {
		if !inv.InvoiceDate.After(cutoff) {
			prev.Invoices = append(prev.Invoices, inv)
		}
	}
	for _, e := range snap.Expenses {
		if !e.ExpenseDate.After(cutoff) {
			prev.Expenses = append(prev.Expenses, e)
		}
	}
	for _, c := range snap.Customers {
		if !c.CreatedAt.After(cutoff) {
			prev.Customers = append(prev.Customers, c)
		}
	}
	for _, t := range snap.Transactions {
		if !t.TransactionDate.After(cutoff) {
			prev.Transactions = append(prev.Transactions, t)
		}
	}
	return prev
}
