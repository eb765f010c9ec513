package finance

import (
	"fmt"
	"sort"
	"time"

	"github.com/mosaicerp/mosaic_backend/models"
	"github.com/shopspring/decimal"
)

// DebtorBalance is one customer's outstanding overdue exposure.
type DebtorBalance struct {
	CustomerId        int             `json:"customer_id"`
	InvoiceCount      int             `json:"invoice_count"`
	OutstandingAmount decimal.Decimal `json:"outstanding_amount"`
}

// InvoiceMetrics is the receivables aggregate. Cancelled invoices are
// excluded from every field, counts included.
type InvoiceMetrics struct {
	TotalCount        int             `json:"total_count"`
	ConfirmedCount    int             `json:"confirmed_count"`
	DraftCount        int             `json:"draft_count"`
	PaidCount         int             `json:"paid_count"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	ConfirmedRevenue  decimal.Decimal `json:"confirmed_revenue"`
	DraftRevenue      decimal.Decimal `json:"draft_revenue"`
	OverdueCount      int             `json:"overdue_count"`
	OverdueAmount     decimal.Decimal `json:"overdue_amount"`
	AvgCollectionDays float64         `json:"avg_collection_days"`
	PaidOnTimeRate    float64         `json:"paid_on_time_rate"`
	TopDebtors        []DebtorBalance `json:"top_debtors"`
}

const topListSize = 5

// ExtractInvoiceMetrics aggregates a tenant's invoice rows as of a reference
// instant. With no paid invoices the collection average defaults to 0 and the
// on-time rate to 100.
func ExtractInvoiceMetrics(invoices []models.SalesInvoice, asOf time.Time) InvoiceMetrics {
	m := InvoiceMetrics{
		TotalRevenue:     decimal.Zero,
		ConfirmedRevenue: decimal.Zero,
		DraftRevenue:     decimal.Zero,
		OverdueAmount:    decimal.Zero,
		TopDebtors:       []DebtorBalance{},
	}

	var collectionDays float64
	var paidOnTime int
	debtors := map[int]*DebtorBalance{}

	for _, inv := range invoices {
		if inv.CurrentStatus == models.SalesInvoiceStatusCancelled {
			continue
		}
		m.TotalCount++
		amount := inv.InvoiceTotalAmount
		m.TotalRevenue = m.TotalRevenue.Add(amount)

		if inv.CurrentStatus == models.SalesInvoiceStatusDraft {
			m.DraftCount++
			m.DraftRevenue = m.DraftRevenue.Add(amount)
		} else {
			m.ConfirmedCount++
			m.ConfirmedRevenue = m.ConfirmedRevenue.Add(amount)
		}

		if inv.IsOverdue(asOf) {
			m.OverdueCount++
			outstanding := inv.Outstanding()
			m.OverdueAmount = m.OverdueAmount.Add(outstanding)
			d, ok := debtors[inv.CustomerId]
			if !ok {
				d = &DebtorBalance{CustomerId: inv.CustomerId, OutstandingAmount: decimal.Zero}
				debtors[inv.CustomerId] = d
			}
			d.InvoiceCount++
			d.OutstandingAmount = d.OutstandingAmount.Add(outstanding)
		}

		if inv.CurrentStatus == models.SalesInvoiceStatusPaid && inv.PaidDate != nil {
			m.PaidCount++
			collectionDays += inv.PaidDate.Sub(inv.CreatedAt).Hours() / 24
			if inv.InvoiceDueDate == nil || !inv.PaidDate.After(*inv.InvoiceDueDate) {
				paidOnTime++
			}
		}
	}

	if m.PaidCount > 0 {
		m.AvgCollectionDays = collectionDays / float64(m.PaidCount)
		m.PaidOnTimeRate = float64(paidOnTime) / float64(m.PaidCount) * 100
	} else {
		m.AvgCollectionDays = 0
		m.PaidOnTimeRate = 100
	}

	for _, d := range debtors {
		m.TopDebtors = append(m.TopDebtors, *d)
	}
	sort.Slice(m.TopDebtors, func(i, j int) bool {
		if !m.TopDebtors[i].OutstandingAmount.Equal(m.TopDebtors[j].OutstandingAmount) {
			return m.TopDebtors[i].OutstandingAmount.GreaterThan(m.TopDebtors[j].OutstandingAmount)
		}
		return m.TopDebtors[i].CustomerId < m.TopDebtors[j].CustomerId
	})
	if len(m.TopDebtors) > topListSize {
		m.TopDebtors = m.TopDebtors[:topListSize]
	}

	return m
}

// InvoiceAnalyzer scores and narrates the receivables aggregate.
type InvoiceAnalyzer struct {
	Policy InvoicePolicy
}

// Score starts from the baseline and applies the policy deltas. The trend
// follows confirmed revenue against the previous period.
func (a InvoiceAnalyzer) Score(curr InvoiceMetrics, prev *InvoiceMetrics) ModuleHealth {
	p := a.Policy
	score := p.Baseline

	if curr.TotalCount > 0 && float64(curr.OverdueCount) > p.OverdueCountRatio*float64(curr.TotalCount) {
		score -= p.OverdueCountPenalty
	}
	if curr.AvgCollectionDays > p.SlowCollectionDays {
		score -= p.SlowCollectionPenalty
	}
	if curr.PaidCount > 0 && curr.PaidOnTimeRate > p.OnTimeRateBonusMin {
		score += p.OnTimeRateBonus
	}

	trend := TrendStable
	if prev != nil {
		trend = trendBetween(curr.ConfirmedRevenue.InexactFloat64(), prev.ConfirmedRevenue.InexactFloat64())
		if trend == TrendUp {
			score += p.RevenueGrowthBonus
		}
	}

	return moduleHealth(score, trend)
}

func (a InvoiceAnalyzer) Insights(curr InvoiceMetrics) []Insight {
	var insights []Insight

	if curr.OverdueCount > 0 {
		severity := InsightWarning
		if curr.ConfirmedRevenue.GreaterThan(decimal.Zero) &&
			curr.OverdueAmount.GreaterThan(curr.ConfirmedRevenue.Mul(decimal.NewFromFloat(0.25))) {
			severity = InsightDanger
		}
		insights = append(insights, Insight{
			Type:        severity,
			Title:       "Overdue invoices",
			Description: fmt.Sprintf("%d invoices totalling %s are past due", curr.OverdueCount, curr.OverdueAmount.StringFixed(2)),
			Metric:      curr.OverdueAmount.StringFixed(2),
			Action:      "Follow up on overdue invoices",
		})
	}
	if curr.PaidCount > 0 && curr.AvgCollectionDays > 60 {
		insights = append(insights, Insight{
			Type:        InsightWarning,
			Title:       "Slow collections",
			Description: fmt.Sprintf("Invoices take %.0f days on average to collect", curr.AvgCollectionDays),
			Metric:      fmt.Sprintf("%.0f", curr.AvgCollectionDays),
			Action:      "Tighten payment terms or send reminders earlier",
		})
	}
	if curr.PaidCount > 0 && curr.PaidOnTimeRate > 80 {
		insights = append(insights, Insight{
			Type:        InsightSuccess,
			Title:       "Healthy payment discipline",
			Description: fmt.Sprintf("%.0f%% of paid invoices were settled on time", curr.PaidOnTimeRate),
			Metric:      fmt.Sprintf("%.0f", curr.PaidOnTimeRate),
		})
	}
	if curr.DraftCount > 0 && curr.DraftRevenue.GreaterThan(curr.ConfirmedRevenue) {
		insights = append(insights, Insight{
			Type:        InsightInfo,
			Title:       "Large draft pipeline",
			Description: fmt.Sprintf("Draft invoices (%s) exceed confirmed revenue", curr.DraftRevenue.StringFixed(2)),
			Action:      "Send drafts to realize pending revenue",
		})
	}

	return insights
}
