package finance

import (
	"fmt"
	"sort"
	"time"

	"github.com/mosaicerp/mosaic_backend/models"
	"github.com/shopspring/decimal"
)

type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

type ExpenseMetrics struct {
	TotalCount           int             `json:"total_count"`
	TotalExpenses        decimal.Decimal `json:"total_expenses"`
	ByCategory           []CategoryTotal `json:"by_category"`
	CurrentMonthTotal    decimal.Decimal `json:"current_month_total"`
	PreviousMonthTotal   decimal.Decimal `json:"previous_month_total"`
	MonthOverMonthChange float64         `json:"month_over_month_change"`
	DailyBurnRate        decimal.Decimal `json:"daily_burn_rate"`
	UnpaidTotal          decimal.Decimal `json:"unpaid_total"`
}

// ExtractExpenseMetrics aggregates a tenant's expense rows as of a reference
// instant. Month-over-month defaults to 0% when the previous month had no
// spend.
func ExtractExpenseMetrics(expenses []models.Expense, asOf time.Time) ExpenseMetrics {
	m := ExpenseMetrics{
		TotalExpenses:      decimal.Zero,
		ByCategory:         []CategoryTotal{},
		CurrentMonthTotal:  decimal.Zero,
		PreviousMonthTotal: decimal.Zero,
		DailyBurnRate:      decimal.Zero,
		UnpaidTotal:        decimal.Zero,
	}

	currYear, currMonth, _ := asOf.Date()
	prevMonthRef := time.Date(currYear, currMonth, 1, 0, 0, 0, 0, asOf.Location()).AddDate(0, -1, 0)
	prevYear, prevMonth, _ := prevMonthRef.Date()
	trailingStart := asOf.AddDate(0, 0, -30)

	byCategory := map[string]decimal.Decimal{}
	trailing30 := decimal.Zero

	for _, e := range expenses {
		m.TotalCount++
		m.TotalExpenses = m.TotalExpenses.Add(e.Amount)

		category := e.Category
		if category == "" {
			category = "Uncategorized"
		}
		byCategory[category] = byCategory[category].Add(e.Amount)

		y, mo, _ := e.ExpenseDate.Date()
		if y == currYear && mo == currMonth {
			m.CurrentMonthTotal = m.CurrentMonthTotal.Add(e.Amount)
		} else if y == prevYear && mo == prevMonth {
			m.PreviousMonthTotal = m.PreviousMonthTotal.Add(e.Amount)
		}

		if e.ExpenseDate.After(trailingStart) && !e.ExpenseDate.After(asOf) {
			trailing30 = trailing30.Add(e.Amount)
		}

		if e.CurrentStatus == models.ExpenseStatusUnpaid || e.CurrentStatus == models.ExpenseStatusPartialPaid {
			m.UnpaidTotal = m.UnpaidTotal.Add(e.OutstandingAmount())
		}
	}

	if m.PreviousMonthTotal.GreaterThan(decimal.Zero) {
		m.MonthOverMonthChange = m.CurrentMonthTotal.Sub(m.PreviousMonthTotal).
			Div(m.PreviousMonthTotal).Mul(decimal.NewFromInt(100)).InexactFloat64()
	}

	m.DailyBurnRate = trailing30.Div(decimal.NewFromInt(30)).Round(4)

	for category, amount := range byCategory {
		m.ByCategory = append(m.ByCategory, CategoryTotal{Category: category, Amount: amount})
	}
	sort.Slice(m.ByCategory, func(i, j int) bool {
		if !m.ByCategory[i].Amount.Equal(m.ByCategory[j].Amount) {
			return m.ByCategory[i].Amount.GreaterThan(m.ByCategory[j].Amount)
		}
		return m.ByCategory[i].Category < m.ByCategory[j].Category
	})

	return m
}

type ExpenseAnalyzer struct {
	Policy ExpensePolicy
}

// Score applies the spend-control deltas; the trend follows the current
// month's total against the previous aggregate's.
func (a ExpenseAnalyzer) Score(curr ExpenseMetrics, prev *ExpenseMetrics) ModuleHealth {
	p := a.Policy
	score := p.Baseline

	if curr.MonthOverMonthChange > p.SpikePct {
		score -= p.SpikePenalty
	}
	if curr.TotalExpenses.GreaterThan(decimal.Zero) &&
		curr.UnpaidTotal.GreaterThan(curr.TotalExpenses.Mul(decimal.NewFromFloat(p.UnpaidRatio))) {
		score -= p.UnpaidPenalty
	}
	if curr.TotalCount > 0 && curr.MonthOverMonthChange < 0 {
		score += p.DecliningBonus
	}

	trend := TrendStable
	if prev != nil {
		trend = trendBetween(curr.CurrentMonthTotal.InexactFloat64(), prev.CurrentMonthTotal.InexactFloat64())
	}

	return moduleHealth(score, trend)
}

func (a ExpenseAnalyzer) Insights(curr ExpenseMetrics) []Insight {
	var insights []Insight

	// Strictly greater: a month-over-month change of exactly the spike
	// threshold is not a spike.
	if curr.MonthOverMonthChange > a.Policy.SpikePct {
		insights = append(insights, Insight{
			Type:        InsightDanger,
			Title:       "Expense spike",
			Description: fmt.Sprintf("Spending is up %.1f%% versus last month", curr.MonthOverMonthChange),
			Metric:      fmt.Sprintf("%.1f", curr.MonthOverMonthChange),
			Action:      "Review this month's spending against budget",
		})
	}
	if curr.UnpaidTotal.GreaterThan(decimal.Zero) {
		insights = append(insights, Insight{
			Type:        InsightWarning,
			Title:       "Unpaid expenses",
			Description: fmt.Sprintf("%s in expenses remains unpaid or partially paid", curr.UnpaidTotal.StringFixed(2)),
			Metric:      curr.UnpaidTotal.StringFixed(2),
			Action:      "Schedule payments to avoid late fees",
		})
	}
	if curr.TotalCount > 0 && curr.MonthOverMonthChange < 0 {
		insights = append(insights, Insight{
			Type:        InsightSuccess,
			Title:       "Spending down",
			Description: fmt.Sprintf("Spending fell %.1f%% versus last month", -curr.MonthOverMonthChange),
		})
	}
	if curr.DailyBurnRate.GreaterThan(decimal.Zero) {
		insights = append(insights, Insight{
			Type:        InsightInfo,
			Title:       "Daily burn rate",
			Description: fmt.Sprintf("Trailing 30-day spend averages %s per day", curr.DailyBurnRate.StringFixed(2)),
			Metric:      curr.DailyBurnRate.StringFixed(2),
		})
	}

	return insights
}
