package finance

import (
	"fmt"
	"sort"
	"time"

	"github.com/mosaicerp/mosaic_backend/models"
	"github.com/shopspring/decimal"
)

type MonthlyCashFlow struct {
	Month   string          `json:"month"` // "2006-01"
	Inflow  decimal.Decimal `json:"inflow"`
	Outflow decimal.Decimal `json:"outflow"`
}

type CashFlowMetrics struct {
	CashOnHand         decimal.Decimal   `json:"cash_on_hand"`
	ActiveAccountCount int               `json:"active_account_count"`
	Inflow30d          decimal.Decimal   `json:"inflow_30d"`
	Outflow30d         decimal.Decimal   `json:"outflow_30d"`
	NetFlow30d         decimal.Decimal   `json:"net_flow_30d"`
	LiquidityRatio     float64           `json:"liquidity_ratio"`
	MonthlyHistory     []MonthlyCashFlow `json:"monthly_history"`
}

// MaxLiquidityRatio is the zero-outflow fallback: a business that spends
// nothing is treated as maximally liquid.
const MaxLiquidityRatio = 10

const monthKeyLayout = "2006-01"

// ExtractCashFlowMetrics aggregates cash position and movement. Cash on hand
// sums active account balances only; the liquidity ratio divides it by a
// normalized 90-day projected outflow.
func ExtractCashFlowMetrics(accounts []models.MoneyAccount, transactions []models.AccountTransaction, asOf time.Time) CashFlowMetrics {
	m := CashFlowMetrics{
		CashOnHand:     decimal.Zero,
		Inflow30d:      decimal.Zero,
		Outflow30d:     decimal.Zero,
		NetFlow30d:     decimal.Zero,
		MonthlyHistory: []MonthlyCashFlow{},
	}

	for _, a := range accounts {
		if !a.Active() {
			continue
		}
		m.ActiveAccountCount++
		m.CashOnHand = m.CashOnHand.Add(a.CurrentBalance)
	}

	windowStart := asOf.AddDate(0, 0, -30)
	buckets := map[string]*MonthlyCashFlow{}

	for _, t := range transactions {
		if t.TransactionDate.After(asOf) {
			continue
		}
		in30 := t.TransactionDate.After(windowStart)
		key := t.TransactionDate.Format(monthKeyLayout)
		b, ok := buckets[key]
		if !ok {
			b = &MonthlyCashFlow{Month: key, Inflow: decimal.Zero, Outflow: decimal.Zero}
			buckets[key] = b
		}
		switch t.TransactionType {
		case models.AccountTransactionTypeIncoming:
			b.Inflow = b.Inflow.Add(t.Amount)
			if in30 {
				m.Inflow30d = m.Inflow30d.Add(t.Amount)
			}
		case models.AccountTransactionTypeOutgoing:
			b.Outflow = b.Outflow.Add(t.Amount)
			if in30 {
				m.Outflow30d = m.Outflow30d.Add(t.Amount)
			}
		}
	}

	m.NetFlow30d = m.Inflow30d.Sub(m.Outflow30d)

	// Projected 90-day outflow from the trailing 30-day run rate.
	if m.Outflow30d.GreaterThan(decimal.Zero) {
		projected90 := m.Outflow30d.Div(decimal.NewFromInt(30)).Mul(decimal.NewFromInt(90))
		m.LiquidityRatio = m.CashOnHand.Div(projected90).InexactFloat64()
	} else {
		m.LiquidityRatio = MaxLiquidityRatio
	}

	// Always anchor the history at the current month so the forecast has a
	// base even in a quiet period.
	currentKey := asOf.Format(monthKeyLayout)
	if _, ok := buckets[currentKey]; !ok {
		buckets[currentKey] = &MonthlyCashFlow{Month: currentKey, Inflow: decimal.Zero, Outflow: decimal.Zero}
	}

	for _, b := range buckets {
		m.MonthlyHistory = append(m.MonthlyHistory, *b)
	}
	sort.Slice(m.MonthlyHistory, func(i, j int) bool {
		return m.MonthlyHistory[i].Month < m.MonthlyHistory[j].Month
	})

	return m
}

type CashFlowAnalyzer struct {
	Policy CashFlowPolicy
}

// Score applies the liquidity deltas; the trend follows cash on hand.
func (a CashFlowAnalyzer) Score(curr CashFlowMetrics, prev *CashFlowMetrics) ModuleHealth {
	p := a.Policy
	score := p.Baseline

	if curr.NetFlow30d.LessThan(decimal.Zero) {
		score -= p.NegativeNetFlowPenalty
	}
	if curr.Outflow30d.GreaterThan(decimal.Zero) && curr.LiquidityRatio < p.LiquidityCriticalMax {
		score -= p.LiquidityPenalty
	}
	if curr.CashOnHand.GreaterThan(decimal.Zero) && curr.LiquidityRatio >= p.LiquidityHealthyMin {
		score += p.LiquidityBonus
	}
	if curr.NetFlow30d.GreaterThan(decimal.Zero) {
		score += p.PositiveNetFlowBonus
	}

	trend := TrendStable
	if prev != nil {
		trend = trendBetween(curr.CashOnHand.InexactFloat64(), prev.CashOnHand.InexactFloat64())
	}

	return moduleHealth(score, trend)
}

func (a CashFlowAnalyzer) Insights(curr CashFlowMetrics) []Insight {
	var insights []Insight

	if curr.NetFlow30d.LessThan(decimal.Zero) {
		insights = append(insights, Insight{
			Type:        InsightDanger,
			Title:       "Negative cash flow",
			Description: fmt.Sprintf("Outflows exceeded inflows by %s over the last 30 days", curr.NetFlow30d.Neg().StringFixed(2)),
			Metric:      curr.NetFlow30d.StringFixed(2),
			Action:      "Review costs and accelerate collections",
		})
	}
	if curr.Outflow30d.GreaterThan(decimal.Zero) && curr.LiquidityRatio < a.Policy.LiquidityCriticalMax {
		insights = append(insights, Insight{
			Type:        InsightDanger,
			Title:       "Liquidity risk",
			Description: fmt.Sprintf("Cash covers only %.0f%% of the projected 90-day outflow", curr.LiquidityRatio*100),
			Metric:      fmt.Sprintf("%.2f", curr.LiquidityRatio),
			Action:      "Build a cash buffer",
		})
	}
	if curr.ActiveAccountCount > 0 && !curr.CashOnHand.GreaterThan(decimal.Zero) {
		insights = append(insights, Insight{
			Type:        InsightDanger,
			Title:       "No cash buffer",
			Description: "Active accounts hold no positive balance",
			Action:      "Arrange short-term financing",
		})
	}
	if curr.CashOnHand.GreaterThan(decimal.Zero) && curr.LiquidityRatio >= a.Policy.LiquidityHealthyMin {
		insights = append(insights, Insight{
			Type:        InsightSuccess,
			Title:       "Strong liquidity",
			Description: fmt.Sprintf("Cash on hand covers %.1fx the projected 90-day outflow", curr.LiquidityRatio),
			Metric:      fmt.Sprintf("%.2f", curr.LiquidityRatio),
		})
	}

	return insights
}
