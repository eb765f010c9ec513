package finance

import (
	"fmt"
	"sort"
	"time"

	"github.com/mosaicerp/mosaic_backend/models"
	"github.com/shopspring/decimal"
)

type CustomerRevenue struct {
	CustomerId   int             `json:"customer_id"`
	Name         string          `json:"name"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

type CustomerMetrics struct {
	TotalCount       int               `json:"total_count"`
	ActiveCount      int               `json:"active_count"`
	ActiveRatio      float64           `json:"active_ratio"`
	AtRiskCount      int               `json:"at_risk_count"`
	ChurnRiskPct     float64           `json:"churn_risk_pct"`
	TopCustomerShare float64           `json:"top_customer_share"`
	TopCustomers     []CustomerRevenue `json:"top_customers"`
}

const atRiskWindowDays = 60

// ExtractCustomerMetrics aggregates the customer base. An active customer is
// at risk when it has no invoice activity inside the trailing 60 days, or
// none ever.
func ExtractCustomerMetrics(customers []models.Customer, invoices []models.SalesInvoice, asOf time.Time) CustomerMetrics {
	m := CustomerMetrics{
		TopCustomers: []CustomerRevenue{},
	}

	windowStart := asOf.AddDate(0, 0, -atRiskWindowDays)
	recentActivity := map[int]bool{}
	for _, inv := range invoices {
		if inv.CurrentStatus == models.SalesInvoiceStatusCancelled {
			continue
		}
		if inv.InvoiceDate.After(windowStart) && !inv.InvoiceDate.After(asOf) {
			recentActivity[inv.CustomerId] = true
		}
	}

	totalRevenue := decimal.Zero
	topRevenue := decimal.Zero

	for _, c := range customers {
		m.TotalCount++
		totalRevenue = totalRevenue.Add(c.TotalRevenue)
		if c.TotalRevenue.GreaterThan(topRevenue) {
			topRevenue = c.TotalRevenue
		}
		if !c.Active() {
			continue
		}
		m.ActiveCount++
		if !recentActivity[c.ID] {
			m.AtRiskCount++
		}
	}

	if m.TotalCount > 0 {
		m.ActiveRatio = float64(m.ActiveCount) / float64(m.TotalCount) * 100
	}
	if m.ActiveCount > 0 {
		m.ChurnRiskPct = float64(m.AtRiskCount) / float64(m.ActiveCount) * 100
	}
	if totalRevenue.GreaterThan(decimal.Zero) {
		m.TopCustomerShare = topRevenue.Div(totalRevenue).Mul(decimal.NewFromInt(100)).InexactFloat64()
	}

	ranked := make([]CustomerRevenue, 0, len(customers))
	for _, c := range customers {
		ranked = append(ranked, CustomerRevenue{CustomerId: c.ID, Name: c.Name, TotalRevenue: c.TotalRevenue})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if !ranked[i].TotalRevenue.Equal(ranked[j].TotalRevenue) {
			return ranked[i].TotalRevenue.GreaterThan(ranked[j].TotalRevenue)
		}
		return ranked[i].CustomerId < ranked[j].CustomerId
	})
	if len(ranked) > topListSize {
		ranked = ranked[:topListSize]
	}
	m.TopCustomers = ranked

	return m
}

type CustomerAnalyzer struct {
	Policy CustomerPolicy
}

// Score applies the retention deltas; the trend follows the active count.
func (a CustomerAnalyzer) Score(curr CustomerMetrics, prev *CustomerMetrics) ModuleHealth {
	p := a.Policy
	score := p.Baseline

	if curr.ActiveCount > 0 && curr.ChurnRiskPct > p.ChurnRiskPct {
		score -= p.ChurnRiskPenalty
	}
	if curr.TopCustomerShare > p.ConcentrationPct {
		score -= p.ConcentrationPenalty
	}
	if curr.TotalCount > 0 && curr.ActiveRatio > p.ActiveRatioBonusMin {
		score += p.ActiveRatioBonus
	}
	if curr.ActiveCount > 0 && curr.ChurnRiskPct < p.LowChurnPct {
		score += p.LowChurnBonus
	}

	trend := TrendStable
	if prev != nil {
		trend = trendBetween(float64(curr.ActiveCount), float64(prev.ActiveCount))
	}

	return moduleHealth(score, trend)
}

func (a CustomerAnalyzer) Insights(curr CustomerMetrics) []Insight {
	var insights []Insight

	if curr.ActiveCount > 0 && curr.ChurnRiskPct > a.Policy.ChurnRiskPct {
		insights = append(insights, Insight{
			Type:        InsightDanger,
			Title:       "High churn risk",
			Description: fmt.Sprintf("%.0f%% of active customers show no recent activity", curr.ChurnRiskPct),
			Metric:      fmt.Sprintf("%.0f", curr.ChurnRiskPct),
			Action:      "Launch a re-engagement campaign",
		})
	} else if curr.AtRiskCount > 0 {
		insights = append(insights, Insight{
			Type:        InsightWarning,
			Title:       "Customers at risk",
			Description: fmt.Sprintf("%d active customers have had no invoices in %d days", curr.AtRiskCount, atRiskWindowDays),
			Metric:      fmt.Sprintf("%d", curr.AtRiskCount),
			Action:      "Reach out before they churn",
		})
	}
	if curr.TopCustomerShare > a.Policy.ConcentrationPct {
		insights = append(insights, Insight{
			Type:        InsightWarning,
			Title:       "Revenue concentration",
			Description: fmt.Sprintf("The top customer accounts for %.0f%% of revenue", curr.TopCustomerShare),
			Metric:      fmt.Sprintf("%.0f", curr.TopCustomerShare),
			Action:      "Diversify the customer base",
		})
	}
	if curr.TotalCount > 0 && curr.ActiveRatio > a.Policy.ActiveRatioBonusMin {
		insights = append(insights, Insight{
			Type:        InsightSuccess,
			Title:       "Strong active base",
			Description: fmt.Sprintf("%.0f%% of customers are active", curr.ActiveRatio),
			Metric:      fmt.Sprintf("%.0f", curr.ActiveRatio),
		})
	}

	return insights
}
