package finance

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// DomainAnalyses joins the five scored domains of one report run.
type DomainAnalyses struct {
	Invoices  ModuleAnalysis[InvoiceMetrics]   `json:"invoices"`
	Expenses  ModuleAnalysis[ExpenseMetrics]   `json:"expenses"`
	Customers ModuleAnalysis[CustomerMetrics]  `json:"customers"`
	Inventory ModuleAnalysis[InventoryMetrics] `json:"inventory"`
	CashFlow  ModuleAnalysis[CashFlowMetrics]  `json:"cash_flow"`
}

type Recommendation struct {
	Severity    InsightType `json:"severity"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
}

// FinanceRobotReport is the full advisor output for one tenant.
type FinanceRobotReport struct {
	BusinessId      string             `json:"business_id"`
	GeneratedAt     time.Time          `json:"generated_at"`
	OverallScore    int                `json:"overall_score"`
	OverallStatus   HealthStatus       `json:"overall_status"`
	NetProfit       decimal.Decimal    `json:"net_profit"`
	ProfitMargin    float64            `json:"profit_margin"`
	Modules         DomainAnalyses     `json:"modules"`
	KeyFindings     []Insight          `json:"key_findings"`
	Recommendations []Recommendation   `json:"recommendations"`
	Forecast        []CashFlowForecast `json:"forecast"`
}

// ComposeFinanceRobot merges the five domain analyses. The overall score is
// the unweighted arithmetic mean of the domain scores; the health-check
// report applies a per-category weight table instead, and the two policies
// are deliberately kept separate.
func ComposeFinanceRobot(businessId string, asOf time.Time, d DomainAnalyses) *FinanceRobotReport {
	scores := []int{
		d.Invoices.Health.Score,
		d.Expenses.Health.Score,
		d.Customers.Health.Score,
		d.Inventory.Health.Score,
		d.CashFlow.Health.Score,
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	overall := clampScore(int(math.Round(float64(sum) / float64(len(scores)))))

	netProfit := d.Invoices.Metrics.ConfirmedRevenue.Sub(d.Expenses.Metrics.TotalExpenses)
	profitMargin := 0.0
	if d.Invoices.Metrics.ConfirmedRevenue.GreaterThan(decimal.Zero) {
		profitMargin = netProfit.Div(d.Invoices.Metrics.ConfirmedRevenue).
			Mul(decimal.NewFromInt(100)).InexactFloat64()
	}

	report := &FinanceRobotReport{
		BusinessId:    businessId,
		GeneratedAt:   asOf,
		OverallScore:  overall,
		OverallStatus: statusForScore(overall),
		NetProfit:     netProfit,
		ProfitMargin:  profitMargin,
		Modules:       d,
		KeyFindings:   keyFindings(d),
		Forecast:      ForecastCashFlow(d.CashFlow.Metrics.MonthlyHistory, d.CashFlow.Metrics.CashOnHand),
	}
	report.Recommendations = recommendations(d, profitMargin)

	return report
}

const (
	maxDangerFindings  = 3
	maxWarningFindings = 3
	maxSuccessFindings = 2
)

// keyFindings pools every domain's insights and keeps up to 3 danger, 3
// warning, and 2 success entries, in that fixed priority order.
func keyFindings(d DomainAnalyses) []Insight {
	var pooled []Insight
	pooled = append(pooled, d.Invoices.Insights...)
	pooled = append(pooled, d.Expenses.Insights...)
	pooled = append(pooled, d.Customers.Insights...)
	pooled = append(pooled, d.Inventory.Insights...)
	pooled = append(pooled, d.CashFlow.Insights...)

	findings := []Insight{}
	for _, want := range []struct {
		insightType InsightType
		limit       int
	}{
		{InsightDanger, maxDangerFindings},
		{InsightWarning, maxWarningFindings},
		{InsightSuccess, maxSuccessFindings},
	} {
		taken := 0
		for _, ins := range pooled {
			if ins.Type != want.insightType || taken >= want.limit {
				continue
			}
			findings = append(findings, ins)
			taken++
		}
	}
	return findings
}

// recommendations is a fixed ordered checklist; each entry fires on its
// threshold condition independently.
func recommendations(d DomainAnalyses, profitMargin float64) []Recommendation {
	recs := []Recommendation{}

	if d.Invoices.Metrics.OverdueCount > 0 {
		recs = append(recs, Recommendation{
			Severity:    InsightWarning,
			Title:       "Follow up on overdue invoices",
			Description: fmt.Sprintf("%d invoices worth %s are overdue", d.Invoices.Metrics.OverdueCount, d.Invoices.Metrics.OverdueAmount.StringFixed(2)),
		})
	}
	if d.Customers.Metrics.AtRiskCount > 0 {
		recs = append(recs, Recommendation{
			Severity:    InsightWarning,
			Title:       "Re-engage inactive customers",
			Description: fmt.Sprintf("%d active customers show no recent invoice activity", d.Customers.Metrics.AtRiskCount),
		})
	}
	if d.Inventory.Metrics.OutOfStockCount > 0 {
		recs = append(recs, Recommendation{
			Severity:    InsightWarning,
			Title:       "Restock out-of-stock products",
			Description: fmt.Sprintf("%d products are unavailable for sale", d.Inventory.Metrics.OutOfStockCount),
		})
	}
	if d.CashFlow.Metrics.NetFlow30d.LessThan(decimal.Zero) {
		recs = append(recs, Recommendation{
			Severity:    InsightDanger,
			Title:       "Review costs",
			Description: "Cash flow was negative over the last 30 days",
		})
	}
	if d.Invoices.Metrics.ConfirmedRevenue.GreaterThan(decimal.Zero) && profitMargin >= 0 && profitMargin < 10 {
		recs = append(recs, Recommendation{
			Severity:    InsightWarning,
			Title:       "Improve profit margin",
			Description: fmt.Sprintf("Margin is %.1f%%; review pricing and cost of sales", profitMargin),
		})
	}
	if profitMargin < 0 {
		recs = append(recs, Recommendation{
			Severity:    InsightDanger,
			Title:       "Operating at a loss",
			Description: fmt.Sprintf("Margin is %.1f%%; expenses exceed confirmed revenue", profitMargin),
		})
	}
	if d.Expenses.Metrics.MonthOverMonthChange > 20 {
		recs = append(recs, Recommendation{
			Severity:    InsightWarning,
			Title:       "Tighten budget control",
			Description: fmt.Sprintf("Expenses grew %.1f%% month over month", d.Expenses.Metrics.MonthOverMonthChange),
		})
	}

	return recs
}
