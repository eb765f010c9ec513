package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func analysesWithScores(invoices, expenses, customers, inventory, cashFlow int) DomainAnalyses {
	health := func(score int) ModuleHealth { return moduleHealth(score, TrendStable) }
	return DomainAnalyses{
		Invoices:  ModuleAnalysis[InvoiceMetrics]{Health: health(invoices)},
		Expenses:  ModuleAnalysis[ExpenseMetrics]{Health: health(expenses)},
		Customers: ModuleAnalysis[CustomerMetrics]{Health: health(customers)},
		Inventory: ModuleAnalysis[InventoryMetrics]{Health: health(inventory)},
		CashFlow:  ModuleAnalysis[CashFlowMetrics]{Health: health(cashFlow)},
	}
}

func TestComposeFinanceRobotOverallIsUnweightedMean(t *testing.T) {
	d := analysesWithScores(80, 70, 60, 90, 100)

	report := ComposeFinanceRobot("biz-1", testAsOf, d)

	require.Equal(t, 80, report.OverallScore)
	require.Equal(t, HealthStatusExcellent, report.OverallStatus)
	require.Equal(t, "biz-1", report.BusinessId)
	require.Equal(t, testAsOf, report.GeneratedAt)
	require.Len(t, report.Forecast, 3)
}

func TestComposeFinanceRobotProfit(t *testing.T) {
	d := analysesWithScores(70, 70, 70, 70, 70)
	d.Invoices.Metrics.ConfirmedRevenue = decimal.NewFromInt(1000)
	d.Expenses.Metrics.TotalExpenses = decimal.NewFromInt(400)

	report := ComposeFinanceRobot("biz-1", testAsOf, d)

	require.True(t, report.NetProfit.Equal(decimal.NewFromInt(600)))
	require.InDelta(t, 60, report.ProfitMargin, 0.0001)
}

func TestComposeFinanceRobotProfitMarginGuard(t *testing.T) {
	d := analysesWithScores(70, 70, 70, 70, 70)
	d.Expenses.Metrics.TotalExpenses = decimal.NewFromInt(400)

	report := ComposeFinanceRobot("biz-1", testAsOf, d)

	require.True(t, report.NetProfit.Equal(decimal.NewFromInt(-400)))
	require.Equal(t, float64(0), report.ProfitMargin)
}

func TestKeyFindingsCapsAndOrder(t *testing.T) {
	mk := func(insightType InsightType, n int) []Insight {
		out := make([]Insight, n)
		for i := range out {
			out[i] = Insight{Type: insightType, Title: string(insightType)}
		}
		return out
	}
	d := analysesWithScores(70, 70, 70, 70, 70)
	d.Invoices.Insights = mk(InsightDanger, 4)
	d.Expenses.Insights = mk(InsightWarning, 4)
	d.Customers.Insights = mk(InsightSuccess, 3)
	d.Inventory.Insights = mk(InsightInfo, 1)

	findings := keyFindings(d)

	require.Len(t, findings, 8)
	for _, f := range findings[:3] {
		require.Equal(t, InsightDanger, f.Type)
	}
	for _, f := range findings[3:6] {
		require.Equal(t, InsightWarning, f.Type)
	}
	for _, f := range findings[6:] {
		require.Equal(t, InsightSuccess, f.Type)
	}
}

func TestRecommendationsOperatingAtALoss(t *testing.T) {
	d := analysesWithScores(70, 70, 70, 70, 70)
	d.Invoices.Metrics.OverdueCount = 2
	d.Invoices.Metrics.OverdueAmount = decimal.NewFromInt(800)
	d.Invoices.Metrics.ConfirmedRevenue = decimal.NewFromInt(100)
	d.Expenses.Metrics.TotalExpenses = decimal.NewFromInt(150)
	d.Expenses.Metrics.MonthOverMonthChange = 25
	d.Customers.Metrics.AtRiskCount = 1
	d.Inventory.Metrics.OutOfStockCount = 1
	d.CashFlow.Metrics.NetFlow30d = decimal.NewFromInt(-50)

	report := ComposeFinanceRobot("biz-1", testAsOf, d)

	var titles []string
	for _, r := range report.Recommendations {
		titles = append(titles, r.Title)
	}
	require.Equal(t, []string{
		"Follow up on overdue invoices",
		"Re-engage inactive customers",
		"Restock out-of-stock products",
		"Review costs",
		"Operating at a loss",
		"Tighten budget control",
	}, titles)
	require.Equal(t, InsightDanger, report.Recommendations[3].Severity)
	require.Equal(t, InsightDanger, report.Recommendations[4].Severity)
}

func TestRecommendationsThinMargin(t *testing.T) {
	d := analysesWithScores(70, 70, 70, 70, 70)
	d.Invoices.Metrics.ConfirmedRevenue = decimal.NewFromInt(1000)
	d.Expenses.Metrics.TotalExpenses = decimal.NewFromInt(950)

	report := ComposeFinanceRobot("biz-1", testAsOf, d)

	require.Len(t, report.Recommendations, 1)
	require.Equal(t, "Improve profit margin", report.Recommendations[0].Title)
	require.Equal(t, InsightWarning, report.Recommendations[0].Severity)
}

func TestComposeHealthCheckWeightedMean(t *testing.T) {
	d := analysesWithScores(80, 70, 60, 90, 100)

	report := ComposeHealthCheck("biz-1", testAsOf, d, DefaultHealthCheckWeights())

	// 80*25 + 70*20 + 60*15 + 90*15 + 100*25 = 8150 over weight 100.
	require.Equal(t, 82, report.OverallScore)
	require.Equal(t, HealthStatusExcellent, report.OverallStatus)

	require.Len(t, report.Categories, 5)
	require.Equal(t, "invoices", report.Categories[0].Name)
	require.Equal(t, 25, report.Categories[0].Weight)
	require.Equal(t, 80, report.Categories[0].Score)
	require.Equal(t, "cash_flow", report.Categories[4].Name)
	require.Equal(t, 25, report.Categories[4].Weight)
}

func TestComposeHealthCheckZeroWeights(t *testing.T) {
	d := analysesWithScores(80, 70, 60, 90, 100)

	report := ComposeHealthCheck("biz-1", testAsOf, d, HealthCheckWeights{})

	require.Equal(t, 0, report.OverallScore)
	require.Equal(t, HealthStatusCritical, report.OverallStatus)
}

func TestComposersUseSeparatePolicies(t *testing.T) {
	d := analysesWithScores(100, 40, 40, 40, 100)

	robot := ComposeFinanceRobot("biz-1", testAsOf, d)
	check := ComposeHealthCheck("biz-1", testAsOf, d, DefaultHealthCheckWeights())

	// Unweighted mean 64; the weight table favors invoices and cash flow.
	require.Equal(t, 64, robot.OverallScore)
	require.Equal(t, 70, check.OverallScore)
}
