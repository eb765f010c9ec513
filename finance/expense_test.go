package finance

import (
	"testing"
	"time"

	"github.com/mosaicerp/mosaic_backend/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func expense(date time.Time, category string, amount int64, status models.ExpenseStatus) models.Expense {
	return models.Expense{
		BusinessId:    "biz-1",
		ExpenseDate:   date,
		Category:      category,
		Amount:        decimal.NewFromInt(amount),
		CurrentStatus: status,
	}
}

func TestExtractExpenseMetricsMonthOverMonth(t *testing.T) {
	expenses := []models.Expense{
		expense(testAsOf.AddDate(0, 0, -5), "Rent", 1200, models.ExpenseStatusPaid),
		expense(testAsOf.AddDate(0, -1, -5), "Rent", 1000, models.ExpenseStatusPaid),
	}

	m := ExtractExpenseMetrics(expenses, testAsOf)

	require.True(t, m.CurrentMonthTotal.Equal(decimal.NewFromInt(1200)))
	require.True(t, m.PreviousMonthTotal.Equal(decimal.NewFromInt(1000)))
	require.InDelta(t, 20, m.MonthOverMonthChange, 0.0001)
	require.True(t, m.DailyBurnRate.Equal(decimal.NewFromInt(40)))
}

func TestExtractExpenseMetricsNoPreviousMonth(t *testing.T) {
	expenses := []models.Expense{
		expense(testAsOf.AddDate(0, 0, -3), "Rent", 500, models.ExpenseStatusPaid),
	}

	m := ExtractExpenseMetrics(expenses, testAsOf)

	require.True(t, m.PreviousMonthTotal.IsZero())
	require.Equal(t, float64(0), m.MonthOverMonthChange)
}

func TestExtractExpenseMetricsUnpaidTotal(t *testing.T) {
	remaining := decimal.NewFromInt(450)
	partial := expense(testAsOf.AddDate(0, 0, -10), "Logistics", 900, models.ExpenseStatusPartialPaid)
	partial.RemainingBalance = &remaining
	expenses := []models.Expense{
		partial,
		expense(testAsOf.AddDate(0, 0, -8), "Utilities", 100, models.ExpenseStatusUnpaid),
		expense(testAsOf.AddDate(0, 0, -6), "Rent", 2400, models.ExpenseStatusPaid),
	}

	m := ExtractExpenseMetrics(expenses, testAsOf)

	require.True(t, m.UnpaidTotal.Equal(decimal.NewFromInt(550)), "unpaid = %s", m.UnpaidTotal)
}

func TestExtractExpenseMetricsCategoryRanking(t *testing.T) {
	expenses := []models.Expense{
		expense(testAsOf.AddDate(0, 0, -1), "Rent", 2400, models.ExpenseStatusPaid),
		expense(testAsOf.AddDate(0, 0, -2), "", 100, models.ExpenseStatusPaid),
		expense(testAsOf.AddDate(0, 0, -3), "Marketing", 700, models.ExpenseStatusPaid),
		expense(testAsOf.AddDate(0, 0, -4), "Marketing", 300, models.ExpenseStatusPaid),
	}

	m := ExtractExpenseMetrics(expenses, testAsOf)

	require.Len(t, m.ByCategory, 3)
	require.Equal(t, "Rent", m.ByCategory[0].Category)
	require.Equal(t, "Marketing", m.ByCategory[1].Category)
	require.True(t, m.ByCategory[1].Amount.Equal(decimal.NewFromInt(1000)))
	require.Equal(t, "Uncategorized", m.ByCategory[2].Category)
}

func TestExpenseSpikeBoundaryIsNotASpike(t *testing.T) {
	a := ExpenseAnalyzer{Policy: DefaultScoringPolicy().Expense}
	expenses := []models.Expense{
		expense(testAsOf.AddDate(0, 0, -5), "Rent", 1200, models.ExpenseStatusPaid),
		expense(testAsOf.AddDate(0, -1, -5), "Rent", 1000, models.ExpenseStatusPaid),
	}
	m := ExtractExpenseMetrics(expenses, testAsOf)
	require.InDelta(t, 20, m.MonthOverMonthChange, 0.0001)

	health := a.Score(m, nil)
	require.Equal(t, a.Policy.Baseline, health.Score)

	for _, ins := range a.Insights(m) {
		require.NotEqual(t, "Expense spike", ins.Title)
	}
}

func TestExpenseSpikeAboveThreshold(t *testing.T) {
	a := ExpenseAnalyzer{Policy: DefaultScoringPolicy().Expense}
	expenses := []models.Expense{
		expense(testAsOf.AddDate(0, 0, -5), "Rent", 1500, models.ExpenseStatusPaid),
		expense(testAsOf.AddDate(0, -1, -5), "Rent", 1000, models.ExpenseStatusPaid),
	}
	m := ExtractExpenseMetrics(expenses, testAsOf)

	health := a.Score(m, nil)
	require.Equal(t, a.Policy.Baseline-a.Policy.SpikePenalty, health.Score)

	insights := a.Insights(m)
	require.NotEmpty(t, insights)
	require.Equal(t, InsightDanger, insights[0].Type)
	require.Equal(t, "Expense spike", insights[0].Title)
}

func TestExpenseDecliningSpendBonus(t *testing.T) {
	a := ExpenseAnalyzer{Policy: DefaultScoringPolicy().Expense}
	expenses := []models.Expense{
		expense(testAsOf.AddDate(0, 0, -5), "Rent", 800, models.ExpenseStatusPaid),
		expense(testAsOf.AddDate(0, -1, -5), "Rent", 1000, models.ExpenseStatusPaid),
	}
	m := ExtractExpenseMetrics(expenses, testAsOf)

	health := a.Score(m, nil)
	require.Equal(t, a.Policy.Baseline+a.Policy.DecliningBonus, health.Score)

	var titles []string
	for _, ins := range a.Insights(m) {
		titles = append(titles, ins.Title)
	}
	require.Contains(t, titles, "Spending down")
}

func TestExpenseScoreEmptyInputIsBaseline(t *testing.T) {
	a := ExpenseAnalyzer{Policy: DefaultScoringPolicy().Expense}
	m := ExtractExpenseMetrics(nil, testAsOf)

	health := a.Score(m, nil)

	require.Equal(t, a.Policy.Baseline, health.Score)
	require.Empty(t, a.Insights(m))
}
