package finance

import (
	"testing"
	"time"

	"github.com/mosaicerp/mosaic_backend/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func account(accType models.MoneyAccountType, balance int64, active bool) models.MoneyAccount {
	return models.MoneyAccount{
		BusinessId:     "biz-1",
		AccountType:    accType,
		CurrentBalance: decimal.NewFromInt(balance),
		IsActive:       &active,
	}
}

func transaction(txType models.AccountTransactionType, date time.Time, amount int64) models.AccountTransaction {
	return models.AccountTransaction{
		BusinessId:      "biz-1",
		TransactionType: txType,
		TransactionDate: date,
		Amount:          decimal.NewFromInt(amount),
	}
}

func TestExtractCashFlowMetricsActiveAccountsOnly(t *testing.T) {
	accounts := []models.MoneyAccount{
		account(models.MoneyAccountTypeBank, 3000, true),
		account(models.MoneyAccountTypeCash, 500, true),
		account(models.MoneyAccountTypeBank, 99999, false),
	}

	m := ExtractCashFlowMetrics(accounts, nil, testAsOf)

	require.Equal(t, 2, m.ActiveAccountCount)
	require.True(t, m.CashOnHand.Equal(decimal.NewFromInt(3500)))
}

func TestExtractCashFlowMetricsZeroOutflowIsMaxLiquidity(t *testing.T) {
	accounts := []models.MoneyAccount{account(models.MoneyAccountTypeBank, 3000, true)}
	transactions := []models.AccountTransaction{
		transaction(models.AccountTransactionTypeIncoming, testAsOf.AddDate(0, 0, -10), 1000),
	}

	m := ExtractCashFlowMetrics(accounts, transactions, testAsOf)

	require.Equal(t, float64(MaxLiquidityRatio), m.LiquidityRatio)
	require.True(t, m.NetFlow30d.Equal(decimal.NewFromInt(1000)))
}

func TestExtractCashFlowMetricsLiquidityRatio(t *testing.T) {
	accounts := []models.MoneyAccount{account(models.MoneyAccountTypeBank, 3000, true)}
	transactions := []models.AccountTransaction{
		transaction(models.AccountTransactionTypeOutgoing, testAsOf.AddDate(0, 0, -10), 1000),
	}

	m := ExtractCashFlowMetrics(accounts, transactions, testAsOf)

	// Projected 90-day outflow = 1000/30*90 = 3000; cash 3000 covers it 1.0x.
	require.InDelta(t, 1.0, m.LiquidityRatio, 0.0001)
	require.True(t, m.NetFlow30d.Equal(decimal.NewFromInt(-1000)))
}

func TestExtractCashFlowMetricsMonthlyHistory(t *testing.T) {
	transactions := []models.AccountTransaction{
		transaction(models.AccountTransactionTypeIncoming, testAsOf.AddDate(0, -1, 0), 5300),
		transaction(models.AccountTransactionTypeOutgoing, testAsOf.AddDate(0, -1, 0), 3100),
		transaction(models.AccountTransactionTypeIncoming, testAsOf.AddDate(0, 0, -2), 7600),
		transaction(models.AccountTransactionTypeIncoming, testAsOf.AddDate(0, 1, 0), 99999), // future, ignored
	}

	m := ExtractCashFlowMetrics(nil, transactions, testAsOf)

	require.Len(t, m.MonthlyHistory, 2)
	require.Equal(t, "2026-02", m.MonthlyHistory[0].Month)
	require.True(t, m.MonthlyHistory[0].Inflow.Equal(decimal.NewFromInt(5300)))
	require.True(t, m.MonthlyHistory[0].Outflow.Equal(decimal.NewFromInt(3100)))
	require.Equal(t, "2026-03", m.MonthlyHistory[1].Month)
	require.True(t, m.MonthlyHistory[1].Inflow.Equal(decimal.NewFromInt(7600)))
}

func TestExtractCashFlowMetricsAnchorsCurrentMonth(t *testing.T) {
	m := ExtractCashFlowMetrics(nil, nil, testAsOf)

	require.Len(t, m.MonthlyHistory, 1)
	require.Equal(t, "2026-03", m.MonthlyHistory[0].Month)
	require.True(t, m.MonthlyHistory[0].Inflow.IsZero())
	require.True(t, m.MonthlyHistory[0].Outflow.IsZero())
}

func TestCashFlowScoreEmptyInputIsBaseline(t *testing.T) {
	a := CashFlowAnalyzer{Policy: DefaultScoringPolicy().CashFlow}
	m := ExtractCashFlowMetrics(nil, nil, testAsOf)

	health := a.Score(m, nil)

	require.Equal(t, a.Policy.Baseline, health.Score)
	require.Empty(t, a.Insights(m))
}

func TestCashFlowScoreNegativeFlow(t *testing.T) {
	a := CashFlowAnalyzer{Policy: DefaultScoringPolicy().CashFlow}
	accounts := []models.MoneyAccount{account(models.MoneyAccountTypeBank, 100, true)}
	transactions := []models.AccountTransaction{
		transaction(models.AccountTransactionTypeOutgoing, testAsOf.AddDate(0, 0, -10), 1000),
	}
	m := ExtractCashFlowMetrics(accounts, transactions, testAsOf)

	// Negative net flow and a liquidity ratio of 100/3000 = 0.033 < 0.25.
	health := a.Score(m, nil)
	require.Equal(t, a.Policy.Baseline-a.Policy.NegativeNetFlowPenalty-a.Policy.LiquidityPenalty, health.Score)

	insights := a.Insights(m)
	require.GreaterOrEqual(t, len(insights), 2)
	require.Equal(t, "Negative cash flow", insights[0].Title)
	require.Equal(t, InsightDanger, insights[0].Type)
	require.Equal(t, "Liquidity risk", insights[1].Title)
}

func TestCashFlowScoreHealthy(t *testing.T) {
	a := CashFlowAnalyzer{Policy: DefaultScoringPolicy().CashFlow}
	accounts := []models.MoneyAccount{account(models.MoneyAccountTypeBank, 9000, true)}
	transactions := []models.AccountTransaction{
		transaction(models.AccountTransactionTypeIncoming, testAsOf.AddDate(0, 0, -5), 5000),
		transaction(models.AccountTransactionTypeOutgoing, testAsOf.AddDate(0, 0, -6), 1000),
	}
	m := ExtractCashFlowMetrics(accounts, transactions, testAsOf)

	health := a.Score(m, nil)
	require.Equal(t, a.Policy.Baseline+a.Policy.LiquidityBonus+a.Policy.PositiveNetFlowBonus, health.Score)
	require.Equal(t, HealthStatusExcellent, health.Status)
}
