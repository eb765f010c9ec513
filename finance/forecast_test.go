package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestForecastCashFlowProjections(t *testing.T) {
	history := []MonthlyCashFlow{
		{Month: "2025-12", Inflow: decimal.NewFromInt(100), Outflow: decimal.NewFromInt(50)},
		{Month: "2026-01", Inflow: decimal.NewFromInt(100), Outflow: decimal.NewFromInt(50)},
		{Month: "2026-02", Inflow: decimal.NewFromInt(100), Outflow: decimal.NewFromInt(50)},
	}

	forecasts := ForecastCashFlow(history, decimal.NewFromInt(1000))

	require.Len(t, forecasts, 3)

	require.Equal(t, "2026-03", forecasts[0].Month)
	require.True(t, forecasts[0].PredictedInflow.Equal(decimal.NewFromInt(102)))
	require.True(t, forecasts[0].PredictedOutflow.Equal(decimal.NewFromFloat(50.5)))
	require.True(t, forecasts[0].PredictedBalance.Equal(decimal.NewFromFloat(1051.5)))

	require.Equal(t, "2026-04", forecasts[1].Month)
	require.True(t, forecasts[1].PredictedInflow.Equal(decimal.NewFromFloat(104.04)))
	require.True(t, forecasts[1].PredictedOutflow.Equal(decimal.NewFromFloat(51.01)))
	require.True(t, forecasts[1].PredictedBalance.Equal(decimal.NewFromFloat(1104.54)))

	require.Equal(t, "2026-05", forecasts[2].Month)
	require.True(t, forecasts[2].PredictedInflow.Equal(decimal.NewFromFloat(106.12)))
	require.True(t, forecasts[2].PredictedOutflow.Equal(decimal.NewFromFloat(51.52)))
	require.True(t, forecasts[2].PredictedBalance.Equal(decimal.NewFromFloat(1159.14)))
}

func TestForecastCashFlowConfidenceLadder(t *testing.T) {
	history := []MonthlyCashFlow{
		{Month: "2026-02", Inflow: decimal.NewFromInt(500), Outflow: decimal.NewFromInt(200)},
	}

	forecasts := ForecastCashFlow(history, decimal.Zero)

	require.Len(t, forecasts, 3)
	require.Equal(t, 95, forecasts[0].Confidence)
	require.Equal(t, 85, forecasts[1].Confidence)
	require.Equal(t, 75, forecasts[2].Confidence)
	for i := 1; i < len(forecasts); i++ {
		require.LessOrEqual(t, forecasts[i].Confidence, forecasts[i-1].Confidence)
		require.GreaterOrEqual(t, forecasts[i].Confidence, forecastMinConfidence)
	}
}

func TestForecastCashFlowUsesTrailingThreeMonths(t *testing.T) {
	history := []MonthlyCashFlow{
		{Month: "2025-11", Inflow: decimal.NewFromInt(1000000), Outflow: decimal.Zero},
		{Month: "2025-12", Inflow: decimal.NewFromInt(300), Outflow: decimal.Zero},
		{Month: "2026-01", Inflow: decimal.NewFromInt(300), Outflow: decimal.Zero},
		{Month: "2026-02", Inflow: decimal.NewFromInt(300), Outflow: decimal.Zero},
	}

	forecasts := ForecastCashFlow(history, decimal.Zero)

	// The November outlier falls outside the trailing window.
	require.True(t, forecasts[0].PredictedInflow.Equal(decimal.NewFromInt(306)))
}

func TestForecastCashFlowEmptyHistory(t *testing.T) {
	forecasts := ForecastCashFlow(nil, decimal.NewFromInt(1234))

	require.Len(t, forecasts, 3)
	for _, f := range forecasts {
		require.True(t, f.PredictedInflow.IsZero())
		require.True(t, f.PredictedOutflow.IsZero())
		require.True(t, f.PredictedBalance.Equal(decimal.NewFromInt(1234)))
	}
}
