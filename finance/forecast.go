package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashFlowForecast is one projected month. Purely computed, never persisted.
type CashFlowForecast struct {
	Month            string          `json:"month"` // "2006-01"
	PredictedInflow  decimal.Decimal `json:"predicted_inflow"`
	PredictedOutflow decimal.Decimal `json:"predicted_outflow"`
	PredictedBalance decimal.Decimal `json:"predicted_balance"`
	Confidence       int             `json:"confidence"`
}

const (
	forecastMonths         = 3
	forecastBaseConfidence = 95
	forecastConfidenceStep = 10
	forecastMinConfidence  = 60
)

var (
	inflowGrowthFactor  = decimal.NewFromFloat(1.02)
	outflowGrowthFactor = decimal.NewFromFloat(1.01)
)

// ForecastCashFlow projects three months of cash movement from the trailing
// three months of history (or all of it, when shorter). Inflow grows 2% and
// outflow 1% per projected month; the balance compounds from openingBalance.
// This is a naive extrapolation, fully reproducible from the same input.
func ForecastCashFlow(history []MonthlyCashFlow, openingBalance decimal.Decimal) []CashFlowForecast {
	trailing := history
	if len(trailing) > forecastMonths {
		trailing = trailing[len(trailing)-forecastMonths:]
	}

	avgInflow := decimal.Zero
	avgOutflow := decimal.Zero
	if n := len(trailing); n > 0 {
		for _, h := range trailing {
			avgInflow = avgInflow.Add(h.Inflow)
			avgOutflow = avgOutflow.Add(h.Outflow)
		}
		avgInflow = avgInflow.Div(decimal.NewFromInt(int64(n)))
		avgOutflow = avgOutflow.Div(decimal.NewFromInt(int64(n)))
	}

	base := time.Now()
	if len(history) > 0 {
		if parsed, err := time.Parse(monthKeyLayout, history[len(history)-1].Month); err == nil {
			base = parsed
		}
	}

	forecasts := make([]CashFlowForecast, 0, forecastMonths)
	inflow := avgInflow
	outflow := avgOutflow
	balance := openingBalance

	for i := 0; i < forecastMonths; i++ {
		inflow = inflow.Mul(inflowGrowthFactor)
		outflow = outflow.Mul(outflowGrowthFactor)
		balance = balance.Add(inflow).Sub(outflow)

		confidence := forecastBaseConfidence - forecastConfidenceStep*i
		if confidence < forecastMinConfidence {
			confidence = forecastMinConfidence
		}

		forecasts = append(forecasts, CashFlowForecast{
			Month:            base.AddDate(0, i+1, 0).Format(monthKeyLayout),
			PredictedInflow:  inflow.Round(2),
			PredictedOutflow: outflow.Round(2),
			PredictedBalance: balance.Round(2),
			Confidence:       confidence,
		})
	}

	return forecasts
}
