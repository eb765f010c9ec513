package reports

import (
	"context"
	"time"

	"github.com/mosaicerp/mosaic_backend/finance"
	"github.com/mosaicerp/mosaic_backend/utils"
)

// GetFinanceRobotReport builds the advisor report for the tenant in context.
// The engine itself is pure; this wrapper owns the row fetch and the
// memoization around it.
func GetFinanceRobotReport(ctx context.Context) (*finance.FinanceRobotReport, error) {
	businessId, ok := utils.GetBusinessIdFromContext(ctx)
	if !ok || businessId == "" {
		return nil, utils.ErrorBusinessIdRequired
	}

	started := time.Now()
	defer logSlowReport(ctx, "finance_robot", started)

	key := reportCacheKey("finance_robot", businessId)
	var cached finance.FinanceRobotReport
	if ok, err := cacheGet(key, &cached); err == nil && ok {
		return &cached, nil
	}

	asOf := time.Now()
	snap, err := fetchSnapshot(ctx, businessId, asOf)
	if err != nil {
		return nil, err
	}
	prev := previousSnapshot(snap, asOf.AddDate(0, -1, 0))

	analyses := finance.AnalyzeSnapshot(snap, &prev, asOf, finance.DefaultScoringPolicy())
	report := finance.ComposeFinanceRobot(businessId, asOf, analyses)

	cacheSet(key, report)
	return report, nil
}

// GetCashFlowForecast serves the three-month projection on its own, for the
// dashboard widget that does not need the full report.
func GetCashFlowForecast(ctx context.Context) ([]finance.CashFlowForecast, error) {
	businessId, ok := utils.GetBusinessIdFromContext(ctx)
	if !ok || businessId == "" {
		return nil, utils.ErrorBusinessIdRequired
	}

	started := time.Now()
	defer logSlowReport(ctx, "cashflow_forecast", started)

	asOf := time.Now()
	snap, err := fetchSnapshot(ctx, businessId, asOf)
	if err != nil {
		return nil, err
	}

	metrics := finance.ExtractCashFlowMetrics(snap.Accounts, snap.Transactions, asOf)
	return finance.ForecastCashFlow(metrics.MonthlyHistory, metrics.CashOnHand), nil
}
