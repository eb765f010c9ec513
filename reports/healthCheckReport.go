package reports

import (
	"context"
	"time"

	"github.com/mosaicerp/mosaic_backend/finance"
	"github.com/mosaicerp/mosaic_backend/utils"
)

// GetHealthCheckReport builds the weighted category summary for the tenant
// in context. Same extraction pass as the finance robot; different
// composition policy.
func GetHealthCheckReport(ctx context.Context) (*finance.HealthCheckReport, error) {
	businessId, ok := utils.GetBusinessIdFromContext(ctx)
	if !ok || businessId == "" {
		return nil, utils.ErrorBusinessIdRequired
	}

	started := time.Now()
	defer logSlowReport(ctx, "health_check", started)

	key := reportCacheKey("health_check", businessId)
	var cached finance.HealthCheckReport
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
	report := finance.ComposeHealthCheck(businessId, asOf, analyses, finance.DefaultHealthCheckWeights())

	cacheSet(key, report)
	return report, nil
}
