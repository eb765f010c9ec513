package reports

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mosaicerp/mosaic_backend/config"
	"github.com/mosaicerp/mosaic_backend/utils"
)

func reportCacheTTL() time.Duration {
	// Env: REPORT_CACHE_TTL_SECONDS (default 120s)
	ttl := 120
	if v := strings.TrimSpace(os.Getenv("REPORT_CACHE_TTL_SECONDS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttl = n
		}
	}
	return time.Duration(ttl) * time.Second
}

func reportSlowMs() int64 {
	// Env: REPORT_SLOW_MS (default 500ms)
	ms := int64(500)
	if v := strings.TrimSpace(os.Getenv("REPORT_SLOW_MS")); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			ms = n
		}
	}
	return ms
}

func logSlowReport(ctx context.Context, name string, started time.Time) {
	d := time.Since(started)
	if d.Milliseconds() < reportSlowMs() {
		return
	}
	biz, _ := utils.GetBusinessIdFromContext(ctx)
	cid, _ := utils.GetCorrelationIdFromContext(ctx)
	log.Printf("slow_report name=%s ms=%d business_id=%s correlation_id=%s", name, d.Milliseconds(), biz, cid)
}

func reportCacheKey(name, businessId string) string {
	return fmt.Sprintf("report:%s:%s", name, businessId)
}

func cacheGet[T any](key string, dest *T) (bool, error) {
	if !config.ReportCacheEnabled() {
		return false, nil
	}
	return config.GetRedisObject(key, dest)
}

func cacheSet(key string, obj any) {
	if !config.ReportCacheEnabled() {
		return
	}
	if err := config.SetRedisObject(key, obj, reportCacheTTL()); err != nil {
		log.Printf("report cache set failed key=%s: %v", key, err)
	}
}
