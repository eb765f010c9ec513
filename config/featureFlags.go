package config

import (
	"os"
	"strings"
)

// BoolFromEnv reads a truthy env flag ("1", "true", "yes", "on").
func BoolFromEnv(key string) bool {
	v := strings.TrimSpace(os.Getenv(key))
	return v == "1" || strings.EqualFold(v, "true") || strings.EqualFold(v, "yes") || strings.EqualFold(v, "on")
}

// ReportCacheEnabled gates the redis-backed report cache.
func ReportCacheEnabled() bool {
	return BoolFromEnv("ENABLE_REPORT_CACHE")
}
