// Package finance is the financial health analytics engine: pure,
// deterministic aggregation over row snapshots the caller has already
// materialized. Nothing in this package reads the database, logs, caches,
// or mutates its inputs; a report is a function of its rows.
package finance

import "math"

type HealthStatus string

const (
	HealthStatusExcellent HealthStatus = "excellent"
	HealthStatusGood      HealthStatus = "good"
	HealthStatusWarning   HealthStatus = "warning"
	HealthStatusCritical  HealthStatus = "critical"
)

type TrendDirection string

const (
	TrendUp     TrendDirection = "up"
	TrendDown   TrendDirection = "down"
	TrendStable TrendDirection = "stable"
)

// ModuleHealth is the scored summary for one domain. Computed fresh on every
// report request, never persisted.
type ModuleHealth struct {
	Score  int            `json:"score"`
	Status HealthStatus   `json:"status"`
	Trend  TrendDirection `json:"trend"`
}

type InsightType string

const (
	InsightSuccess InsightType = "success"
	InsightWarning InsightType = "warning"
	InsightDanger  InsightType = "danger"
	InsightInfo    InsightType = "info"
)

// Insight is a human-readable finding projected from the same aggregate the
// scorer saw, so the narrative can never disagree with the score.
type Insight struct {
	Type        InsightType `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Metric      string      `json:"metric,omitempty"`
	Action      string      `json:"action,omitempty"`
}

// Analyzer is the shared analyze shape every domain satisfies: score an
// aggregate against its predecessor and project insights from it.
type Analyzer[A any] interface {
	Score(curr A, prev *A) ModuleHealth
	Insights(curr A) []Insight
}

// ModuleAnalysis bundles one domain's aggregate with its health and insights.
type ModuleAnalysis[A any] struct {
	Metrics  A            `json:"metrics"`
	Health   ModuleHealth `json:"health"`
	Insights []Insight    `json:"insights"`
}

// Analyze runs one domain analyzer over an already-extracted aggregate.
func Analyze[A any](a Analyzer[A], curr A, prev *A) ModuleAnalysis[A] {
	return ModuleAnalysis[A]{
		Metrics:  curr,
		Health:   a.Score(curr, prev),
		Insights: a.Insights(curr),
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// statusForScore applies the shared tiers. The thresholds are identical for
// every domain so a "good" in one module means the same thing in another.
func statusForScore(score int) HealthStatus {
	switch {
	case score >= 80:
		return HealthStatusExcellent
	case score >= 60:
		return HealthStatusGood
	case score >= 40:
		return HealthStatusWarning
	default:
		return HealthStatusCritical
	}
}

const trendDeadBandPct = 5.0

// trendBetween classifies the movement of a domain's primary metric with a
// +/-5% dead-band so noise does not flip the arrow.
func trendBetween(curr, prev float64) TrendDirection {
	if prev == 0 {
		switch {
		case curr > 0:
			return TrendUp
		case curr < 0:
			return TrendDown
		default:
			return TrendStable
		}
	}
	changePct := (curr - prev) / math.Abs(prev) * 100
	switch {
	case changePct > trendDeadBandPct:
		return TrendUp
	case changePct < -trendDeadBandPct:
		return TrendDown
	default:
		return TrendStable
	}
}

func moduleHealth(score int, trend TrendDirection) ModuleHealth {
	score = clampScore(score)
	return ModuleHealth{
		Score:  score,
		Status: statusForScore(score),
		Trend:  trend,
	}
}
