package finance

import (
	"math"
	"time"
)

// HealthCheckWeights is the fixed per-category weight table for the
// health-check report. A separate policy from the finance robot's unweighted
// mean; the two must not be conflated.
type HealthCheckWeights struct {
	Invoices  int `json:"invoices"`
	Expenses  int `json:"expenses"`
	Customers int `json:"customers"`
	Inventory int `json:"inventory"`
	CashFlow  int `json:"cash_flow"`
}

// DefaultHealthCheckWeights sums to 100; receivables and cash carry the most
// weight.
func DefaultHealthCheckWeights() HealthCheckWeights {
	return HealthCheckWeights{
		Invoices:  25,
		CashFlow:  25,
		Expenses:  20,
		Customers: 15,
		Inventory: 15,
	}
}

type HealthCheckCategory struct {
	Name   string         `json:"name"`
	Weight int            `json:"weight"`
	Score  int            `json:"score"`
	Status HealthStatus   `json:"status"`
	Trend  TrendDirection `json:"trend"`
}

type HealthCheckReport struct {
	BusinessId    string                `json:"business_id"`
	GeneratedAt   time.Time             `json:"generated_at"`
	Categories    []HealthCheckCategory `json:"categories"`
	OverallScore  int                   `json:"overall_score"`
	OverallStatus HealthStatus          `json:"overall_status"`
}

// ComposeHealthCheck summarizes the same five domain analyses under the
// weighted policy.
func ComposeHealthCheck(businessId string, asOf time.Time, d DomainAnalyses, w HealthCheckWeights) *HealthCheckReport {
	categories := []HealthCheckCategory{
		categoryFor("invoices", w.Invoices, d.Invoices.Health),
		categoryFor("expenses", w.Expenses, d.Expenses.Health),
		categoryFor("customers", w.Customers, d.Customers.Health),
		categoryFor("inventory", w.Inventory, d.Inventory.Health),
		categoryFor("cash_flow", w.CashFlow, d.CashFlow.Health),
	}

	weightedSum := 0
	totalWeight := 0
	for _, c := range categories {
		weightedSum += c.Score * c.Weight
		totalWeight += c.Weight
	}
	overall := 0
	if totalWeight > 0 {
		overall = clampScore(int(math.Round(float64(weightedSum) / float64(totalWeight))))
	}

	return &HealthCheckReport{
		BusinessId:    businessId,
		GeneratedAt:   asOf,
		Categories:    categories,
		OverallScore:  overall,
		OverallStatus: statusForScore(overall),
	}
}

func categoryFor(name string, weight int, health ModuleHealth) HealthCheckCategory {
	return HealthCheckCategory{
		Name:   name,
		Weight: weight,
		Score:  health.Score,
		Status: health.Status,
		Trend:  health.Trend,
	}
}
