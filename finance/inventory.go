package finance

import (
	"fmt"
	"time"

	"github.com/mosaicerp/mosaic_backend/models"
	"github.com/shopspring/decimal"
)

type InventoryMetrics struct {
	TotalProducts       int             `json:"total_products"`
	OutOfStockCount     int             `json:"out_of_stock_count"`
	LowStockCount       int             `json:"low_stock_count"`
	DeadStockCount      int             `json:"dead_stock_count"`
	TotalStock          decimal.Decimal `json:"total_stock"`
	TotalSold           decimal.Decimal `json:"total_sold"`
	TurnoverRate        float64         `json:"turnover_rate"`
	TotalInventoryValue decimal.Decimal `json:"total_inventory_value"`
}

// ExtractInventoryMetrics aggregates a tenant's product rows. Turnover
// defaults to 0 when nothing is in stock.
func ExtractInventoryMetrics(products []models.Product, _ time.Time) InventoryMetrics {
	m := InventoryMetrics{
		TotalStock:          decimal.Zero,
		TotalSold:           decimal.Zero,
		TotalInventoryValue: decimal.Zero,
	}

	for _, p := range products {
		m.TotalProducts++
		m.TotalStock = m.TotalStock.Add(p.CurrentStock)
		m.TotalSold = m.TotalSold.Add(p.TotalSold)
		m.TotalInventoryValue = m.TotalInventoryValue.Add(p.CurrentStock.Mul(p.SalesPrice))

		if p.OutOfStock() {
			m.OutOfStockCount++
		} else if p.StockStatus == models.StockStatusLowStock {
			m.LowStockCount++
		}
		if p.DeadStock() {
			m.DeadStockCount++
		}
	}

	if m.TotalStock.GreaterThan(decimal.Zero) {
		m.TurnoverRate = m.TotalSold.Div(m.TotalStock).InexactFloat64()
	}

	return m
}

type InventoryAnalyzer struct {
	Policy InventoryPolicy
}

// Score applies the stock-health deltas; the trend follows total inventory
// value.
func (a InventoryAnalyzer) Score(curr InventoryMetrics, prev *InventoryMetrics) ModuleHealth {
	p := a.Policy
	score := p.Baseline

	if curr.TotalProducts > 0 {
		total := float64(curr.TotalProducts)
		if float64(curr.OutOfStockCount) > p.OutOfStockRatio*total {
			score -= p.OutOfStockPenalty
		}
		if float64(curr.DeadStockCount) > p.DeadStockRatio*total {
			score -= p.DeadStockPenalty
		}
		if float64(curr.LowStockCount) > p.LowStockRatio*total {
			score -= p.LowStockPenalty
		}
	}
	if curr.TotalStock.GreaterThan(decimal.Zero) && curr.TurnoverRate > p.TurnoverBonusMin {
		score += p.TurnoverBonus
	}

	trend := TrendStable
	if prev != nil {
		trend = trendBetween(curr.TotalInventoryValue.InexactFloat64(), prev.TotalInventoryValue.InexactFloat64())
	}

	return moduleHealth(score, trend)
}

func (a InventoryAnalyzer) Insights(curr InventoryMetrics) []Insight {
	var insights []Insight

	if curr.OutOfStockCount > 0 {
		severity := InsightWarning
		if curr.TotalProducts > 0 && float64(curr.OutOfStockCount) > a.Policy.OutOfStockRatio*float64(curr.TotalProducts) {
			severity = InsightDanger
		}
		insights = append(insights, Insight{
			Type:        severity,
			Title:       "Out of stock",
			Description: fmt.Sprintf("%d products are out of stock", curr.OutOfStockCount),
			Metric:      fmt.Sprintf("%d", curr.OutOfStockCount),
			Action:      "Restock to avoid losing sales",
		})
	}
	if curr.DeadStockCount > 0 {
		insights = append(insights, Insight{
			Type:        InsightWarning,
			Title:       "Dead stock",
			Description: fmt.Sprintf("%d products have stock on hand but have never sold", curr.DeadStockCount),
			Metric:      fmt.Sprintf("%d", curr.DeadStockCount),
			Action:      "Consider discounting or delisting",
		})
	}
	if curr.LowStockCount > 0 {
		insights = append(insights, Insight{
			Type:        InsightInfo,
			Title:       "Low stock items",
			Description: fmt.Sprintf("%d products are below their critical level", curr.LowStockCount),
			Metric:      fmt.Sprintf("%d", curr.LowStockCount),
		})
	}
	if curr.TotalStock.GreaterThan(decimal.Zero) && curr.TurnoverRate > a.Policy.TurnoverBonusMin {
		insights = append(insights, Insight{
			Type:        InsightSuccess,
			Title:       "Healthy turnover",
			Description: fmt.Sprintf("Inventory turns over at %.2fx current stock", curr.TurnoverRate),
			Metric:      fmt.Sprintf("%.2f", curr.TurnoverRate),
		})
	}

	return insights
}
