package finance

import (
	"testing"

	"github.com/mosaicerp/mosaic_backend/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func product(stock, sold, price int64, status models.StockStatus) models.Product {
	return models.Product{
		BusinessId:   "biz-1",
		SalesPrice:   decimal.NewFromInt(price),
		CurrentStock: decimal.NewFromInt(stock),
		TotalSold:    decimal.NewFromInt(sold),
		StockStatus:  status,
	}
}

func TestExtractInventoryMetricsCounts(t *testing.T) {
	products := []models.Product{
		product(100, 340, 35, models.StockStatusInStock),
		product(0, 58, 410, models.StockStatusOutOfStock),
		product(44, 0, 75, models.StockStatusInStock),
		product(3, 12, 20, models.StockStatusLowStock),
	}

	m := ExtractInventoryMetrics(products, testAsOf)

	require.Equal(t, 4, m.TotalProducts)
	require.Equal(t, 1, m.OutOfStockCount)
	require.Equal(t, 1, m.LowStockCount)
	require.Equal(t, 1, m.DeadStockCount)
	require.True(t, m.TotalStock.Equal(decimal.NewFromInt(147)))
	// 100*35 + 0*410 + 44*75 + 3*20 = 6860
	require.True(t, m.TotalInventoryValue.Equal(decimal.NewFromInt(6860)))
}

func TestExtractInventoryMetricsZeroStockTurnover(t *testing.T) {
	products := []models.Product{
		product(0, 58, 410, models.StockStatusOutOfStock),
	}

	m := ExtractInventoryMetrics(products, testAsOf)

	require.Equal(t, float64(0), m.TurnoverRate)
}

func TestInventoryScoreEmptyInputIsBaseline(t *testing.T) {
	a := InventoryAnalyzer{Policy: DefaultScoringPolicy().Inventory}
	m := ExtractInventoryMetrics(nil, testAsOf)

	health := a.Score(m, nil)

	require.Equal(t, a.Policy.Baseline, health.Score)
	require.Empty(t, a.Insights(m))
}

func TestInventoryScoreHealthyTurnover(t *testing.T) {
	a := InventoryAnalyzer{Policy: DefaultScoringPolicy().Inventory}
	products := []models.Product{
		product(100, 150, 10, models.StockStatusInStock),
	}
	m := ExtractInventoryMetrics(products, testAsOf)

	health := a.Score(m, nil)
	require.Equal(t, a.Policy.Baseline+a.Policy.TurnoverBonus, health.Score)

	insights := a.Insights(m)
	require.Len(t, insights, 1)
	require.Equal(t, "Healthy turnover", insights[0].Title)
	require.Equal(t, InsightSuccess, insights[0].Type)
}

func TestInventoryScoreStockProblems(t *testing.T) {
	a := InventoryAnalyzer{Policy: DefaultScoringPolicy().Inventory}
	products := []models.Product{
		product(0, 10, 50, models.StockStatusOutOfStock),
		product(0, 5, 30, models.StockStatusOutOfStock),
		product(20, 0, 10, models.StockStatusInStock),
	}
	m := ExtractInventoryMetrics(products, testAsOf)

	// 2/3 out of stock and 1/3 dead stock both exceed their ratios.
	health := a.Score(m, nil)
	require.Equal(t, a.Policy.Baseline-a.Policy.OutOfStockPenalty-a.Policy.DeadStockPenalty, health.Score)

	insights := a.Insights(m)
	require.NotEmpty(t, insights)
	require.Equal(t, "Out of stock", insights[0].Title)
	require.Equal(t, InsightDanger, insights[0].Type)
}
