package finance

// ScoringPolicy collects the heuristic thresholds and deltas for all five
// domains. The numbers are policy, not derivations; keeping them in one
// overridable table lets them be tuned and tested apart from the
// aggregation logic.
type ScoringPolicy struct {
	Invoice   InvoicePolicy   `json:"invoice"`
	Expense   ExpensePolicy   `json:"expense"`
	Customer  CustomerPolicy  `json:"customer"`
	Inventory InventoryPolicy `json:"inventory"`
	CashFlow  CashFlowPolicy  `json:"cash_flow"`
}

type InvoicePolicy struct {
	Baseline              int     `json:"baseline"`
	OverdueCountRatio     float64 `json:"overdue_count_ratio"`
	OverdueCountPenalty   int     `json:"overdue_count_penalty"`
	SlowCollectionDays    float64 `json:"slow_collection_days"`
	SlowCollectionPenalty int     `json:"slow_collection_penalty"`
	OnTimeRateBonusMin    float64 `json:"on_time_rate_bonus_min"`
	OnTimeRateBonus       int     `json:"on_time_rate_bonus"`
	RevenueGrowthBonus    int     `json:"revenue_growth_bonus"`
}

type ExpensePolicy struct {
	Baseline       int     `json:"baseline"`
	SpikePct       float64 `json:"spike_pct"`
	SpikePenalty   int     `json:"spike_penalty"`
	UnpaidRatio    float64 `json:"unpaid_ratio"`
	UnpaidPenalty  int     `json:"unpaid_penalty"`
	DecliningBonus int     `json:"declining_bonus"`
}

type CustomerPolicy struct {
	Baseline             int     `json:"baseline"`
	ChurnRiskPct         float64 `json:"churn_risk_pct"`
	ChurnRiskPenalty     int     `json:"churn_risk_penalty"`
	ConcentrationPct     float64 `json:"concentration_pct"`
	ConcentrationPenalty int     `json:"concentration_penalty"`
	ActiveRatioBonusMin  float64 `json:"active_ratio_bonus_min"`
	ActiveRatioBonus     int     `json:"active_ratio_bonus"`
	LowChurnPct          float64 `json:"low_churn_pct"`
	LowChurnBonus        int     `json:"low_churn_bonus"`
}

type InventoryPolicy struct {
	Baseline          int     `json:"baseline"`
	OutOfStockRatio   float64 `json:"out_of_stock_ratio"`
	OutOfStockPenalty int     `json:"out_of_stock_penalty"`
	DeadStockRatio    float64 `json:"dead_stock_ratio"`
	DeadStockPenalty  int     `json:"dead_stock_penalty"`
	LowStockRatio     float64 `json:"low_stock_ratio"`
	LowStockPenalty   int     `json:"low_stock_penalty"`
	TurnoverBonusMin  float64 `json:"turnover_bonus_min"`
	TurnoverBonus     int     `json:"turnover_bonus"`
}

type CashFlowPolicy struct {
	Baseline               int     `json:"baseline"`
	NegativeNetFlowPenalty int     `json:"negative_net_flow_penalty"`
	LiquidityCriticalMax   float64 `json:"liquidity_critical_max"`
	LiquidityPenalty       int     `json:"liquidity_penalty"`
	LiquidityHealthyMin    float64 `json:"liquidity_healthy_min"`
	LiquidityBonus         int     `json:"liquidity_bonus"`
	PositiveNetFlowBonus   int     `json:"positive_net_flow_bonus"`
}

// DefaultScoringPolicy returns the stock thresholds the dashboards ship with.
func DefaultScoringPolicy() ScoringPolicy {
	return ScoringPolicy{
		Invoice: InvoicePolicy{
			Baseline:              75,
			OverdueCountRatio:     0.30,
			OverdueCountPenalty:   20,
			SlowCollectionDays:    60,
			SlowCollectionPenalty: 15,
			OnTimeRateBonusMin:    80,
			OnTimeRateBonus:       15,
			RevenueGrowthBonus:    10,
		},
		Expense: ExpensePolicy{
			Baseline:       70,
			SpikePct:       20,
			SpikePenalty:   20,
			UnpaidRatio:    0.25,
			UnpaidPenalty:  10,
			DecliningBonus: 10,
		},
		Customer: CustomerPolicy{
			Baseline:             70,
			ChurnRiskPct:         30,
			ChurnRiskPenalty:     20,
			ConcentrationPct:     50,
			ConcentrationPenalty: 10,
			ActiveRatioBonusMin:  80,
			ActiveRatioBonus:     10,
			LowChurnPct:          10,
			LowChurnBonus:        10,
		},
		Inventory: InventoryPolicy{
			Baseline:          70,
			OutOfStockRatio:   0.10,
			OutOfStockPenalty: 15,
			DeadStockRatio:    0.20,
			DeadStockPenalty:  10,
			LowStockRatio:     0.20,
			LowStockPenalty:   5,
			TurnoverBonusMin:  1.0,
			TurnoverBonus:     10,
		},
		CashFlow: CashFlowPolicy{
			Baseline:               75,
			NegativeNetFlowPenalty: 15,
			LiquidityCriticalMax:   0.25,
			LiquidityPenalty:       20,
			LiquidityHealthyMin:    1.0,
			LiquidityBonus:         15,
			PositiveNetFlowBonus:   10,
		},
	}
}
