package domain

// PeriodMetrics resume um mês calendário de pedidos
type PeriodMetrics struct {
	Revenue float64 `json:"revenue"`
	Sales   int     `json:"sales"`
}

type GrowthRates struct {
	RevenueMoM float64 `json:"revenue_mom"`
	SalesMoM   float64 `json:"sales_mom"`
	RevenueYoY float64 `json:"revenue_yoy"`
	SalesYoY   float64 `json:"sales_yoy"`
}

// ComparisonResult compara o mês alvo com o mês anterior e com o mesmo mês
// do ano anterior. Cada taxa de crescimento é 0 quando a base é 0.
type ComparisonResult struct {
	CurrentMonth      PeriodMetrics `json:"current_month"`
	PreviousMonth     PeriodMetrics `json:"previous_month"`
	SameMonthLastYear PeriodMetrics `json:"same_month_last_year"`
	Growth            GrowthRates   `json:"growth"`
}

// TimeSeriesPoint é um mês da série histórica, com rótulo curto (ex: "ene 25")
type TimeSeriesPoint struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Sales   int     `json:"sales"`
}

type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// ForecastResult é a previsão conservadora do próximo mês.
// AppliedGrowthRate é a taxa efetivamente aplicada (já amortecida), não a
// tendência bruta detectada.
type ForecastResult struct {
	PredictedRevenue  float64    `json:"predicted_revenue"`
	PredictedSales    int        `json:"predicted_sales"`
	Confidence        Confidence `json:"confidence"`
	Trend             Trend      `json:"trend"`
	AppliedGrowthRate float64    `json:"applied_growth_rate"`
}
