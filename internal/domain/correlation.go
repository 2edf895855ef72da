package domain

// VideoCorrelation relaciona um vídeo com os pedidos ocorridos dentro da
// janela de conversão após a publicação
type VideoCorrelation struct {
	Video           Video   `json:"video"`
	SalesInWindow   int     `json:"sales_in_window"`
	RevenueInWindow float64 `json:"revenue_in_window"`
	ConversionRate  float64 `json:"conversion_rate"`
	DaysToConvert   []int   `json:"days_to_convert"`
	ImpactScore     float64 `json:"impact_score"`
}

type PublishingDayStat struct {
	Day      string  `json:"day"`
	AvgSales float64 `json:"avg_sales"`
}

// EngagementSplit separa vídeos virais que não convertem de vídeos que
// convertem sem alcance
type EngagementSplit struct {
	HighEngagementLowSales []Video `json:"high_engagement_low_sales"`
	HighSalesLowEngagement []Video `json:"high_sales_low_engagement"`
}

type VideoInsights struct {
	TopConvertingVideos     []VideoCorrelation  `json:"top_converting_videos"`
	AverageConversionWindow float64             `json:"average_conversion_window"`
	BestPublishingDays      []PublishingDayStat `json:"best_publishing_days"`
	EngagementVsConversion  EngagementSplit     `json:"engagement_vs_conversion"`
	Recommendations         []string            `json:"recommendations"`
}
