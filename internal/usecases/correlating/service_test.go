package correlating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		Engine: config.Engine{
			ConversionWindowDays:   7,
			ImpactSalesWeight:      10,
			ImpactRevenueWeight:    0.1,
			ImpactEngagementWeight: 100,
		},
	}
}

func TestService_Correlate(t *testing.T) {
	service := &Service{cfg: testConfig()}

	tests := []struct {
		name     string
		orders   []domain.Order
		videos   []domain.Video
		validate func(t *testing.T, correlations []domain.VideoCorrelation)
	}{
		{
			name: "Apenas pedidos dentro da janela de 7 dias contam",
			orders: []domain.Order{
				{OrderID: "1", OrderDate: time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC), Total: 50},
				{OrderID: "2", OrderDate: time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC), Total: 30},
			},
			videos: []domain.Video{
				{Rank: 1, Title: "Vídeo A", PublishedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Views: 1000, Likes: 100},
			},
			validate: func(t *testing.T, correlations []domain.VideoCorrelation) {
				assert.Len(t, correlations, 1)
				assert.Equal(t, 1, correlations[0].SalesInWindow)
				assert.Equal(t, 50.0, correlations[0].RevenueInWindow)
				assert.Equal(t, []int{2}, correlations[0].DaysToConvert)
				// 1 venda / 1000 views * 10000
				assert.Equal(t, 10.0, correlations[0].ConversionRate)
			},
		},
		{
			name: "Pedido exatamente no limite da janela conta",
			orders: []domain.Order{
				{OrderID: "1", OrderDate: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), Total: 100},
			},
			videos: []domain.Video{
				{Rank: 1, PublishedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Views: 100},
			},
			validate: func(t *testing.T, correlations []domain.VideoCorrelation) {
				assert.Equal(t, 1, correlations[0].SalesInWindow)
				assert.Equal(t, []int{7}, correlations[0].DaysToConvert)
			},
		},
		{
			name: "Vídeo sem visualizações tem taxa de conversão zero",
			orders: []domain.Order{
				{OrderID: "1", OrderDate: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Total: 100},
			},
			videos: []domain.Video{
				{Rank: 1, PublishedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Views: 0, Likes: 10},
			},
			validate: func(t *testing.T, correlations []domain.VideoCorrelation) {
				assert.Equal(t, 1, correlations[0].SalesInWindow)
				assert.Zero(t, correlations[0].ConversionRate)
			},
		},
		{
			name: "Resultado ordenado por score de impacto decrescente",
			orders: []domain.Order{
				{OrderID: "1", OrderDate: time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC), Total: 100},
				{OrderID: "2", OrderDate: time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC), Total: 200},
			},
			videos: []domain.Video{
				{Rank: 1, Title: "Sem vendas", PublishedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Views: 100},
				{Rank: 2, Title: "Com vendas", PublishedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Views: 100},
			},
			validate: func(t *testing.T, correlations []domain.VideoCorrelation) {
				assert.Equal(t, "Com vendas", correlations[0].Video.Title)
				// 2 vendas * 10 + 300 * 0.1 = 50
				assert.Equal(t, 50.0, correlations[0].ImpactScore)
				assert.Equal(t, "Sem vendas", correlations[1].Video.Title)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, service.Correlate(tt.orders, tt.videos))
		})
	}
}

func TestAverageConversionWindow(t *testing.T) {
	tests := []struct {
		name         string
		correlations []domain.VideoCorrelation
		expected     float64
	}{
		{
			name:     "Sem conversões retorna zero",
			expected: 0,
		},
		{
			name: "Média sobre todos os intervalos de todos os vídeos",
			correlations: []domain.VideoCorrelation{
				{DaysToConvert: []int{1, 3}},
				{DaysToConvert: []int{5}},
				{DaysToConvert: nil},
			},
			expected: 3.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AverageConversionWindow(tt.correlations))
		})
	}
}

func TestBestPublishingDays(t *testing.T) {
	// 2024-01-07 é domingo, 2024-01-08 é segunda
	correlations := []domain.VideoCorrelation{
		{Video: domain.Video{PublishedAt: time.Date(2024, 1, 7, 10, 0, 0, 0, time.UTC)}, SalesInWindow: 4},
		{Video: domain.Video{PublishedAt: time.Date(2024, 1, 14, 10, 0, 0, 0, time.UTC)}, SalesInWindow: 2},
		{Video: domain.Video{PublishedAt: time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC)}, SalesInWindow: 1},
	}

	stats := BestPublishingDays(correlations)

	assert.Len(t, stats, 7)
	assert.Equal(t, "Domingo", stats[0].Day)
	assert.Equal(t, 3.0, stats[0].AvgSales)
	assert.Equal(t, "Lunes", stats[1].Day)
	assert.Equal(t, 1.0, stats[1].AvgSales)

	// Os sete dias aparecem exatamente uma vez, mesmo sem vídeos
	seen := make(map[string]int)
	for _, stat := range stats {
		seen[stat.Day]++
	}
	for _, name := range domain.WeekdayNames {
		assert.Equal(t, 1, seen[name])
	}
}

func TestBestPublishingDays_SemVideos(t *testing.T) {
	stats := BestPublishingDays(nil)

	assert.Len(t, stats, 7)
	for _, stat := range stats {
		assert.Zero(t, stat.AvgSales)
	}
}

func TestEngagementVsConversion(t *testing.T) {
	correlations := []domain.VideoCorrelation{
		// Viral que não converte: engagement 0.5, 0 vendas
		{Video: domain.Video{Title: "Viral", Views: 1000, Likes: 500}, SalesInWindow: 0},
		// Converte sem alcance: engagement 0.01, 10 vendas
		{Video: domain.Video{Title: "Eficiente", Views: 1000, Likes: 10}, SalesInWindow: 10},
		// Mediano nos dois eixos
		{Video: domain.Video{Title: "Mediano", Views: 1000, Likes: 200}, SalesInWindow: 3},
	}

	split := EngagementVsConversion(correlations)

	assert.Len(t, split.HighEngagementLowSales, 1)
	assert.Equal(t, "Viral", split.HighEngagementLowSales[0].Title)
	assert.Len(t, split.HighSalesLowEngagement, 1)
	assert.Equal(t, "Eficiente", split.HighSalesLowEngagement[0].Title)
}

func TestService_Analyze(t *testing.T) {
	service := NewService(testConfig())

	tests := []struct {
		name     string
		orders   []domain.Order
		videos   []domain.Video
		validate func(t *testing.T, insights *domain.VideoInsights)
	}{
		{
			name: "Lista de vídeos vazia produz resultado vazio, não erro",
			validate: func(t *testing.T, insights *domain.VideoInsights) {
				assert.Empty(t, insights.TopConvertingVideos)
				assert.Zero(t, insights.AverageConversionWindow)
				assert.Len(t, insights.BestPublishingDays, 7)
				assert.Empty(t, insights.Recommendations)
			},
		},
		{
			name: "Resumo completo com recomendações em espanhol",
			orders: []domain.Order{
				{OrderID: "1", OrderDate: time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC), Total: 80},
				{OrderID: "2", OrderDate: time.Date(2024, 1, 9, 10, 0, 0, 0, time.UTC), Total: 120},
			},
			videos: []domain.Video{
				{Rank: 1, Title: "Vídeo A", PublishedAt: time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC), Views: 5000, Likes: 800},
				{Rank: 2, Title: "Vídeo B", PublishedAt: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), Views: 3000, Likes: 100},
			},
			validate: func(t *testing.T, insights *domain.VideoInsights) {
				assert.Len(t, insights.TopConvertingVideos, 2)
				assert.Equal(t, "Vídeo A", insights.TopConvertingVideos[0].Video.Title)
				assert.Equal(t, 2, insights.TopConvertingVideos[0].SalesInWindow)
				assert.Equal(t, 1.5, insights.AverageConversionWindow)
				assert.NotEmpty(t, insights.Recommendations)
				assert.Contains(t, insights.Recommendations[0], "Domingo")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, service.Analyze(tt.orders, tt.videos))
		})
	}
}
