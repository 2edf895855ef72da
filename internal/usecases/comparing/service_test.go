package comparing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Engine: config.Engine{
			ConversionWindowDays:    7,
			ImpactSalesWeight:       10,
			ImpactRevenueWeight:     0.1,
			ImpactEngagementWeight:  100,
			ForecastTrendDamping:    0.3,
			ForecastHistoryMonths:   6,
			MonthFetchMaxConcurrent: 5,
		},
	}
}

func ordersWithRevenue(totals ...float64) []domain.Order {
	orders := make([]domain.Order, 0, len(totals))
	for _, total := range totals {
		orders = append(orders, domain.Order{Total: total})
	}
	return orders
}

func TestService_Compare(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(repo *mocks.MockOrderRepository)
		validate func(t *testing.T, result *domain.ComparisonResult, err error)
	}{
		{
			name: "Crescimento MoM e YoY calculados sobre as bases corretas",
			setup: func(repo *mocks.MockOrderRepository) {
				repo.EXPECT().GetByMonth(2024, time.March).Return(ordersWithRevenue(200, 200), nil)
				repo.EXPECT().GetByMonth(2024, time.February).Return(ordersWithRevenue(200), nil)
				repo.EXPECT().GetByMonth(2023, time.March).Return(ordersWithRevenue(100, 100, 100, 100), nil)
			},
			validate: func(t *testing.T, result *domain.ComparisonResult, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 400.0, result.CurrentMonth.Revenue)
				assert.Equal(t, 2, result.CurrentMonth.Sales)
				assert.Equal(t, 100.0, result.Growth.RevenueMoM) // 200 -> 400
				assert.Equal(t, 100.0, result.Growth.SalesMoM)   // 1 -> 2
				assert.Equal(t, 0.0, result.Growth.RevenueYoY)   // 400 -> 400
				assert.Equal(t, -50.0, result.Growth.SalesYoY)   // 4 -> 2
			},
		},
		{
			name: "Base zero resulta em crescimento zero, não em infinito",
			setup: func(repo *mocks.MockOrderRepository) {
				repo.EXPECT().GetByMonth(2024, time.March).Return(ordersWithRevenue(500), nil)
				repo.EXPECT().GetByMonth(2024, time.February).Return([]domain.Order{}, nil)
				repo.EXPECT().GetByMonth(2023, time.March).Return([]domain.Order{}, nil)
			},
			validate: func(t *testing.T, result *domain.ComparisonResult, err error) {
				assert.NoError(t, err)
				assert.Zero(t, result.Growth.RevenueMoM)
				assert.Zero(t, result.Growth.SalesMoM)
				assert.Zero(t, result.Growth.RevenueYoY)
				assert.Zero(t, result.Growth.SalesYoY)
			},
		},
		{
			name: "Falha em qualquer mês aborta a comparação",
			setup: func(repo *mocks.MockOrderRepository) {
				repo.EXPECT().GetByMonth(2024, time.March).Return(ordersWithRevenue(500), nil)
				repo.EXPECT().GetByMonth(2024, time.February).Return(nil, assert.AnError)
				repo.EXPECT().GetByMonth(2023, time.March).Return([]domain.Order{}, nil)
			},
			validate: func(t *testing.T, result *domain.ComparisonResult, err error) {
				assert.Error(t, err)
				assert.Nil(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockOrderRepo := mocks.NewMockOrderRepository(ctrl)
			tt.setup(mockOrderRepo)

			service := NewService(testConfig(), mockOrderRepo)

			result, err := service.Compare(2024, time.March)
			tt.validate(t, result, err)
		})
	}
}

func TestService_TimeSeries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockOrderRepository(ctrl)

	// Série de jan a jun de 2024
	mockOrderRepo.EXPECT().GetByMonth(2024, time.January).Return(ordersWithRevenue(100), nil)
	mockOrderRepo.EXPECT().GetByMonth(2024, time.February).Return(ordersWithRevenue(200), nil)
	mockOrderRepo.EXPECT().GetByMonth(2024, time.March).Return([]domain.Order{}, nil)
	mockOrderRepo.EXPECT().GetByMonth(2024, time.April).Return(ordersWithRevenue(300), nil)
	mockOrderRepo.EXPECT().GetByMonth(2024, time.May).Return(ordersWithRevenue(400), nil)
	mockOrderRepo.EXPECT().GetByMonth(2024, time.June).Return(ordersWithRevenue(500, 100), nil)

	service := NewService(testConfig(), mockOrderRepo)

	series, err := service.TimeSeries(2024, time.June)

	assert.NoError(t, err)
	assert.Len(t, series, 6)

	// Ordem cronológica com rótulos em espanhol
	assert.Equal(t, "ene 24", series[0].Month)
	assert.Equal(t, 100.0, series[0].Revenue)
	assert.Equal(t, "mar 24", series[2].Month)
	assert.Zero(t, series[2].Revenue) // Mês sem pedidos entra zerado
	assert.Equal(t, "jun 24", series[5].Month)
	assert.Equal(t, 600.0, series[5].Revenue)
	assert.Equal(t, 2, series[5].Sales)
}

func TestService_Forecast(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockOrderRepository(ctrl)

	// Receitas mensais: 1000, 1000, 1000, 1100, 1100, 1200
	mockOrderRepo.EXPECT().GetByMonth(2024, time.January).Return(ordersWithRevenue(1000), nil)
	mockOrderRepo.EXPECT().GetByMonth(2024, time.February).Return(ordersWithRevenue(1000), nil)
	mockOrderRepo.EXPECT().GetByMonth(2024, time.March).Return(ordersWithRevenue(1000), nil)
	mockOrderRepo.EXPECT().GetByMonth(2024, time.April).Return(ordersWithRevenue(1100), nil)
	mockOrderRepo.EXPECT().GetByMonth(2024, time.May).Return(ordersWithRevenue(1100), nil)
	mockOrderRepo.EXPECT().GetByMonth(2024, time.June).Return(ordersWithRevenue(1200), nil)

	service := NewService(testConfig(), mockOrderRepo)

	forecast, err := service.Forecast(2024, time.June)

	assert.NoError(t, err)
	// Tendência bruta: (1133.33 - 1000) / 1000 = +13.33%, amortecida para +4%
	assert.Equal(t, domain.TrendUp, forecast.Trend)
	assert.Equal(t, 4.0, forecast.AppliedGrowthRate)
	// Base: (mediana 1100 + média 1066.67) / 2 = 1083.33, projetada com +4%
	assert.Equal(t, 1126.67, forecast.PredictedRevenue)
	assert.Equal(t, 1, forecast.PredictedSales)
	// Seis meses válidos com receita estável (CV ~7%)
	assert.Equal(t, domain.ConfidenceHigh, forecast.Confidence)
}

func TestComputeForecast(t *testing.T) {
	tests := []struct {
		name     string
		series   []domain.TimeSeriesPoint
		validate func(t *testing.T, forecast domain.ForecastResult)
	}{
		{
			name:   "Série vazia resulta em previsão zerada com confiança baixa",
			series: nil,
			validate: func(t *testing.T, forecast domain.ForecastResult) {
				assert.Zero(t, forecast.PredictedRevenue)
				assert.Zero(t, forecast.PredictedSales)
				assert.Equal(t, domain.ConfidenceLow, forecast.Confidence)
				assert.Equal(t, domain.TrendStable, forecast.Trend)
			},
		},
		{
			name: "Um único mês válido não produz previsão",
			series: []domain.TimeSeriesPoint{
				{Revenue: 0, Sales: 0},
				{Revenue: 0, Sales: 0},
				{Revenue: 1000, Sales: 10},
			},
			validate: func(t *testing.T, forecast domain.ForecastResult) {
				assert.Zero(t, forecast.PredictedRevenue)
				assert.Zero(t, forecast.PredictedSales)
				assert.Equal(t, domain.ConfidenceLow, forecast.Confidence)
				assert.Equal(t, domain.TrendStable, forecast.Trend)
			},
		},
		{
			name: "Meses sem vendas são descartados da base",
			series: []domain.TimeSeriesPoint{
				{Revenue: 0, Sales: 0},
				{Revenue: 0, Sales: 0},
				{Revenue: 1000, Sales: 10},
				{Revenue: 1000, Sales: 10},
			},
			validate: func(t *testing.T, forecast domain.ForecastResult) {
				// Dois meses válidos: confiança baixa, sem tendência detectável
				assert.Equal(t, domain.ConfidenceLow, forecast.Confidence)
				assert.Equal(t, domain.TrendStable, forecast.Trend)
				assert.Equal(t, 1000.0, forecast.PredictedRevenue)
				assert.Equal(t, 10, forecast.PredictedSales)
			},
		},
		{
			name: "Queda acima do limiar marca tendência de baixa",
			series: []domain.TimeSeriesPoint{
				{Revenue: 2000, Sales: 20},
				{Revenue: 2000, Sales: 20},
				{Revenue: 2000, Sales: 20},
				{Revenue: 1000, Sales: 10},
				{Revenue: 1000, Sales: 10},
				{Revenue: 1000, Sales: 10},
			},
			validate: func(t *testing.T, forecast domain.ForecastResult) {
				assert.Equal(t, domain.TrendDown, forecast.Trend)
				assert.Negative(t, forecast.AppliedGrowthRate)
			},
		},
		{
			name: "Variação dentro do limiar mantém tendência estável",
			series: []domain.TimeSeriesPoint{
				{Revenue: 1000, Sales: 10},
				{Revenue: 1000, Sales: 10},
				{Revenue: 1000, Sales: 10},
				{Revenue: 1050, Sales: 10},
				{Revenue: 1000, Sales: 10},
				{Revenue: 1050, Sales: 10},
			},
			validate: func(t *testing.T, forecast domain.ForecastResult) {
				assert.Equal(t, domain.TrendStable, forecast.Trend)
			},
		},
		{
			name: "Receita irregular rebaixa a confiança",
			series: []domain.TimeSeriesPoint{
				{Revenue: 100, Sales: 1},
				{Revenue: 3000, Sales: 30},
				{Revenue: 150, Sales: 2},
				{Revenue: 2800, Sales: 28},
				{Revenue: 120, Sales: 1},
				{Revenue: 2500, Sales: 25},
			},
			validate: func(t *testing.T, forecast domain.ForecastResult) {
				assert.Equal(t, domain.ConfidenceLow, forecast.Confidence)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, computeForecast(tt.series, 0.3))
		})
	}
}
