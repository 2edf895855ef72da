// Package comparing implementa o motor de comparação de períodos e a
// previsão conservadora do próximo mês
package comparing

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

type Comparer interface {
	Compare(year int, month time.Month) (*domain.ComparisonResult, error)
	TimeSeries(year int, month time.Month) ([]domain.TimeSeriesPoint, error)
	Forecast(year int, month time.Month) (*domain.ForecastResult, error)
}

type Service struct {
	cfg             *config.Config
	orderRepository repository.OrderRepository
}

func NewService(cfg *config.Config, orderRepo repository.OrderRepository) Comparer {
	return &Service{
		cfg:             cfg,
		orderRepository: orderRepo,
	}
}

// Compare compara o mês alvo com o mês anterior e com o mesmo mês do ano
// anterior. Os três meses são buscados em paralelo; falha em qualquer busca
// aborta a comparação, já que um resultado parcial enganaria o dashboard.
func (s *Service) Compare(year int, month time.Month) (*domain.ComparisonResult, error) {
	target := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	previous := target.AddDate(0, -1, 0)
	lastYear := target.AddDate(-1, 0, 0)

	var (
		currentMetrics  domain.PeriodMetrics
		previousMetrics domain.PeriodMetrics
		lastYearMetrics domain.PeriodMetrics
		currentErr      error
		previousErr     error
		lastYearErr     error
	)

	wg := sync.WaitGroup{}
	wg.Add(3)

	go func() {
		defer wg.Done()
		currentMetrics, currentErr = s.monthMetrics(target.Year(), target.Month())
	}()

	go func() {
		defer wg.Done()
		previousMetrics, previousErr = s.monthMetrics(previous.Year(), previous.Month())
	}()

	go func() {
		defer wg.Done()
		lastYearMetrics, lastYearErr = s.monthMetrics(lastYear.Year(), lastYear.Month())
	}()

	wg.Wait()

	for _, err := range []error{currentErr, previousErr, lastYearErr} {
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"year":  year,
				"month": int(month),
			}).Error("Erro ao buscar pedidos para comparação de períodos")
			return nil, err
		}
	}

	return &domain.ComparisonResult{
		CurrentMonth:      currentMetrics,
		PreviousMonth:     previousMetrics,
		SameMonthLastYear: lastYearMetrics,
		Growth: domain.GrowthRates{
			RevenueMoM: growthRate(currentMetrics.Revenue, previousMetrics.Revenue),
			SalesMoM:   growthRate(float64(currentMetrics.Sales), float64(previousMetrics.Sales)),
			RevenueYoY: growthRate(currentMetrics.Revenue, lastYearMetrics.Revenue),
			SalesYoY:   growthRate(float64(currentMetrics.Sales), float64(lastYearMetrics.Sales)),
		},
	}, nil
}

// TimeSeries monta a série histórica dos últimos meses terminando no mês
// alvo, em ordem cronológica. Meses sem pedidos entram zerados na série.
func (s *Service) TimeSeries(year int, month time.Month) ([]domain.TimeSeriesPoint, error) {
	months := s.cfg.Engine.ForecastHistoryMonths
	if months < 1 {
		return nil, fmt.Errorf("quantidade de meses da série inválida: %d", months)
	}

	target := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	series := make([]domain.TimeSeriesPoint, months)

	// Limitar o número de buscas simultâneas no banco
	semaphore := make(chan struct{}, s.cfg.Engine.MonthFetchMaxConcurrent)

	var fetchWg sync.WaitGroup
	var mutex sync.Mutex
	var fetchErr error

	for i := 0; i < months; i++ {
		fetchWg.Add(1)

		go func(index int) {
			defer fetchWg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			ref := target.AddDate(0, index-months+1, 0)
			metrics, err := s.monthMetrics(ref.Year(), ref.Month())
			if err != nil {
				mutex.Lock()
				if fetchErr == nil {
					fetchErr = err
				}
				mutex.Unlock()
				return
			}

			mutex.Lock()
			series[index] = domain.TimeSeriesPoint{
				Month:   utils.MonthLabel(ref.Year(), ref.Month()),
				Revenue: metrics.Revenue,
				Sales:   metrics.Sales,
			}
			mutex.Unlock()
		}(i)
	}

	fetchWg.Wait()

	if fetchErr != nil {
		logrus.WithError(fetchErr).WithFields(logrus.Fields{
			"year":   year,
			"month":  int(month),
			"months": months,
		}).Error("Erro ao montar série histórica de vendas")
		return nil, fetchErr
	}

	return series, nil
}

// Forecast projeta receita e vendas do mês seguinte ao mês alvo a partir da
// série histórica
func (s *Service) Forecast(year int, month time.Month) (*domain.ForecastResult, error) {
	series, err := s.TimeSeries(year, month)
	if err != nil {
		return nil, err
	}

	forecast := computeForecast(series, s.cfg.Engine.ForecastTrendDamping)

	return &forecast, nil
}

func (s *Service) monthMetrics(year int, month time.Month) (domain.PeriodMetrics, error) {
	orders, err := s.orderRepository.GetByMonth(year, month)
	if err != nil {
		return domain.PeriodMetrics{}, err
	}

	revenue := 0.0
	for _, order := range orders {
		revenue += order.Total
	}

	return domain.PeriodMetrics{
		Revenue: utils.RoundWithTwoDecimalPlace(revenue),
		Sales:   len(orders),
	}, nil
}

// growthRate retorna a variação percentual de current sobre previous.
// Base 0 retorna 0: crescimento sobre o nada não é um sinal, é ruído.
func growthRate(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}

	return utils.RoundWithTwoDecimalPlace((current - previous) / previous * 100)
}

// computeForecast é o núcleo puro da previsão. A base é a média entre a
// mediana e a média dos meses com vendas, o que reduz o peso de meses
// atípicos. A tendência compara os três meses mais recentes com os
// anteriores e só é aplicada amortecida.
func computeForecast(series []domain.TimeSeriesPoint, damping float64) domain.ForecastResult {
	validRevenues := make([]float64, 0, len(series))
	validSales := make([]float64, 0, len(series))

	for _, point := range series {
		if point.Sales > 0 {
			validRevenues = append(validRevenues, point.Revenue)
			validSales = append(validSales, float64(point.Sales))
		}
	}

	// Um único mês não dá base de previsão
	if len(validRevenues) < 2 {
		return domain.ForecastResult{
			Confidence: domain.ConfidenceLow,
			Trend:      domain.TrendStable,
		}
	}

	revenueBase := (utils.Median(validRevenues) + utils.Mean(validRevenues)) / 2
	salesBase := (utils.Median(validSales) + utils.Mean(validSales)) / 2

	trendPct := trendPercentage(validRevenues)
	appliedGrowth := trendPct * damping

	trend := domain.TrendStable
	if trendPct > 10 {
		trend = domain.TrendUp
	} else if trendPct < -10 {
		trend = domain.TrendDown
	}

	return domain.ForecastResult{
		PredictedRevenue:  utils.RoundWithTwoDecimalPlace(revenueBase * (1 + appliedGrowth/100)),
		PredictedSales:    int(math.Round(salesBase * (1 + appliedGrowth/100))),
		Confidence:        confidenceLevel(validRevenues),
		Trend:             trend,
		AppliedGrowthRate: utils.RoundWithTwoDecimalPlace(appliedGrowth),
	}
}

// trendPercentage compara a média dos três meses mais recentes com a média
// dos meses anteriores da série válida
func trendPercentage(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}

	recentCount := 3
	if recentCount > len(values) {
		recentCount = len(values)
	}

	older := values[:len(values)-recentCount]
	recent := values[len(values)-recentCount:]

	if len(older) == 0 {
		return 0
	}

	olderAvg := utils.Mean(older)
	if olderAvg == 0 {
		return 0
	}

	return (utils.Mean(recent) - olderAvg) / olderAvg * 100
}

// confidenceLevel classifica a previsão pela quantidade de meses válidos e
// pela regularidade da receita (coeficiente de variação)
func confidenceLevel(values []float64) domain.Confidence {
	cv := utils.CoefficientOfVariation(values)

	if len(values) < 3 || cv > 35 {
		return domain.ConfidenceLow
	}

	if len(values) >= 5 && cv < 15 {
		return domain.ConfidenceHigh
	}

	return domain.ConfidenceMedium
}
