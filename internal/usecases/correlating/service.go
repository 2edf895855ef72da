// Package correlating cruza vídeos publicados com os pedidos ocorridos na
// janela de conversão e produz os rankings e recomendações do dashboard
package correlating

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

const (
	topConvertingLimit   = 10
	partitionLimit       = 5
	highLikesThreshold   = 500
	conversionRateFactor = 10000
)

type Correlator interface {
	Analyze(orders []domain.Order, videos []domain.Video) *domain.VideoInsights
	Correlate(orders []domain.Order, videos []domain.Video) []domain.VideoCorrelation
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Correlator {
	return &Service{
		cfg: cfg,
	}
}

// Analyze roda a correlação completa e monta o resumo consumido pelo
// dashboard. Lista de vídeos vazia produz um resultado vazio, não um erro.
func (s *Service) Analyze(orders []domain.Order, videos []domain.Video) *domain.VideoInsights {
	correlations := s.Correlate(orders, videos)

	topConverting := correlations
	if len(topConverting) > topConvertingLimit {
		topConverting = topConverting[:topConvertingLimit]
	}

	insights := &domain.VideoInsights{
		TopConvertingVideos:     topConverting,
		AverageConversionWindow: AverageConversionWindow(correlations),
		BestPublishingDays:      BestPublishingDays(correlations),
		EngagementVsConversion:  EngagementVsConversion(correlations),
	}
	insights.Recommendations = buildRecommendations(insights, correlations)

	return insights
}

// Correlate calcula, para cada vídeo, os pedidos da janela de conversão e o
// score de impacto, retornando a lista ordenada por impacto decrescente
func (s *Service) Correlate(orders []domain.Order, videos []domain.Video) []domain.VideoCorrelation {
	window := time.Duration(s.cfg.Engine.ConversionWindowDays) * 24 * time.Hour

	correlations := make([]domain.VideoCorrelation, 0, len(videos))
	for _, video := range videos {
		correlations = append(correlations, s.correlateVideo(video, orders, window))
	}

	sort.SliceStable(correlations, func(i, j int) bool {
		return correlations[i].ImpactScore > correlations[j].ImpactScore
	})

	return correlations
}

func (s *Service) correlateVideo(video domain.Video, orders []domain.Order, window time.Duration) domain.VideoCorrelation {
	windowEnd := video.PublishedAt.Add(window)

	sales := 0
	revenue := 0.0
	daysToConvert := make([]int, 0)

	for _, order := range orders {
		// Janela inclusiva nas duas pontas
		if order.OrderDate.Before(video.PublishedAt) || order.OrderDate.After(windowEnd) {
			continue
		}

		sales++
		revenue += order.Total
		daysToConvert = append(daysToConvert, int(math.Floor(order.OrderDate.Sub(video.PublishedAt).Hours()/24)))
	}

	conversionRate := 0.0
	if video.Views > 0 {
		conversionRate = float64(sales) / float64(video.Views) * conversionRateFactor
	}

	impactScore := float64(sales)*s.cfg.Engine.ImpactSalesWeight +
		revenue*s.cfg.Engine.ImpactRevenueWeight +
		video.EngagementRate()*s.cfg.Engine.ImpactEngagementWeight

	return domain.VideoCorrelation{
		Video:           video,
		SalesInWindow:   sales,
		RevenueInWindow: utils.RoundWithTwoDecimalPlace(revenue),
		ConversionRate:  utils.RoundWithTwoDecimalPlace(conversionRate),
		DaysToConvert:   daysToConvert,
		ImpactScore:     utils.RoundWithTwoDecimalPlace(impactScore),
	}
}

// AverageConversionWindow é a média de todos os intervalos publicação ->
// pedido, em dias, sobre todos os vídeos
func AverageConversionWindow(correlations []domain.VideoCorrelation) float64 {
	total := 0
	count := 0

	for _, correlation := range correlations {
		for _, days := range correlation.DaysToConvert {
			total += days
			count++
		}
	}

	if count == 0 {
		return 0
	}

	return utils.RoundWithTwoDecimalPlace(float64(total) / float64(count))
}

// BestPublishingDays calcula a média de vendas na janela por dia da semana
// de publicação. Os sete dias aparecem sempre, ordenados pela média.
func BestPublishingDays(correlations []domain.VideoCorrelation) []domain.PublishingDayStat {
	totals := [7]int{}
	counts := [7]int{}

	for _, correlation := range correlations {
		weekday := int(correlation.Video.PublishedAt.Weekday())
		totals[weekday] += correlation.SalesInWindow
		counts[weekday]++
	}

	stats := make([]domain.PublishingDayStat, 7)
	for i, name := range domain.WeekdayNames {
		avg := 0.0
		if counts[i] > 0 {
			avg = utils.RoundWithTwoDecimalPlace(float64(totals[i]) / float64(counts[i]))
		}
		stats[i] = domain.PublishingDayStat{Day: name, AvgSales: avg}
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].AvgSales > stats[j].AvgSales
	})

	return stats
}

// EngagementVsConversion separa os vídeos em dois quadrantes acionáveis:
// virais que não convertem e conversores sem alcance
func EngagementVsConversion(correlations []domain.VideoCorrelation) domain.EngagementSplit {
	split := domain.EngagementSplit{
		HighEngagementLowSales: make([]domain.Video, 0, partitionLimit),
		HighSalesLowEngagement: make([]domain.Video, 0, partitionLimit),
	}

	if len(correlations) == 0 {
		return split
	}

	totalEngagement := 0.0
	totalSales := 0
	for _, correlation := range correlations {
		totalEngagement += correlation.Video.EngagementRate()
		totalSales += correlation.SalesInWindow
	}

	meanEngagement := totalEngagement / float64(len(correlations))
	meanSales := float64(totalSales) / float64(len(correlations))

	for _, correlation := range correlations {
		engagement := correlation.Video.EngagementRate()
		sales := float64(correlation.SalesInWindow)

		switch {
		case engagement > meanEngagement && sales < meanSales:
			if len(split.HighEngagementLowSales) < partitionLimit {
				split.HighEngagementLowSales = append(split.HighEngagementLowSales, correlation.Video)
			}
		case engagement < meanEngagement && sales > meanSales:
			if len(split.HighSalesLowEngagement) < partitionLimit {
				split.HighSalesLowEngagement = append(split.HighSalesLowEngagement, correlation.Video)
			}
		}
	}

	return split
}

// buildRecommendations converte os achados em frases acionáveis. A seleção
// do que vira recomendação mora aqui para o frontend não reimplementar os
// limiares.
func buildRecommendations(insights *domain.VideoInsights, correlations []domain.VideoCorrelation) []string {
	if len(correlations) == 0 {
		return []string{}
	}

	recommendations := make([]string, 0, 5)

	if len(insights.BestPublishingDays) > 0 && insights.BestPublishingDays[0].AvgSales > 0 {
		best := insights.BestPublishingDays[0]
		recommendations = append(recommendations, fmt.Sprintf(
			"📅 Publica más vídeos el %s: es el día con mejor promedio de ventas (%.1f por vídeo)",
			best.Day, best.AvgSales,
		))
	}

	if len(insights.TopConvertingVideos) > 0 && insights.TopConvertingVideos[0].SalesInWindow > 0 {
		top := insights.TopConvertingVideos[0]
		recommendations = append(recommendations, fmt.Sprintf(
			"🏆 El vídeo #%d es tu mayor generador de impacto: %d ventas y %.2f€ en la semana posterior",
			top.Video.Rank, top.SalesInWindow, top.RevenueInWindow,
		))
	}

	if insights.AverageConversionWindow > 0 {
		recommendations = append(recommendations, fmt.Sprintf(
			"⏱️ Las ventas llegan de media %.1f días después de publicar",
			insights.AverageConversionWindow,
		))
	}

	if highLikes, rest, ok := likesCohortAverages(correlations); ok {
		recommendations = append(recommendations, fmt.Sprintf(
			"❤️ Los vídeos con más de %d likes generan de media %.1f ventas frente a %.1f del resto",
			highLikesThreshold, highLikes, rest,
		))
	}

	if len(insights.EngagementVsConversion.HighEngagementLowSales) > 0 {
		recommendations = append(recommendations, fmt.Sprintf(
			"⚠️ Tienes %d vídeos con mucho engagement que no convierten: revisa su llamada a la acción",
			len(insights.EngagementVsConversion.HighEngagementLowSales),
		))
	}

	return recommendations
}

// likesCohortAverages compara a média de vendas dos vídeos com muitos likes
// com a dos demais. Só vale quando os dois grupos existem.
func likesCohortAverages(correlations []domain.VideoCorrelation) (highLikes, rest float64, ok bool) {
	highTotal, highCount := 0, 0
	restTotal, restCount := 0, 0

	for _, correlation := range correlations {
		if correlation.Video.Likes > highLikesThreshold {
			highTotal += correlation.SalesInWindow
			highCount++
		} else {
			restTotal += correlation.SalesInWindow
			restCount++
		}
	}

	if highCount == 0 || restCount == 0 {
		return 0, 0, false
	}

	highLikes = utils.RoundWithTwoDecimalPlace(float64(highTotal) / float64(highCount))
	rest = utils.RoundWithTwoDecimalPlace(float64(restTotal) / float64(restCount))

	return highLikes, rest, true
}
