// Package analyzing calcula as estatísticas agregadas do dashboard a partir
// de uma coleção imutável de pedidos. Todas as funções são reduções puras:
// nenhuma mantém estado entre chamadas e o mesmo input produz sempre o mesmo
// output, então o pacote é seguro para chamadas concorrentes.
package analyzing

import (
	"fmt"
	"sort"
	"time"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

// CollaboratorStats agrega os pedidos com atribuição utm por colaboradora.
// A participação é calculada sobre o total de pedidos utm com colaboradora;
// denominador 0 resulta em percentual 0. Ordenação decrescente por vendas,
// estável para empates.
func CollaboratorStats(orders []domain.Order) []domain.CollaboratorStat {
	type accumulator struct {
		sales   int
		revenue float64
	}

	byName := make(map[string]*accumulator)
	names := make([]string, 0)
	utmSales := 0

	for _, order := range orders {
		if order.SourceType != domain.SourceTypeUTM || order.Collaborator == nil {
			continue
		}

		utmSales++
		name := *order.Collaborator
		acc, exists := byName[name]
		if !exists {
			acc = &accumulator{}
			byName[name] = acc
			names = append(names, name)
		}
		acc.sales++
		acc.revenue += order.Total
	}

	stats := make([]domain.CollaboratorStat, 0, len(names))
	for _, name := range names {
		acc := byName[name]

		percentage := 0.0
		if utmSales > 0 {
			percentage = float64(acc.sales) / float64(utmSales) * 100
		}

		stats = append(stats, domain.CollaboratorStat{
			Name:       name,
			Sales:      acc.sales,
			Revenue:    acc.revenue,
			Percentage: percentage,
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Sales > stats[j].Sales
	})

	return stats
}

// TrafficSources distribui todos os pedidos em rótulos de origem.
// Pedidos utm sem colaboradora não deveriam chegar aqui se a normalização
// rodou, mas caem no rótulo de desconhecido em vez de derrubar a agregação.
func TrafficSources(orders []domain.Order) []domain.TrafficSource {
	counts := make(map[string]int)
	labels := make([]string, 0)

	for _, order := range orders {
		label := domain.TrafficSourceUnknown

		switch order.SourceType {
		case domain.SourceTypeUTM:
			if order.Collaborator != nil {
				label = *order.Collaborator
			}
		case domain.SourceTypeOrganic:
			label = domain.TrafficSourceOrganic
		case domain.SourceTypeTypein:
			label = domain.TrafficSourceDirect
		case domain.SourceTypeReferral:
			label = domain.TrafficSourceReferral
		}

		if _, exists := counts[label]; !exists {
			labels = append(labels, label)
		}
		counts[label]++
	}

	total := len(orders)
	sources := make([]domain.TrafficSource, 0, len(labels))
	for _, label := range labels {
		percentage := 0.0
		if total > 0 {
			percentage = float64(counts[label]) / float64(total) * 100
		}

		sources = append(sources, domain.TrafficSource{
			Source:     label,
			Count:      counts[label],
			Percentage: percentage,
		})
	}

	sort.SliceStable(sources, func(i, j int) bool {
		return sources[i].Count > sources[j].Count
	})

	return sources
}

// DailySales agrupa os pedidos por data local do pedido, em ordem crescente
func DailySales(orders []domain.Order) []domain.DailySales {
	type accumulator struct {
		count   int
		revenue float64
	}

	byDate := make(map[string]*accumulator)
	for _, order := range orders {
		key := order.OrderDate.Format(time.DateOnly)
		acc, exists := byDate[key]
		if !exists {
			acc = &accumulator{}
			byDate[key] = acc
		}
		acc.count++
		acc.revenue += order.Total
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	daily := make([]domain.DailySales, 0, len(dates))
	for _, date := range dates {
		acc := byDate[date]
		daily = append(daily, domain.DailySales{
			Date:    date,
			Count:   acc.count,
			Revenue: acc.revenue,
		})
	}

	return daily
}

// SalesByDayOfWeek acumula vendas nos sete dias da semana. Os sete buckets
// existem sempre, mesmo com input vazio.
func SalesByDayOfWeek(orders []domain.Order) []domain.DayOfWeekSales {
	days := make([]domain.DayOfWeekSales, 7)
	for i, name := range domain.WeekdayNames {
		days[i] = domain.DayOfWeekSales{Day: name}
	}

	for _, order := range orders {
		idx := int(order.OrderDate.Weekday())
		days[idx].Sales++
		days[idx].Revenue += order.Total
	}

	return days
}

// SalesByHour acumula a quantidade de pedidos por hora do dia, nos 24
// buckets fixos "00:00".."23:00"
func SalesByHour(orders []domain.Order) []domain.HourlySales {
	hours := make([]domain.HourlySales, 24)
	for i := range hours {
		hours[i] = domain.HourlySales{Hour: fmt.Sprintf("%02d:00", i)}
	}

	for _, order := range orders {
		hours[order.OrderDate.Hour()].Sales++
	}

	return hours
}

// ProductStats agrega por produto, contando unidades vendidas
func ProductStats(orders []domain.Order) []domain.ProductStat {
	type accumulator struct {
		count   int
		revenue float64
	}

	byName := make(map[string]*accumulator)
	names := make([]string, 0)

	for _, order := range orders {
		name := order.ProductName
		if name == "" {
			name = "Sin nombre"
		}

		acc, exists := byName[name]
		if !exists {
			acc = &accumulator{}
			byName[name] = acc
			names = append(names, name)
		}
		acc.count += order.Quantity
		acc.revenue += order.Total
	}

	stats := make([]domain.ProductStat, 0, len(names))
	for _, name := range names {
		acc := byName[name]
		stats = append(stats, domain.ProductStat{
			Name:    name,
			Count:   acc.count,
			Revenue: acc.revenue,
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})

	return stats
}

// DeviceStats distribui os pedidos por tipo de dispositivo
func DeviceStats(orders []domain.Order) []domain.DeviceStat {
	counts := make(map[string]int)
	devices := make([]string, 0)

	for _, order := range orders {
		device := string(order.DeviceType)
		if order.DeviceType == domain.DeviceTypeUnknown {
			device = domain.TrafficSourceUnknown
		}

		if _, exists := counts[device]; !exists {
			devices = append(devices, device)
		}
		counts[device]++
	}

	total := len(orders)
	stats := make([]domain.DeviceStat, 0, len(devices))
	for _, device := range devices {
		percentage := 0.0
		if total > 0 {
			percentage = float64(counts[device]) / float64(total) * 100
		}
		stats = append(stats, domain.DeviceStat{
			Device:     device,
			Count:      counts[device],
			Percentage: percentage,
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})

	return stats
}

// PaymentMethods distribui os pedidos por método de pagamento
func PaymentMethods(orders []domain.Order) []domain.PaymentMethodStat {
	counts := make(map[string]int)
	methods := make([]string, 0)

	for _, order := range orders {
		method := order.PaymentMethod
		if method == "" {
			method = domain.TrafficSourceUnknown
		}

		if _, exists := counts[method]; !exists {
			methods = append(methods, method)
		}
		counts[method]++
	}

	total := len(orders)
	stats := make([]domain.PaymentMethodStat, 0, len(methods))
	for _, method := range methods {
		percentage := 0.0
		if total > 0 {
			percentage = float64(counts[method]) / float64(total) * 100
		}
		stats = append(stats, domain.PaymentMethodStat{
			Method:     method,
			Count:      counts[method],
			Percentage: percentage,
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})

	return stats
}

// TopProvinces retorna as províncias de envio com mais pedidos, limitado a
// limit entradas. Pedidos sem província são ignorados.
func TopProvinces(orders []domain.Order, limit int) []domain.ProvinceStat {
	counts := make(map[string]int)
	provinces := make([]string, 0)

	for _, order := range orders {
		if order.ShippingState == "" {
			continue
		}
		if _, exists := counts[order.ShippingState]; !exists {
			provinces = append(provinces, order.ShippingState)
		}
		counts[order.ShippingState]++
	}

	stats := make([]domain.ProvinceStat, 0, len(provinces))
	for _, province := range provinces {
		stats = append(stats, domain.ProvinceStat{Province: province, Count: counts[province]})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})

	if limit > 0 && len(stats) > limit {
		stats = stats[:limit]
	}

	return stats
}

// MonthlyMetrics resume o conjunto carregado: totais, clientes novos x
// recorrentes e crescimento do mês mais recente sobre o mês anterior
func MonthlyMetrics(orders []domain.Order) domain.MonthlyMetrics {
	totalRevenue := 0.0
	for _, order := range orders {
		totalRevenue += order.Total
	}

	newCustomers, returningCustomers := customerSplit(orders)
	salesGrowth, revenueGrowth := latestMonthGrowth(orders)

	return domain.MonthlyMetrics{
		TotalSales:         len(orders),
		TotalRevenue:       utils.RoundWithTwoDecimalPlace(totalRevenue),
		NewCustomers:       newCustomers,
		ReturningCustomers: returningCustomers,
		SalesGrowth:        salesGrowth,
		RevenueGrowth:      revenueGrowth,
	}
}

func customerSplit(orders []domain.Order) (newCustomers, returningCustomers int) {
	counts := make(map[string]int)
	for _, order := range orders {
		if order.CustomerEmail != "" {
			counts[order.CustomerEmail]++
		}
	}

	for _, count := range counts {
		if count == 1 {
			newCustomers++
		} else {
			returningCustomers++
		}
	}

	return newCustomers, returningCustomers
}

// latestMonthGrowth compara o mês calendário mais recente presente nos dados
// com o mês imediatamente anterior. Sem dados no mês anterior não há base de
// comparação e o crescimento é 0.
func latestMonthGrowth(orders []domain.Order) (salesGrowth, revenueGrowth float64) {
	if len(orders) == 0 {
		return 0, 0
	}

	latest := orders[0].OrderDate
	for _, order := range orders[1:] {
		if order.OrderDate.After(latest) {
			latest = order.OrderDate
		}
	}

	currentYear, currentMonth := latest.Year(), latest.Month()
	previous := latest.AddDate(0, -1, -latest.Day()+1)
	previousYear, previousMonth := previous.Year(), previous.Month()

	var currentSales, previousSales int
	var currentRevenue, previousRevenue float64

	for _, order := range orders {
		year, month := order.OrderDate.Year(), order.OrderDate.Month()
		switch {
		case year == currentYear && month == currentMonth:
			currentSales++
			currentRevenue += order.Total
		case year == previousYear && month == previousMonth:
			previousSales++
			previousRevenue += order.Total
		}
	}

	if previousSales == 0 {
		return 0, 0
	}

	salesGrowth = float64(currentSales-previousSales) / float64(previousSales) * 100
	if previousRevenue > 0 {
		revenueGrowth = (currentRevenue - previousRevenue) / previousRevenue * 100
	}

	return salesGrowth, revenueGrowth
}
