package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

func utmOrder(collaborator string, total float64, date time.Time) domain.Order {
	return domain.Order{
		OrderID:      "X",
		OrderDate:    date,
		Total:        total,
		Quantity:     1,
		SourceType:   domain.SourceTypeUTM,
		Collaborator: &collaborator,
	}
}

func TestCollaboratorStats(t *testing.T) {
	date := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		orders   []domain.Order
		validate func(t *testing.T, stats []domain.CollaboratorStat)
	}{
		{
			name: "Participação calculada sobre o total de pedidos utm",
			orders: []domain.Order{
				utmOrder("María José", 100, date),
				utmOrder("María José", 50, date),
				utmOrder("Inma", 80, date),
				utmOrder("Margareth", 30, date),
				{OrderID: "organic", OrderDate: date, Total: 999, SourceType: domain.SourceTypeOrganic},
			},
			validate: func(t *testing.T, stats []domain.CollaboratorStat) {
				assert.Len(t, stats, 3)
				assert.Equal(t, "María José", stats[0].Name)
				assert.Equal(t, 2, stats[0].Sales)
				assert.Equal(t, 150.0, stats[0].Revenue)
				assert.Equal(t, 50.0, stats[0].Percentage)
				assert.Equal(t, 25.0, stats[1].Percentage)
				assert.Equal(t, 25.0, stats[2].Percentage)
			},
		},
		{
			name:   "Sem pedidos utm retorna lista vazia",
			orders: []domain.Order{{OrderID: "1", OrderDate: date, SourceType: domain.SourceTypeTypein}},
			validate: func(t *testing.T, stats []domain.CollaboratorStat) {
				assert.Empty(t, stats)
			},
		},
		{
			name:   "Input vazio não divide por zero",
			orders: nil,
			validate: func(t *testing.T, stats []domain.CollaboratorStat) {
				assert.Empty(t, stats)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, CollaboratorStats(tt.orders))
		})
	}
}

func TestTrafficSources(t *testing.T) {
	date := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	orders := []domain.Order{
		utmOrder("Inma", 100, date),
		{OrderID: "2", OrderDate: date, SourceType: domain.SourceTypeOrganic},
		{OrderID: "3", OrderDate: date, SourceType: domain.SourceTypeTypein},
		{OrderID: "4", OrderDate: date, SourceType: domain.SourceTypeReferral},
		{OrderID: "5", OrderDate: date, SourceType: domain.SourceTypeUnknown},
	}

	sources := TrafficSources(orders)

	assert.Len(t, sources, 5)

	bySource := make(map[string]domain.TrafficSource)
	for _, s := range sources {
		bySource[s.Source] = s
	}

	assert.Contains(t, bySource, "Inma")
	assert.Contains(t, bySource, domain.TrafficSourceOrganic)
	assert.Contains(t, bySource, domain.TrafficSourceDirect)
	assert.Contains(t, bySource, domain.TrafficSourceReferral)
	assert.Contains(t, bySource, domain.TrafficSourceUnknown)
	assert.Equal(t, 20.0, bySource["Inma"].Percentage)
}

func TestSalesByDayOfWeek(t *testing.T) {
	tests := []struct {
		name     string
		orders   []domain.Order
		validate func(t *testing.T, days []domain.DayOfWeekSales)
	}{
		{
			name:   "Input vazio mantém os sete buckets zerados",
			orders: nil,
			validate: func(t *testing.T, days []domain.DayOfWeekSales) {
				assert.Len(t, days, 7)
				assert.Equal(t, "Domingo", days[0].Day)
				assert.Equal(t, "Sábado", days[6].Day)
				for _, d := range days {
					assert.Zero(t, d.Sales)
					assert.Zero(t, d.Revenue)
				}
			},
		},
		{
			name: "Pedidos caem no bucket do dia correto",
			orders: []domain.Order{
				// 2024-03-10 é domingo, 2024-03-11 é segunda
				{OrderDate: time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC), Total: 100},
				{OrderDate: time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC), Total: 50},
				{OrderDate: time.Date(2024, 3, 11, 21, 0, 0, 0, time.UTC), Total: 25},
			},
			validate: func(t *testing.T, days []domain.DayOfWeekSales) {
				assert.Equal(t, 1, days[0].Sales)
				assert.Equal(t, 100.0, days[0].Revenue)
				assert.Equal(t, 2, days[1].Sales)
				assert.Equal(t, 75.0, days[1].Revenue)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, SalesByDayOfWeek(tt.orders))
		})
	}
}

func TestSalesByHour(t *testing.T) {
	orders := []domain.Order{
		{OrderDate: time.Date(2024, 3, 10, 0, 15, 0, 0, time.UTC)},
		{OrderDate: time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC)},
		{OrderDate: time.Date(2024, 3, 11, 23, 1, 0, 0, time.UTC)},
	}

	hours := SalesByHour(orders)

	assert.Len(t, hours, 24)
	assert.Equal(t, "00:00", hours[0].Hour)
	assert.Equal(t, "23:00", hours[23].Hour)
	assert.Equal(t, 1, hours[0].Sales)
	assert.Equal(t, 2, hours[23].Sales)
	assert.Equal(t, 0, hours[12].Sales)
}

func TestDailySales(t *testing.T) {
	orders := []domain.Order{
		{OrderDate: time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC), Total: 50},
		{OrderDate: time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC), Total: 100},
		{OrderDate: time.Date(2024, 3, 10, 21, 0, 0, 0, time.UTC), Total: 30},
	}

	daily := DailySales(orders)

	assert.Len(t, daily, 2)
	assert.Equal(t, "2024-03-10", daily[0].Date)
	assert.Equal(t, 2, daily[0].Count)
	assert.Equal(t, 130.0, daily[0].Revenue)
	assert.Equal(t, "2024-03-11", daily[1].Date)
}

func TestTopProvinces(t *testing.T) {
	orders := []domain.Order{
		{ShippingState: "Madrid"},
		{ShippingState: "Madrid"},
		{ShippingState: "Barcelona"},
		{ShippingState: "Valencia"},
		{ShippingState: ""},
	}

	stats := TopProvinces(orders, 2)

	assert.Len(t, stats, 2)
	assert.Equal(t, "Madrid", stats[0].Province)
	assert.Equal(t, 2, stats[0].Count)
}

func TestMonthlyMetrics(t *testing.T) {
	tests := []struct {
		name     string
		orders   []domain.Order
		validate func(t *testing.T, metrics domain.MonthlyMetrics)
	}{
		{
			name:   "Input vazio retorna métricas zeradas",
			orders: nil,
			validate: func(t *testing.T, metrics domain.MonthlyMetrics) {
				assert.Zero(t, metrics.TotalSales)
				assert.Zero(t, metrics.TotalRevenue)
				assert.Zero(t, metrics.SalesGrowth)
			},
		},
		{
			name: "Clientes novos e recorrentes contados por email",
			orders: []domain.Order{
				{OrderDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Total: 100, CustomerEmail: "a@x.com"},
				{OrderDate: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), Total: 100, CustomerEmail: "a@x.com"},
				{OrderDate: time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC), Total: 100, CustomerEmail: "b@x.com"},
			},
			validate: func(t *testing.T, metrics domain.MonthlyMetrics) {
				assert.Equal(t, 3, metrics.TotalSales)
				assert.Equal(t, 300.0, metrics.TotalRevenue)
				assert.Equal(t, 1, metrics.NewCustomers)
				assert.Equal(t, 1, metrics.ReturningCustomers)
			},
		},
		{
			name: "Crescimento do mês mais recente sobre o anterior",
			orders: []domain.Order{
				{OrderDate: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), Total: 100},
				{OrderDate: time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC), Total: 100},
				{OrderDate: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), Total: 150},
				{OrderDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), Total: 150},
				{OrderDate: time.Date(2024, 3, 25, 0, 0, 0, 0, time.UTC), Total: 100},
			},
			validate: func(t *testing.T, metrics domain.MonthlyMetrics) {
				assert.Equal(t, 50.0, metrics.SalesGrowth)    // 2 -> 3 pedidos
				assert.Equal(t, 100.0, metrics.RevenueGrowth) // 200 -> 400
			},
		},
		{
			name: "Sem mês anterior o crescimento é zero",
			orders: []domain.Order{
				{OrderDate: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), Total: 150},
			},
			validate: func(t *testing.T, metrics domain.MonthlyMetrics) {
				assert.Zero(t, metrics.SalesGrowth)
				assert.Zero(t, metrics.RevenueGrowth)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, MonthlyMetrics(tt.orders))
		})
	}
}
