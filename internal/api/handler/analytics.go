package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

const topProvincesLimit = 10

// DashboardResponse agrupa todas as agregações exibidas no dashboard
type DashboardResponse struct {
	Metrics        domain.MonthlyMetrics      `json:"metrics"`
	Collaborators  []domain.CollaboratorStat  `json:"collaborators"`
	TrafficSources []domain.TrafficSource     `json:"traffic_sources"`
	DailySales     []domain.DailySales        `json:"daily_sales"`
	SalesByDay     []domain.DayOfWeekSales    `json:"sales_by_day"`
	SalesByHour    []domain.HourlySales       `json:"sales_by_hour"`
	Products       []domain.ProductStat       `json:"products"`
	Devices        []domain.DeviceStat        `json:"devices"`
	PaymentMethods []domain.PaymentMethodStat `json:"payment_methods"`
	TopProvinces   []domain.ProvinceStat      `json:"top_provinces"`
}

// GetDashboard calcula as agregações do dashboard sobre os pedidos do mês
// informado em year/month, ou sobre todo o histórico quando omitidos
func GetDashboard(orderRepo repository.OrderRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetDashboard")

		orders, ok := loadOrders(w, r, orderRepo)
		if !ok {
			return
		}

		response := DashboardResponse{
			Metrics:        analyzing.MonthlyMetrics(orders),
			Collaborators:  analyzing.CollaboratorStats(orders),
			TrafficSources: analyzing.TrafficSources(orders),
			DailySales:     analyzing.DailySales(orders),
			SalesByDay:     analyzing.SalesByDayOfWeek(orders),
			SalesByHour:    analyzing.SalesByHour(orders),
			Products:       analyzing.ProductStats(orders),
			Devices:        analyzing.DeviceStats(orders),
			PaymentMethods: analyzing.PaymentMethods(orders),
			TopProvinces:   analyzing.TopProvinces(orders, topProvincesLimit),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// loadOrders busca os pedidos do período da query string. Aceita um
// intervalo arbitrário via start/end (YYYY-MM-DD), um mês via year/month, ou
// nada para o histórico completo. Escreve a resposta de erro e retorna
// ok=false quando os parâmetros são inválidos ou a busca falha.
func loadOrders(w http.ResponseWriter, r *http.Request, orderRepo repository.OrderRepository) ([]domain.Order, bool) {
	startParam := r.URL.Query().Get("start")
	endParam := r.URL.Query().Get("end")

	if startParam != "" && endParam != "" {
		start, err := utils.ParseDate(startParam)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro start inválido", nil)
			return nil, false
		}

		end, err := utils.ParseDate(endParam)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro end inválido", nil)
			return nil, false
		}

		orders, err := orderRepo.GetByDateRange(*start, end.AddDate(0, 0, 1).Add(-time.Second))
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar pedidos do intervalo")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar pedidos", nil)
			return nil, false
		}
		return orders, true
	}

	yearParam := r.URL.Query().Get("year")
	monthParam := r.URL.Query().Get("month")

	if yearParam == "" && monthParam == "" {
		orders, err := orderRepo.GetAll()
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar pedidos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar pedidos", nil)
			return nil, false
		}
		return orders, true
	}

	year, month, ok := parseYearMonth(w, yearParam, monthParam)
	if !ok {
		return nil, false
	}

	orders, err := orderRepo.GetByMonth(year, month)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar pedidos do mês")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar pedidos", nil)
		return nil, false
	}

	return orders, true
}

// parseYearMonth valida os parâmetros year e month da query string
func parseYearMonth(w http.ResponseWriter, yearParam, monthParam string) (int, time.Month, bool) {
	year, err := strconv.Atoi(yearParam)
	if err != nil || year < 2000 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro year inválido", nil)
		return 0, 0, false
	}

	month, err := strconv.Atoi(monthParam)
	if err != nil || month < 1 || month > 12 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro month inválido", nil)
		return 0, 0, false
	}

	return year, time.Month(month), true
}
