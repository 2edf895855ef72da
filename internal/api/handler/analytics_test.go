package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestGetDashboard(t *testing.T) {
	orders := []domain.Order{
		{OrderID: "1", OrderDate: time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC), Total: 100, SourceType: domain.SourceTypeOrganic, CustomerEmail: "a@x.com"},
		{OrderID: "2", OrderDate: time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC), Total: 50, SourceType: domain.SourceTypeTypein, CustomerEmail: "b@x.com"},
	}

	t.Run("Dashboard do mês informado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orderRepo := mocks.NewMockOrderRepository(ctrl)
		orderRepo.EXPECT().GetByMonth(2024, time.March).Return(orders, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/analytics/dashboard?year=2024&month=3", nil)
		rec := httptest.NewRecorder()

		GetDashboard(orderRepo).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var response DashboardResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

		assert.Equal(t, 2, response.Metrics.TotalSales)
		assert.Equal(t, 150.0, response.Metrics.TotalRevenue)
		assert.Len(t, response.SalesByDay, 7)
		assert.Len(t, response.SalesByHour, 24)
		assert.Len(t, response.DailySales, 2)
	})

	t.Run("Sem parâmetros usa o histórico completo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orderRepo := mocks.NewMockOrderRepository(ctrl)
		orderRepo.EXPECT().GetAll().Return(orders, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/analytics/dashboard", nil)
		rec := httptest.NewRecorder()

		GetDashboard(orderRepo).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Mês inválido retorna erro de validação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orderRepo := mocks.NewMockOrderRepository(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/v1/analytics/dashboard?year=2024&month=13", nil)
		rec := httptest.NewRecorder()

		GetDashboard(orderRepo).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
