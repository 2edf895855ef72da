package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/comparing"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
)

// targetPeriod resolve o mês alvo da query string, usando o mês corrente
// quando year e month não são informados
func targetPeriod(w http.ResponseWriter, r *http.Request) (int, time.Month, bool) {
	yearParam := r.URL.Query().Get("year")
	monthParam := r.URL.Query().Get("month")

	if yearParam == "" && monthParam == "" {
		now := time.Now()
		return now.Year(), now.Month(), true
	}

	return parseYearMonth(w, yearParam, monthParam)
}

// GetComparison compara o mês alvo com o mês anterior e com o mesmo mês do ano anterior
func GetComparison(service comparing.Comparer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetComparison")

		year, month, ok := targetPeriod(w, r)
		if !ok {
			return
		}

		result, err := service.Compare(year, month)
		if err != nil {
			logrus.WithError(err).Error("Erro ao comparar períodos")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao comparar períodos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

// GetTimeSeries retorna a série histórica mensal que termina no mês alvo
func GetTimeSeries(service comparing.Comparer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetTimeSeries")

		year, month, ok := targetPeriod(w, r)
		if !ok {
			return
		}

		series, err := service.TimeSeries(year, month)
		if err != nil {
			logrus.WithError(err).Error("Erro ao montar a série histórica")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar a série histórica", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(series)
	}
}

// GetForecast retorna a previsão conservadora do mês seguinte ao mês alvo
func GetForecast(service comparing.Comparer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetForecast")

		year, month, ok := targetPeriod(w, r)
		if !ok {
			return
		}

		forecast, err := service.Forecast(year, month)
		if err != nil {
			logrus.WithError(err).Error("Erro ao calcular a previsão")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular a previsão", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(forecast)
	}
}
