package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

// GetVideoInsights busca os vídeos do perfil no mês alvo, cruza com os
// pedidos da janela de conversão e retorna a análise completa
func GetVideoInsights(services CorrelationServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetVideoInsights")

		username := r.URL.Query().Get("username")
		if username == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro username não fornecido", nil)
			return
		}

		year, month, ok := targetPeriod(w, r)
		if !ok {
			return
		}

		videos, err := services.TikTok.FetchVideosByMonth(username, year, month)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"username": username,
				"year":     year,
				"month":    int(month),
			}).Error("Erro ao buscar vídeos do perfil")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao buscar vídeos do perfil", nil)
			return
		}

		// Os pedidos relevantes vão do início do mês até o fim da janela de
		// conversão do último dia do mês
		window := time.Duration(services.Config.Engine.ConversionWindowDays) * 24 * time.Hour
		start, end := utils.MonthBounds(year, month)

		orders, err := services.OrderRepo.GetByDateRange(start, end.Add(window))
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar pedidos para correlação")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar pedidos", nil)
			return
		}

		insights := services.Correlator.Analyze(orders, videos)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(insights)
	}
}
