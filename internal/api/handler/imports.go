package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/importer"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/correlating"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

// Limite de tamanho dos uploads de CSV
const maxImportSize = 10 << 20 // 10 MB

// ImportOrdersCSV importa um export de pedidos da loja e grava em lote.
// Pedidos já existentes são atualizados, não duplicados.
func ImportOrdersCSV(orderRepo repository.OrderRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ImportOrdersCSV")

		if err := r.ParseMultipartForm(maxImportSize); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Upload inválido", nil)
			return
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Arquivo não fornecido no campo 'file'", nil)
			return
		}
		defer file.Close()

		orders, err := importer.OrdersFromCSV(file)
		if err != nil {
			logrus.WithError(err).Error("Erro ao ler o CSV de pedidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Erro ao ler o CSV de pedidos", nil)
			return
		}

		if len(orders) > 0 {
			if err := orderRepo.SaveOrUpdateBatch(orders); err != nil {
				logrus.WithError(err).Error("Erro ao salvar pedidos importados")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar pedidos importados", nil)
				return
			}
		}

		importID, _ := utils.GenerateID()

		logrus.WithFields(logrus.Fields{
			"import_id": importID,
			"orders":    len(orders),
		}).Info("Importação de pedidos concluída")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"import_id": importID,
			"imported":  len(orders),
		})
	}
}

// ImportVideosCSV importa o export do TikTok Analytics e devolve a análise de
// correlação dos vídeos contra os pedidos já armazenados
func ImportVideosCSV(orderRepo repository.OrderRepository, correlator correlating.Correlator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ImportVideosCSV")

		if err := r.ParseMultipartForm(maxImportSize); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Upload inválido", nil)
			return
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Arquivo não fornecido no campo 'file'", nil)
			return
		}
		defer file.Close()

		videos, err := importer.VideosFromCSV(file)
		if err != nil {
			logrus.WithError(err).Error("Erro ao ler o CSV de vídeos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Erro ao ler o CSV de vídeos", nil)
			return
		}

		orders, err := orderRepo.GetAll()
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar pedidos para correlação")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar pedidos", nil)
			return
		}

		insights := correlator.Analyze(orders, videos)

		importID, _ := utils.GenerateID()

		logrus.WithFields(logrus.Fields{
			"import_id": importID,
			"videos":    len(videos),
			"orders":    len(orders),
		}).Info("Importação de vídeos concluída")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"import_id": importID,
			"imported":  len(videos),
			"insights":  insights,
		})
	}
}
