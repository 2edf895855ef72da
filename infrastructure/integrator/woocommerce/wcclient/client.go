package wcclient

import (
	"net/http"
	"time"

	wcdomain "github.com/vfg2006/sales-analytics-api/infrastructure/integrator/woocommerce/domain"
	"github.com/vfg2006/sales-analytics-api/internal/config"
)

type Client interface {
	GetOrdersPage(params OrdersConsultationParams) ([]wcdomain.WCOrder, int, error)
}

type WooCommerceClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &WooCommerceClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
