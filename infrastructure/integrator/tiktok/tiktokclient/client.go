package tiktokclient

import (
	"net/http"
	"time"

	tiktokdomain "github.com/vfg2006/sales-analytics-api/infrastructure/integrator/tiktok/domain"
	"github.com/vfg2006/sales-analytics-api/internal/config"
)

type Client interface {
	ScrapeProfile(params ScrapeProfileParams) ([]tiktokdomain.ScrapedVideo, error)
}

type TikTokClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &TikTokClient{
		httpClient: &http.Client{
			// O scraping de um perfil inteiro é lento
			Timeout: 120 * time.Second,
		},
		config: cfg,
	}
}
