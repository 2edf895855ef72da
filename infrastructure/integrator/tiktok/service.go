package tiktok

import (
	"time"

	"github.com/sirupsen/logrus"
	tiktokdomain "github.com/vfg2006/sales-analytics-api/infrastructure/integrator/tiktok/domain"
	"github.com/vfg2006/sales-analytics-api/infrastructure/integrator/tiktok/tiktokclient"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

type TikTokIntegrator interface {
	FetchVideosByMonth(username string, year int, month time.Month) ([]domain.Video, error)
}

type TikTokService struct {
	cfg    *config.Config
	Client tiktokclient.Client
}

func New(cfg *config.Config, client tiktokclient.Client) TikTokIntegrator {
	return &TikTokService{
		cfg:    cfg,
		Client: client,
	}
}

// FetchVideosByMonth busca os vídeos publicados no mês informado
func (s *TikTokService) FetchVideosByMonth(username string, year int, month time.Month) ([]domain.Video, error) {
	scraped, err := s.Client.ScrapeProfile(tiktokclient.ScrapeProfileParams{
		Username: username,
		Year:     year,
		Month:    month,
	})
	if err != nil {
		return nil, err
	}

	videos := make([]domain.Video, 0, len(scraped))
	for _, item := range scraped {
		videos = append(videos, mapVideo(item))
	}

	logrus.WithFields(logrus.Fields{
		"username": username,
		"year":     year,
		"month":    int(month),
		"videos":   len(videos),
	}).Info("Vídeos obtidos do scraper do TikTok")

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.Debugf("Resposta do scraper: %s", utils.PrettyJson(scraped))
	}

	return videos, nil
}

func mapVideo(item tiktokdomain.ScrapedVideo) domain.Video {
	publishedAt, err := time.Parse(time.RFC3339, item.PublishedAt)
	if err != nil {
		publishedAt = time.Time{}
	}

	title := item.Title
	if title == "" {
		title = "Sin título"
	}

	return domain.Video{
		Rank:        item.Rank,
		Title:       title,
		PublishedAt: publishedAt,
		Views:       item.Views,
		Likes:       item.Likes,
		Comments:    item.Comments,
		Shares:      item.Shares,
		Score:       item.Score,
		URL:         item.URL,
	}
}
