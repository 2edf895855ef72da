package tiktokclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	tiktokdomain "github.com/vfg2006/sales-analytics-api/infrastructure/integrator/tiktok/domain"
)

type ScrapeProfileParams struct {
	Username string
	Year     int
	Month    time.Month
}

type scrapeProfileRequest struct {
	Username   string     `json:"username"`
	DateFilter dateFilter `json:"dateFilter"`
}

type dateFilter struct {
	Type  string `json:"type"`
	Month int    `json:"month"`
	Year  int    `json:"year"`
}

// ScrapeProfile dispara o scraping do perfil e retorna os vídeos do mês.
// O scraper usa mês com base zero.
func (c *TikTokClient) ScrapeProfile(params ScrapeProfileParams) ([]tiktokdomain.ScrapedVideo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Second)
	defer cancel()

	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.config.TikTok.ScraperURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/api/scrape-profile")

	body, err := json.Marshal(scrapeProfileRequest{
		Username: params.Username,
		DateFilter: dateFilter{
			Type:  "month",
			Month: int(params.Month) - 1,
			Year:  params.Year,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar o corpo da requisição: %w", err)
	}

	// Criar a requisição HTTP.
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	// Executar a requisição.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	// Verificar o código de status da resposta.
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	// Decodificar a resposta JSON.
	var response tiktokdomain.ScrapeProfileResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	if !response.Success {
		return nil, fmt.Errorf("scraper retornou falha: %s", response.Message)
	}

	return response.Data, nil
}
