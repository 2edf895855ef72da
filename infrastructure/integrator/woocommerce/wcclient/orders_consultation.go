package wcclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	wcdomain "github.com/vfg2006/sales-analytics-api/infrastructure/integrator/woocommerce/domain"
)

type OrdersConsultationParams struct {
	Page  int
	After string // RFC3339, opcional
}

// GetOrdersPage busca uma página de pedidos concluídos e retorna também o
// total de páginas informado pelo cabeçalho X-WP-TotalPages
func (c *WooCommerceClient) GetOrdersPage(params OrdersConsultationParams) ([]wcdomain.WCOrder, int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.config.WooCommerce.APIURL)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/wp-json/wc/v3/orders")

	// Adicionar parâmetros de consulta.
	query := endpoint.Query()
	query.Set("status", "completed")
	query.Set("per_page", strconv.Itoa(c.config.WooCommerce.PageSize))
	query.Set("page", strconv.Itoa(params.Page))
	query.Set("orderby", "date")
	query.Set("order", "asc")
	if params.After != "" {
		query.Set("after", params.After)
	}
	endpoint.RawQuery = query.Encode()

	// Criar a requisição HTTP.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	// Autenticação básica com as credenciais da API do WooCommerce.
	req.SetBasicAuth(c.config.WooCommerce.ConsumerKey, c.config.WooCommerce.ConsumerSecret)
	req.Header.Set("Accept", "application/json")

	// Executar a requisição.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	// Verificar o código de status da resposta.
	if resp.StatusCode != http.StatusOK {
		return nil, 0, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	// Decodificar a resposta JSON.
	var orders []wcdomain.WCOrder
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		return nil, 0, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	totalPages, err := strconv.Atoi(resp.Header.Get("X-WP-TotalPages"))
	if err != nil {
		totalPages = 1
	}

	return orders, totalPages, nil
}
