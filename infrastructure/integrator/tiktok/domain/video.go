package domain

// ScrapedVideo é um vídeo no formato retornado pelo serviço de scraping
type ScrapedVideo struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	PublishedAt string `json:"publishedAt"`
	Views       int    `json:"views"`
	Likes       int    `json:"likes"`
	Comments    int    `json:"comments"`
	Shares      int    `json:"shares"`
	Score       int    `json:"score"`
	Rank        int    `json:"rank"`
}

// ScrapeProfileResponse é o envelope de resposta do scraper
type ScrapeProfileResponse struct {
	Success bool           `json:"success"`
	Data    []ScrapedVideo `json:"data"`
	Message string         `json:"message"`
}
