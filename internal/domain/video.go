package domain

import "time"

// Video representa um vídeo publicado no TikTok (unidade promocional)
type Video struct {
	Rank        int       `json:"rank"`
	Title       string    `json:"title"`
	PublishedAt time.Time `json:"published_at"`
	Views       int       `json:"views"`
	Likes       int       `json:"likes"`
	Comments    int       `json:"comments"`
	Shares      int       `json:"shares"`
	Score       int       `json:"score"`
	URL         string    `json:"url"`
}

// EngagementRate retorna (likes+comments+shares)/views, com proteção para
// vídeos sem visualizações
func (v Video) EngagementRate() float64 {
	if v.Views <= 0 {
		return 0
	}
	return float64(v.Likes+v.Comments+v.Shares) / float64(v.Views)
}
