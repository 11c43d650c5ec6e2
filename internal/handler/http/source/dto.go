package source

import "pagewatch/internal/domain/entity"

type DTO struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	CrawlURL    string `json:"crawlUrl"`
	CSSSelector string `json:"cssSelector"`
	LastURL     string `json:"lastUrl"`
	Category    string `json:"category"`
	CycleSec    int    `json:"cycleSec"`
	Disabled    bool   `json:"disabled"`
}

func fromEntity(e *entity.Source) DTO {
	return DTO{
		ID:          e.ID,
		Title:       e.Title,
		URL:         e.URL,
		CrawlURL:    e.CrawlURL,
		CSSSelector: e.CSSSelector,
		LastURL:     e.LastURL,
		Category:    e.Category,
		CycleSec:    e.CycleSec,
		Disabled:    e.Disabled,
	}
}

type request struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	CrawlURL    string `json:"crawlUrl"`
	CSSSelector string `json:"cssSelector"`
	Category    string `json:"category"`
	CycleSec    int    `json:"cycleSec"`
	Disabled    bool   `json:"disabled"`
}

func (r request) toEntity() *entity.Source {
	return &entity.Source{
		Title:       r.Title,
		URL:         r.URL,
		CrawlURL:    r.CrawlURL,
		CSSSelector: r.CSSSelector,
		Category:    r.Category,
		CycleSec:    r.CycleSec,
		Disabled:    r.Disabled,
	}
}
