package page

import (
	"time"

	"pagewatch/internal/domain/entity"
)

type DTO struct {
	ID          int64     `json:"id"`
	SourceID    int64     `json:"sourceId,omitempty"`
	SourceTitle string    `json:"sourceTitle,omitempty"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	ImagePath   string    `json:"imagePath"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	DetectedAt  time.Time `json:"detectedAt"`
	IsRead      bool      `json:"isRead"`
}

func fromEntity(e *entity.Page) DTO {
	return DTO{
		ID:          e.ID,
		SourceID:    e.SourceID,
		SourceTitle: e.SourceTitle,
		Title:       e.Title,
		URL:         e.URL,
		ImagePath:   e.ImagePath,
		Description: e.Description,
		Category:    e.Category,
		DetectedAt:  e.DetectedAt,
		IsRead:      e.IsRead,
	}
}

// request is a caller-submitted page. ImageURL carries the remote preview
// image to cache; it becomes a local path once stored.
type request struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

func (r request) toEntity() *entity.Page {
	return &entity.Page{
		Title:       r.Title,
		URL:         r.URL,
		ImagePath:   r.ImageURL,
		Description: r.Description,
		Category:    r.Category,
	}
}
