package entity

import "time"

// Page represents a single detected or user-submitted item. A page lives in
// exactly one of two disjoint stores at any time: the live store (the unread
// inbox) or the archive store. Moving a page between stores is a copy under a
// new identity followed by an explicit delete, never an in-place flag flip.
type Page struct {
	ID          int64
	SourceID    int64
	SourceTitle string // denormalized for display without a join
	Title       string
	URL         string
	ImagePath   string // locally cached preview image, empty if caching failed
	Description string
	Category    string
	DetectedAt  time.Time
	IsRead      bool
}

// Validate checks that a page carries the mandatory fields. Only the URL is
// required: the title comes from metadata extraction (og:title, then the
// document title, then ""), so a page of a title-less document is still a
// legal page.
func (p *Page) Validate() error {
	if p.URL == "" {
		return &MissingFieldsError{Fields: []string{"url"}}
	}
	return nil
}
