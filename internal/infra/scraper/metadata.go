package scraper

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"pagewatch/internal/domain/entity"

	"github.com/PuerkitoBio/goquery"
)

// FetchPageMeta fetches pageURL and extracts its Open Graph metadata.
//
// Tag preferences:
//   - title: og:title, falling back to the document <title> text, then ""
//   - url: og:url, falling back to the requested URL (pages omit the tag
//     or sit behind redirects)
//   - image: og:image, falling back to "" (absence is not an error)
//   - description: og:description, falling back to ""
//
// A failed fetch is surfaced as *entity.RemoteURLError carrying the
// requested URL and the underlying cause.
func (s *Scraper) FetchPageMeta(ctx context.Context, pageURL string) (entity.PageMeta, error) {
	body, err := s.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return entity.PageMeta{}, &entity.RemoteURLError{URL: pageURL, Err: err}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return entity.PageMeta{}, fmt.Errorf("FetchPageMeta: parse HTML: %w", err)
	}

	meta := entity.PageMeta{
		Title:       metaProperty(doc, "og:title"),
		URL:         metaProperty(doc, "og:url"),
		ImageURL:    metaProperty(doc, "og:image"),
		Description: metaProperty(doc, "og:description"),
	}

	if meta.Title == "" {
		meta.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if meta.URL == "" {
		meta.URL = pageURL
	}

	return meta, nil
}

// metaProperty returns the content attribute of the first matching
// <meta property="..."> tag, or "" if absent.
func metaProperty(doc *goquery.Document, property string) string {
	sel := doc.Find(fmt.Sprintf(`meta[property=%q]`, property)).First()
	content, _ := sel.Attr("content")
	return content
}
