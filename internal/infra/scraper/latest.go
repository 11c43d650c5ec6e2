package scraper

import (
	"bytes"
	"context"
	"fmt"

	"pagewatch/internal/domain/entity"

	"github.com/PuerkitoBio/goquery"
)

// LatestItemURL fetches a source's crawl page, applies the selector rule to
// locate the newest item, and returns its link target resolved against
// baseURL.
//
// The selector is expected to match the anchor of the newest item. When the
// matched element carries no href itself, the first descendant anchor is
// used instead. No match, or a match without a usable link, is surfaced as
// *entity.SelectorError; a failed crawl fetch as *entity.CrawlTargetError.
func (s *Scraper) LatestItemURL(ctx context.Context, crawlURL, selector, baseURL string) (string, error) {
	body, err := s.fetcher.Fetch(ctx, crawlURL)
	if err != nil {
		return "", &entity.CrawlTargetError{CrawlURL: crawlURL, Err: err}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("LatestItemURL: parse HTML: %w", err)
	}

	matched := doc.Find(selector).First()
	if matched.Length() == 0 {
		return "", &entity.SelectorError{Selector: selector}
	}

	href, ok := matched.Attr("href")
	if !ok {
		href, ok = matched.Find("a[href]").First().Attr("href")
	}
	if !ok || href == "" {
		return "", &entity.SelectorError{Selector: selector}
	}

	resolved, err := ResolveURL(href, baseURL)
	if err != nil {
		return "", &entity.SelectorError{Selector: selector}
	}

	return resolved, nil
}
