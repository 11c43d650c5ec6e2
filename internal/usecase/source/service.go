package source

import (
	"context"
	"fmt"
	"log/slog"

	"pagewatch/internal/domain/entity"
	"pagewatch/internal/repository"
	"pagewatch/internal/usecase/watch"
)

// PageCleaner removes all pages owned by a source. Implemented by the page
// service.
type PageCleaner interface {
	DeleteBySource(ctx context.Context, sourceID int64) error
}

// Service provides source management use cases. Every persisted source owns
// one running watcher; mutations here keep the two in step so a stale
// in-memory configuration never continues polling.
type Service struct {
	Sources    repository.SourceRepository
	Categories repository.CategoryRepository
	Scraper    watch.Scraper
	Registry   *watch.Registry
	Pages      PageCleaner

	// WatcherConfig is the shared dependency set handed to every watcher
	// this service creates.
	WatcherConfig watch.Config

	// RunCtx bounds the lifetime of watcher loops. It is the process
	// context, not a request context: a watcher created by an HTTP call
	// must outlive that call.
	RunCtx context.Context

	Logger *slog.Logger
}

// List retrieves all registered sources.
func (s *Service) List(ctx context.Context) ([]*entity.Source, error) {
	sources, err := s.Sources.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	return sources, nil
}

// Get retrieves a single source by its ID.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Source, error) {
	if id <= 0 {
		return nil, ErrInvalidSourceID
	}

	src, err := s.Sources.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get source: %w", err)
	}
	if src == nil {
		return nil, &entity.NotFoundError{Resource: "source", ID: id}
	}
	return src, nil
}

// Register verifies a source against its live crawl target, persists it,
// registers its category, and starts its watcher with an immediate first
// check. Verification failures surface before anything is written: an
// unreachable crawl URL as *entity.CrawlTargetError, a selector that matches
// nothing as *entity.SelectorError.
func (s *Service) Register(ctx context.Context, src *entity.Source) error {
	if err := src.Validate(); err != nil {
		return err
	}

	if _, err := s.Scraper.LatestItemURL(ctx, src.CrawlURL, src.CSSSelector, src.URL); err != nil {
		return err
	}

	if err := s.Sources.Create(ctx, src); err != nil {
		return fmt.Errorf("register source: %w", err)
	}

	if src.Category != "" {
		if err := s.Categories.Create(ctx, src.Category, true); err != nil {
			return fmt.Errorf("register source: register category: %w", err)
		}
	}

	s.startWatcher(src)
	s.Registry.CheckNow(src.ID)

	s.logger().Info("registered a source",
		slog.Int64("source_id", src.ID),
		slog.String("title", src.Title),
		slog.String("url", src.URL))
	return nil
}

// Update persists the caller-editable fields of a source and swaps in a
// freshly configured watcher, since the cycle length, selector rule, or
// disabled flag may have changed. The last-seen pointer is owned by the
// watcher, never by the caller: it is carried over from the stored record so
// an edit does not reset detection and re-ingest the current newest item.
func (s *Service) Update(ctx context.Context, src *entity.Source) error {
	if src.ID <= 0 {
		return ErrInvalidSourceID
	}
	if err := src.Validate(); err != nil {
		return err
	}

	current, err := s.Sources.Get(ctx, src.ID)
	if err != nil {
		return fmt.Errorf("update source: %w", err)
	}
	if current == nil {
		return &entity.NotFoundError{Resource: "source", ID: src.ID}
	}
	src.LastURL = current.LastURL

	n, err := s.Sources.Update(ctx, src)
	if err != nil {
		return fmt.Errorf("update source: %w", err)
	}
	if n == 0 {
		return &entity.NotFoundError{Resource: "source", ID: src.ID}
	}

	if src.Category != "" {
		if err := s.Categories.Create(ctx, src.Category, true); err != nil {
			return fmt.Errorf("update source: register category: %w", err)
		}
	}

	// The replacement watcher starts from the persisted record, not the
	// request entity, so it sees exactly what the store holds.
	fresh, err := s.Sources.Get(ctx, src.ID)
	if err != nil {
		return fmt.Errorf("update source: reload: %w", err)
	}
	if fresh == nil {
		return &entity.NotFoundError{Resource: "source", ID: src.ID}
	}
	s.startWatcher(fresh)

	s.logger().Info("updated the source", slog.Int64("source_id", src.ID))
	return nil
}

// Delete removes a source, stops its watcher, and, with cascadePages, removes
// all live pages the source produced together with their cached assets.
func (s *Service) Delete(ctx context.Context, id int64, cascadePages bool) error {
	if id <= 0 {
		return ErrInvalidSourceID
	}

	n, err := s.Sources.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete source: %w", err)
	}
	if n == 0 {
		return &entity.NotFoundError{Resource: "source", ID: id}
	}

	if !s.Registry.Remove(id) {
		s.logger().Warn("deleted source had no running watcher", slog.Int64("source_id", id))
	}

	if cascadePages {
		if err := s.Pages.DeleteBySource(ctx, id); err != nil {
			return fmt.Errorf("delete source: %w", err)
		}
	}

	s.logger().Info("deleted the source", slog.Int64("source_id", id))
	return nil
}

// StartAll creates and starts a watcher for every persisted source. Called
// once at boot.
func (s *Service) StartAll(ctx context.Context) error {
	sources, err := s.Sources.List(ctx)
	if err != nil {
		return fmt.Errorf("start watchers: %w", err)
	}

	for _, src := range sources {
		s.startWatcher(src)
	}

	s.logger().Info("started watchers", slog.Int("count", len(sources)))
	return nil
}

func (s *Service) startWatcher(src *entity.Source) {
	runCtx := s.RunCtx
	if runCtx == nil {
		runCtx = context.Background()
	}
	s.Registry.Add(runCtx, watch.NewWatcher(src, s.WatcherConfig))
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
