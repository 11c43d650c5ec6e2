package page

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pagewatch/internal/domain/entity"
	"pagewatch/internal/observability/metrics"
	"pagewatch/internal/repository"
	"pagewatch/internal/resilience/retry"
)

// Fetcher retrieves raw bytes from a remote URL. Used for preview images.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// MetadataFetcher extracts social-preview metadata from a remote page. The
// same extraction serves watcher-detected items and bare-URL submissions.
type MetadataFetcher interface {
	FetchPageMeta(ctx context.Context, url string) (entity.PageMeta, error)
}

// AssetStore manages the per-page preview image directories on disk.
type AssetStore interface {
	SaveImage(pageID int64, data []byte) (string, error)
	CopyImage(srcPath string, dstPageID int64) (string, error)
	RemovePageDir(pageID int64) error
}

// Service provides page pipeline use cases. Detected pages enter through
// Insert, move to the archive store through Archive or ArchiveNew, and leave
// through Delete. Preview images are cached best-effort: a page is never
// rejected because its image could not be fetched or encoded.
type Service struct {
	Pages      repository.PageRepository
	Sources    repository.SourceRepository
	Categories repository.CategoryRepository
	Fetcher    Fetcher
	Meta       MetadataFetcher
	Assets     AssetStore

	// Resize re-encodes a downloaded image as a bounded-width JPEG.
	// Nil skips re-encoding and stores the raw bytes.
	Resize func(data []byte, maxWidth int) ([]byte, error)
	// ImageMaxWidth bounds cached preview width in pixels.
	ImageMaxWidth int

	Logger *slog.Logger
}

// List retrieves pages from the selected store.
func (s *Service) List(ctx context.Context, f repository.PageFilter, archived bool) ([]*entity.Page, error) {
	pages, err := s.Pages.List(ctx, f, archived)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	return pages, nil
}

// Get retrieves a single page by its ID from the selected store.
// Returns ErrInvalidPageID if the ID is not positive.
// Returns ErrPageNotFound if the page does not exist.
func (s *Service) Get(ctx context.Context, id int64, archived bool) (*entity.Page, error) {
	if id <= 0 {
		return nil, ErrInvalidPageID
	}

	page, err := s.Pages.Get(ctx, id, archived)
	if err != nil {
		return nil, fmt.Errorf("get page: %w", err)
	}
	if page == nil {
		return nil, ErrPageNotFound
	}
	return page, nil
}

// Insert persists a newly detected page into the live store, caches its
// preview image, and advances the owning source's last-seen pointer.
// On entry p.ImagePath carries the remote preview URL; on return it holds
// the cached local path, or "" if no image could be cached.
// The image cache and pointer update run after the row exists, so a crash
// mid-pipeline loses at most the image and the pointer, never the page.
func (s *Service) Insert(ctx context.Context, p *entity.Page) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := s.fillMeta(ctx, p); err != nil {
		return fmt.Errorf("insert page: %w", err)
	}

	p.DetectedAt = time.Now()
	if err := s.Pages.Create(ctx, p); err != nil {
		return fmt.Errorf("insert page: %w", err)
	}

	if err := s.registerCategory(ctx, p.Category); err != nil {
		return fmt.Errorf("insert page: %w", err)
	}

	imagePath := s.cacheImage(ctx, p.ID, p.ImagePath)
	if _, err := s.Pages.SetImagePath(ctx, p.ID, imagePath); err != nil {
		return fmt.Errorf("insert page: set image path: %w", err)
	}
	p.ImagePath = imagePath

	if p.SourceID != 0 {
		if _, err := s.Sources.SetLastURL(ctx, p.SourceID, p.URL); err != nil {
			return fmt.Errorf("insert page: set last URL: %w", err)
		}
	}

	metrics.RecordPageIngested(p.SourceID)
	s.logger().Info("added a new page",
		slog.Int64("page_id", p.ID),
		slog.Int64("source_id", p.SourceID),
		slog.String("title", p.Title))
	return nil
}

// Archive copies a live page into the archive store under a fresh id, marks
// the copy read, and duplicates its cached image. The live original is left
// untouched.
func (s *Service) Archive(ctx context.Context, id int64) (*entity.Page, error) {
	if id <= 0 {
		return nil, ErrInvalidPageID
	}

	live, err := s.Pages.Get(ctx, id, false)
	if err != nil {
		return nil, fmt.Errorf("archive page: %w", err)
	}
	if live == nil {
		return nil, &entity.NotFoundError{Resource: "page", ID: id}
	}

	archived := *live
	archived.IsRead = true
	if err := s.Pages.CreateArchived(ctx, &archived); err != nil {
		return nil, fmt.Errorf("archive page: %w", err)
	}

	newPath := ""
	if live.ImagePath != "" {
		newPath, err = s.Assets.CopyImage(live.ImagePath, archived.ID)
		if err != nil {
			s.logger().Warn("failed to copy page image into archive",
				slog.Int64("page_id", id),
				slog.Int64("archived_id", archived.ID),
				slog.String("error", err.Error()))
			newPath = ""
		}
	}
	if _, err := s.Pages.SetImagePath(ctx, archived.ID, newPath); err != nil {
		return nil, fmt.Errorf("archive page: set image path: %w", err)
	}
	archived.ImagePath = newPath

	metrics.RecordPageArchived()
	s.logger().Info("archived the page",
		slog.Int64("page_id", id),
		slog.Int64("archived_id", archived.ID),
		slog.String("title", archived.Title))
	return &archived, nil
}

// ArchiveNew persists a caller-supplied page directly into the archive store,
// bypassing the live store entirely, and caches its preview image. The page
// is stored read: archiving something by hand means it has been seen.
func (s *Service) ArchiveNew(ctx context.Context, p *entity.Page) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := s.fillMeta(ctx, p); err != nil {
		return fmt.Errorf("archive new page: %w", err)
	}

	p.DetectedAt = time.Now()
	p.IsRead = true
	if err := s.Pages.CreateArchived(ctx, p); err != nil {
		return fmt.Errorf("archive new page: %w", err)
	}

	if err := s.registerCategory(ctx, p.Category); err != nil {
		return fmt.Errorf("archive new page: %w", err)
	}

	imagePath := s.cacheImage(ctx, p.ID, p.ImagePath)
	if _, err := s.Pages.SetImagePath(ctx, p.ID, imagePath); err != nil {
		return fmt.Errorf("archive new page: set image path: %w", err)
	}
	p.ImagePath = imagePath

	metrics.RecordPageArchived()
	s.logger().Info("archived a new page",
		slog.Int64("page_id", p.ID),
		slog.String("title", p.Title))
	return nil
}

// Read updates a page's read flag in whichever store holds it.
func (s *Service) Read(ctx context.Context, id int64, isRead bool) error {
	if id <= 0 {
		return ErrInvalidPageID
	}

	n, err := s.Pages.SetRead(ctx, id, isRead)
	if err != nil {
		return fmt.Errorf("read page: %w", err)
	}
	if n == 0 {
		return &entity.NotFoundError{Resource: "page", ID: id}
	}
	return nil
}

// Delete removes a page from whichever store holds it, along with its cached
// assets. Asset removal is best-effort; a failed disk cleanup never blocks
// the row deletion.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidPageID
	}

	if err := s.Assets.RemovePageDir(id); err != nil {
		s.logger().Warn("failed to delete page data",
			slog.Int64("page_id", id),
			slog.String("error", err.Error()))
	}

	n, err := s.Pages.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete page: %w", err)
	}
	if n == 0 {
		return &entity.NotFoundError{Resource: "page", ID: id}
	}

	s.logger().Info("deleted the page", slog.Int64("page_id", id))
	return nil
}

// DeleteBySource removes all live pages belonging to a source together with
// their cached assets. Used by source deletion with the cascade option.
func (s *Service) DeleteBySource(ctx context.Context, sourceID int64) error {
	ids, err := s.Pages.DeleteBySource(ctx, sourceID)
	if err != nil {
		return fmt.Errorf("delete pages by source: %w", err)
	}

	for _, id := range ids {
		if err := s.Assets.RemovePageDir(id); err != nil {
			s.logger().Warn("failed to delete page data",
				slog.Int64("page_id", id),
				slog.String("error", err.Error()))
		}
	}
	return nil
}

// fillMeta completes a bare-URL submission by running the same metadata
// extraction the watcher applies to detected items. A submission that already
// carries a title is taken as-is; the extractor is only consulted for the
// fields the caller left empty.
func (s *Service) fillMeta(ctx context.Context, p *entity.Page) error {
	if s.Meta == nil || p.Title != "" || p.SourceID != 0 {
		return nil
	}
	meta, err := s.Meta.FetchPageMeta(ctx, p.URL)
	if err != nil {
		return err
	}
	p.Title = meta.Title
	if p.Description == "" {
		p.Description = meta.Description
	}
	if p.ImagePath == "" {
		p.ImagePath = meta.ImageURL
	}
	return nil
}

// registerCategory records a page's category the first time it is seen.
// The insert is idempotent, so pages landing in a known category are a no-op.
func (s *Service) registerCategory(ctx context.Context, name string) error {
	if name == "" || s.Categories == nil {
		return nil
	}
	if err := s.Categories.Create(ctx, name, true); err != nil {
		return fmt.Errorf("register category: %w", err)
	}
	return nil
}

// cacheImage downloads, re-encodes, and stores a page's preview image,
// returning the stored path. Any failure logs a warning and returns "" so
// the page keeps an empty image path, mirroring "no preview available".
func (s *Service) cacheImage(ctx context.Context, pageID int64, imageURL string) string {
	if imageURL == "" {
		return ""
	}

	var data []byte
	err := retry.WithBackoff(ctx, retry.ImageFetchConfig(), func() error {
		var fetchErr error
		data, fetchErr = s.Fetcher.Fetch(ctx, imageURL)
		return fetchErr
	})
	if err == nil && s.Resize != nil {
		data, err = s.Resize(data, s.ImageMaxWidth)
	}
	if err != nil {
		metrics.RecordImageCacheFailure()
		s.logger().Warn("failed to cache page image",
			slog.Int64("page_id", pageID),
			slog.String("image_url", imageURL),
			slog.String("error", err.Error()))
		return ""
	}

	path, err := s.Assets.SaveImage(pageID, data)
	if err != nil {
		metrics.RecordImageCacheFailure()
		s.logger().Warn("failed to store page image",
			slog.Int64("page_id", pageID),
			slog.String("error", err.Error()))
		return ""
	}
	return path
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
