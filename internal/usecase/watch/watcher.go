// Package watch runs one polling watcher per registered source. Each watcher
// owns its schedule, a single-flight guard, and a consecutive-failure
// counter; the registry tracks the running set.
package watch

import (
	"context"
	"log/slog"
	"math/rand"
	"sync/atomic"
	"time"

	"pagewatch/internal/domain/entity"
	"pagewatch/internal/observability/metrics"
	"pagewatch/internal/repository"
)

// disableThreshold is the number of consecutive fetch/selector failures after
// which a source is persisted as disabled. The watcher keeps running past it:
// disabling is advisory for an operator, not self-stopping, so a
// misconfigured-but-recoverable source is never silently lost.
const disableThreshold = 10

// Scraper locates the newest item on a crawl page and extracts page metadata.
type Scraper interface {
	LatestItemURL(ctx context.Context, crawlURL, selector, baseURL string) (string, error)
	FetchPageMeta(ctx context.Context, pageURL string) (entity.PageMeta, error)
}

// PageInserter ingests a newly detected page. Implemented by the page
// service; advancing the source's persisted last-seen pointer is part of the
// ingestion.
type PageInserter interface {
	Insert(ctx context.Context, p *entity.Page) error
}

// Config carries the shared dependencies for all watchers.
type Config struct {
	Scraper Scraper
	Pages   PageInserter
	Sources repository.SourceRepository
	// DefaultCycle applies to sources without an explicit cycle length.
	DefaultCycle time.Duration
	Logger       *slog.Logger
}

// Watcher polls one source. The first check fires after a random delay in
// [0, cycle) so many watchers created at boot do not stampede their targets;
// thereafter checks fire on a fixed ticker. CheckNow requests an immediate
// check, bypassing the schedule.
type Watcher struct {
	source *entity.Source // private snapshot, never shared after Start
	cycle  time.Duration
	cfg    Config
	logger *slog.Logger

	inFlight atomic.Bool
	checkNow chan struct{}
	cancel   context.CancelFunc
	done     chan struct{}

	// failures counts consecutive fetch/selector failures. Touched only
	// inside the single-flight section.
	failures int
}

// NewWatcher creates a watcher for the given source. The source is copied;
// later mutations by the caller do not reach the watcher.
func NewWatcher(source *entity.Source, cfg Config) *Watcher {
	snapshot := *source
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Watcher{
		source:   &snapshot,
		cycle:    snapshot.Cycle(cfg.DefaultCycle),
		cfg:      cfg,
		logger:   logger.With(slog.Int64("source_id", snapshot.ID), slog.String("source", snapshot.Title)),
		checkNow: make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

// SourceID returns the id of the watched source.
func (w *Watcher) SourceID() int64 {
	return w.source.ID
}

// Start launches the polling loop. It must be called at most once. A watcher
// for a disabled source stays stopped; re-enabling goes through a source
// update, which swaps in a fresh watcher.
func (w *Watcher) Start(ctx context.Context) {
	if w.source.Disabled {
		close(w.done)
		return
	}
	ctx, w.cancel = context.WithCancel(ctx)
	go w.run(ctx)
}

// Stop cancels the polling loop and waits for it to exit. An in-flight check
// is interrupted through its context.
func (w *Watcher) Stop() {
	if w.cancel == nil {
		return
	}
	w.cancel()
	<-w.done
}

// CheckNow requests an immediate check. The request is dropped if one is
// already pending.
func (w *Watcher) CheckNow() {
	select {
	case w.checkNow <- struct{}{}:
	default:
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)

	// spread boot-time checks across the first cycle
	jitter := time.Duration(rand.Int63n(int64(w.cycle)))
	timer := time.NewTimer(jitter)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return
	case <-timer.C:
		w.triggerCheck(ctx)
	case <-w.checkNow:
		w.triggerCheck(ctx)
	}

	ticker := time.NewTicker(w.cycle)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.triggerCheck(ctx)
		case <-w.checkNow:
			w.triggerCheck(ctx)
		}
	}
}

// triggerCheck runs one check unless another is still in flight, in which
// case the tick is dropped, not queued.
func (w *Watcher) triggerCheck(ctx context.Context) {
	if !w.inFlight.CompareAndSwap(false, true) {
		metrics.RecordCheckSkipped(w.source.ID)
		w.logger.Debug("check skipped, previous check still running")
		return
	}

	go func() {
		defer w.inFlight.Store(false)
		w.check(ctx)
	}()
}

// check performs one poll: locate the newest item, compare against the
// last-seen pointer, and ingest on change. Only fetch and selector failures
// feed the consecutive-failure counter; a check that found the item but
// failed to ingest it is logged and retried naturally on the next tick.
func (w *Watcher) check(ctx context.Context) {
	start := time.Now()

	latest, err := w.cfg.Scraper.LatestItemURL(ctx, w.source.CrawlURL, w.source.CSSSelector, w.source.URL)
	if err != nil {
		w.recordFailure(ctx, err, time.Since(start))
		return
	}

	w.failures = 0
	metrics.RecordCheckSuccess(w.source.ID, time.Since(start))

	if latest == w.source.LastURL {
		return
	}

	meta, err := w.cfg.Scraper.FetchPageMeta(ctx, latest)
	if err != nil {
		w.logger.Warn("metadata fetch failed for detected item",
			slog.String("item_url", latest),
			slog.String("error", err.Error()))
		return
	}

	p := &entity.Page{
		SourceID:    w.source.ID,
		SourceTitle: w.source.Title,
		Title:       meta.Title,
		URL:         latest,
		ImagePath:   meta.ImageURL,
		Description: meta.Description,
		Category:    w.source.Category,
	}
	if err := w.cfg.Pages.Insert(ctx, p); err != nil {
		w.logger.Error("failed to ingest detected page",
			slog.String("item_url", latest),
			slog.String("error", err.Error()))
		return
	}

	w.source.LastURL = latest
}

// recordFailure advances the consecutive-failure counter and persists the
// disabled flag when the threshold is hit. The flag is written exactly once,
// at the crossing, so operator re-enables are not immediately overwritten.
func (w *Watcher) recordFailure(ctx context.Context, err error, elapsed time.Duration) {
	w.failures++
	metrics.RecordCheckFailure(w.source.ID, elapsed)
	w.logger.Warn("source check failed",
		slog.Int("consecutive_failures", w.failures),
		slog.String("error", err.Error()))

	if w.failures != disableThreshold {
		return
	}

	if _, err := w.cfg.Sources.SetDisabled(ctx, w.source.ID, true); err != nil {
		w.logger.Error("failed to persist disabled flag",
			slog.String("error", err.Error()))
		return
	}

	w.source.Disabled = true
	metrics.RecordSourceDisabled()
	w.logger.Warn("source disabled after repeated check failures",
		slog.Int("consecutive_failures", w.failures))
}
