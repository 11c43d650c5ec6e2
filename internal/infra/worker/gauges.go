// Package worker holds background jobs that run on a schedule rather than in
// response to a request or a source check.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"pagewatch/internal/observability/metrics"
	"pagewatch/internal/repository"
)

// refreshTimeout bounds a single gauge refresh so a stuck database query
// cannot pile up cron invocations.
const refreshTimeout = 10 * time.Second

// GaugeRefresher periodically re-reads store row counts and publishes them as
// gauges. Counters track events as they happen; the totals have to be polled.
type GaugeRefresher struct {
	Stats  repository.StatsRepository
	Logger *slog.Logger
}

// Refresh reads the current counts and updates the gauges once.
func (g *GaugeRefresher) Refresh(ctx context.Context) error {
	counts, err := g.Stats.Counts(ctx)
	if err != nil {
		return fmt.Errorf("refresh gauges: %w", err)
	}

	metrics.UpdateSourcesTotal(counts.Sources)
	metrics.UpdatePagesTotal(counts.LivePages, counts.ArchivedPages)

	g.logger().Debug("refreshed store gauges",
		slog.Int("sources", counts.Sources),
		slog.Int("pages", counts.LivePages),
		slog.Int("archived_pages", counts.ArchivedPages))
	return nil
}

// Schedule runs Refresh on the given cron spec (e.g. "@every 1m") and returns
// the started scheduler. The caller stops it on shutdown.
func (g *GaugeRefresher) Schedule(spec string) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		if err := g.Refresh(ctx); err != nil {
			g.logger().Warn("gauge refresh failed", slog.Any("error", err))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("schedule gauge refresh: %w", err)
	}
	c.Start()
	return c, nil
}

func (g *GaugeRefresher) logger() *slog.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return slog.Default()
}
