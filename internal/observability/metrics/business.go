package metrics

import (
	"strconv"
	"time"
)

// RecordCheckSuccess records one completed source check.
func RecordCheckSuccess(sourceID int64, duration time.Duration) {
	id := strconv.FormatInt(sourceID, 10)
	WatcherChecksTotal.WithLabelValues(id, "success").Inc()
	WatcherCheckDuration.WithLabelValues(id).Observe(duration.Seconds())
}

// RecordCheckFailure records a source check that failed to fetch or to apply
// the selector rule.
func RecordCheckFailure(sourceID int64, duration time.Duration) {
	id := strconv.FormatInt(sourceID, 10)
	WatcherChecksTotal.WithLabelValues(id, "failure").Inc()
	WatcherCheckDuration.WithLabelValues(id).Observe(duration.Seconds())
}

// RecordCheckSkipped records a tick dropped because the previous check was
// still in flight.
func RecordCheckSkipped(sourceID int64) {
	WatcherChecksTotal.WithLabelValues(strconv.FormatInt(sourceID, 10), "skipped").Inc()
}

// RecordSourceDisabled records a source being auto-disabled after hitting the
// consecutive-failure threshold.
func RecordSourceDisabled() {
	SourcesDisabledTotal.Inc()
}

// RecordPageIngested records a new page created for a source.
func RecordPageIngested(sourceID int64) {
	PagesIngestedTotal.WithLabelValues(strconv.FormatInt(sourceID, 10)).Inc()
}

// RecordPageArchived records a page copied into the archive store.
func RecordPageArchived() {
	PagesArchivedTotal.Inc()
}

// RecordImageCacheFailure records a preview image that could not be fetched
// or re-encoded. The owning page is still created.
func RecordImageCacheFailure() {
	ImageCacheFailuresTotal.Inc()
}

// UpdateWatchersActive updates the count of running watchers.
func UpdateWatchersActive(count int) {
	WatchersActive.Set(float64(count))
}

// UpdateSourcesTotal updates the total count of sources in the database.
// This gauge should be updated periodically to reflect the current state.
func UpdateSourcesTotal(count int) {
	SourcesTotal.Set(float64(count))
}

// UpdatePagesTotal updates the per-store page counts.
// This gauge should be updated periodically to reflect the current state.
func UpdatePagesTotal(live, archived int) {
	PagesTotal.WithLabelValues("live").Set(float64(live))
	PagesTotal.WithLabelValues("archive").Set(float64(archived))
}
