package watch

import (
	"context"
	"sync"

	"pagewatch/internal/observability/metrics"
)

// Registry tracks the running watchers, one per source id. All methods are
// safe for concurrent use.
type Registry struct {
	mu       sync.Mutex
	watchers map[int64]*Watcher
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{watchers: make(map[int64]*Watcher)}
}

// Add starts the watcher and registers it under its source id. A previous
// watcher for the same source is stopped first, so an update can swap in a
// freshly configured watcher without leaking the stale loop.
func (r *Registry) Add(ctx context.Context, w *Watcher) {
	r.mu.Lock()
	old := r.watchers[w.SourceID()]
	r.watchers[w.SourceID()] = w
	count := len(r.watchers)
	r.mu.Unlock()

	if old != nil {
		old.Stop()
	}
	w.Start(ctx)
	metrics.UpdateWatchersActive(count)
}

// Remove stops and deregisters the watcher for the given source id.
// Returns false if no watcher was registered.
func (r *Registry) Remove(sourceID int64) bool {
	r.mu.Lock()
	w, ok := r.watchers[sourceID]
	delete(r.watchers, sourceID)
	count := len(r.watchers)
	r.mu.Unlock()

	if !ok {
		return false
	}
	w.Stop()
	metrics.UpdateWatchersActive(count)
	return true
}

// CheckNow requests an immediate check on the given source's watcher.
// Returns false if no watcher is registered.
func (r *Registry) CheckNow(sourceID int64) bool {
	r.mu.Lock()
	w, ok := r.watchers[sourceID]
	r.mu.Unlock()

	if !ok {
		return false
	}
	w.CheckNow()
	return true
}

// Len returns the number of registered watchers.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.watchers)
}

// StopAll stops every registered watcher and empties the registry. Used on
// shutdown.
func (r *Registry) StopAll() {
	r.mu.Lock()
	watchers := r.watchers
	r.watchers = make(map[int64]*Watcher)
	r.mu.Unlock()

	for _, w := range watchers {
		w.Stop()
	}
	metrics.UpdateWatchersActive(0)
}
