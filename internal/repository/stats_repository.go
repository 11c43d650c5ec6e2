package repository

import "context"

// StoreCounts holds a point-in-time snapshot of the row counts exported as
// gauges.
type StoreCounts struct {
	Sources       int
	LivePages     int
	ArchivedPages int
}

type StatsRepository interface {
	Counts(ctx context.Context) (StoreCounts, error)
}
