package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"pagewatch/internal/repository"
)

type StatsRepo struct{ db *sql.DB }

func NewStatsRepo(db *sql.DB) repository.StatsRepository {
	return &StatsRepo{db: db}
}

// Counts reads the row counts of all three stores in a single round trip.
func (repo *StatsRepo) Counts(ctx context.Context) (repository.StoreCounts, error) {
	const query = `
SELECT
  (SELECT COUNT(*) FROM sources),
  (SELECT COUNT(*) FROM pages),
  (SELECT COUNT(*) FROM archived_pages)`
	var counts repository.StoreCounts
	err := repo.db.QueryRowContext(ctx, query).Scan(
		&counts.Sources, &counts.LivePages, &counts.ArchivedPages,
	)
	if err != nil {
		return repository.StoreCounts{}, fmt.Errorf("Counts: %w", err)
	}
	return counts, nil
}
