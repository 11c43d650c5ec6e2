package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"pagewatch/internal/domain/entity"
	"pagewatch/internal/repository"
)

type SourceRepo struct{ db *sql.DB }

func NewSourceRepo(db *sql.DB) repository.SourceRepository {
	return &SourceRepo{db: db}
}

const sourceColumns = `id, title, url, crawl_url, css_selector, last_url, category, cycle_sec, disabled`

func scanSource(rows *sql.Rows) (*entity.Source, error) {
	var src entity.Source
	if err := rows.Scan(
		&src.ID, &src.Title, &src.URL, &src.CrawlURL, &src.CSSSelector,
		&src.LastURL, &src.Category, &src.CycleSec, &src.Disabled,
	); err != nil {
		return nil, err
	}
	return &src, nil
}

func (repo *SourceRepo) Get(ctx context.Context, id int64) (*entity.Source, error) {
	const query = `
SELECT ` + sourceColumns + `
FROM sources
WHERE id = $1
LIMIT 1`
	var src entity.Source
	err := repo.db.QueryRowContext(ctx, query, id).Scan(
		&src.ID, &src.Title, &src.URL, &src.CrawlURL, &src.CSSSelector,
		&src.LastURL, &src.Category, &src.CycleSec, &src.Disabled,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &src, nil
}

func (repo *SourceRepo) List(ctx context.Context) ([]*entity.Source, error) {
	const query = `
SELECT ` + sourceColumns + `
FROM sources
ORDER BY id ASC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	sources := make([]*entity.Source, 0, 50)
	for rows.Next() {
		src, err := scanSource(rows)
		if err != nil {
			return nil, fmt.Errorf("List: %w", err)
		}
		sources = append(sources, src)
	}
	return sources, rows.Err()
}

func (repo *SourceRepo) Create(ctx context.Context, source *entity.Source) error {
	const query = `
INSERT INTO sources (title, url, crawl_url, css_selector, last_url, category, cycle_sec, disabled)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		source.Title, source.URL, source.CrawlURL, source.CSSSelector,
		source.LastURL, source.Category, source.CycleSec, source.Disabled,
	).Scan(&source.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *SourceRepo) Update(ctx context.Context, source *entity.Source) (int64, error) {
	const query = `
UPDATE sources SET
       title        = $1,
       url          = $2,
       crawl_url    = $3,
       css_selector = $4,
       last_url     = $5,
       category     = $6,
       cycle_sec    = $7,
       disabled     = $8
WHERE id = $9`
	res, err := repo.db.ExecContext(ctx, query,
		source.Title, source.URL, source.CrawlURL, source.CSSSelector,
		source.LastURL, source.Category, source.CycleSec, source.Disabled,
		source.ID,
	)
	if err != nil {
		return 0, fmt.Errorf("Update: %w", err)
	}
	return res.RowsAffected()
}

func (repo *SourceRepo) SetLastURL(ctx context.Context, id int64, lastURL string) (int64, error) {
	const query = `UPDATE sources SET last_url = $1 WHERE id = $2`
	res, err := repo.db.ExecContext(ctx, query, lastURL, id)
	if err != nil {
		return 0, fmt.Errorf("SetLastURL: %w", err)
	}
	return res.RowsAffected()
}

func (repo *SourceRepo) SetDisabled(ctx context.Context, id int64, disabled bool) (int64, error) {
	const query = `UPDATE sources SET disabled = $1 WHERE id = $2`
	res, err := repo.db.ExecContext(ctx, query, disabled, id)
	if err != nil {
		return 0, fmt.Errorf("SetDisabled: %w", err)
	}
	return res.RowsAffected()
}

func (repo *SourceRepo) Delete(ctx context.Context, id int64) (int64, error) {
	const query = `DELETE FROM sources WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("Delete: %w", err)
	}
	return res.RowsAffected()
}
