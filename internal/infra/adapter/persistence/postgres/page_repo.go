package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"pagewatch/internal/domain/entity"
	"pagewatch/internal/repository"
)

type PageRepo struct{ db *sql.DB }

func NewPageRepo(db *sql.DB) repository.PageRepository {
	return &PageRepo{db: db}
}

const pageColumns = `id, source_id, source_title, title, url, image_path, description, category, detected_at, is_read`

func tableFor(archived bool) string {
	if archived {
		return "archived_pages"
	}
	return "pages"
}

func scanPage(rows *sql.Rows) (*entity.Page, error) {
	var p entity.Page
	if err := rows.Scan(
		&p.ID, &p.SourceID, &p.SourceTitle, &p.Title, &p.URL,
		&p.ImagePath, &p.Description, &p.Category, &p.DetectedAt, &p.IsRead,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func (repo *PageRepo) Get(ctx context.Context, id int64, archived bool) (*entity.Page, error) {
	query := `
SELECT ` + pageColumns + `
FROM ` + tableFor(archived) + `
WHERE id = $1
LIMIT 1`
	var p entity.Page
	err := repo.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.SourceID, &p.SourceTitle, &p.Title, &p.URL,
		&p.ImagePath, &p.Description, &p.Category, &p.DetectedAt, &p.IsRead,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &p, nil
}

// List returns pages newest-first. The filter supports unread-only, category
// (exact, or with all slash-delimited descendants), offset/limit pagination,
// and keyset pagination by "strictly older than id".
func (repo *PageRepo) List(ctx context.Context, f repository.PageFilter, archived bool) ([]*entity.Page, error) {
	query := `
SELECT ` + pageColumns + `
FROM ` + tableFor(archived) + `
WHERE 1=1`
	args := make([]any, 0, 4)

	if f.UnreadOnly {
		query += ` AND is_read = FALSE`
	}
	if f.Category != "" {
		if f.WithSub {
			args = append(args, f.Category, descendantsPattern(f.Category))
			n := len(args)
			query += ` AND (category = $` + strconv.Itoa(n-1) + ` OR category LIKE $` + strconv.Itoa(n) + `)`
		} else {
			args = append(args, f.Category)
			query += ` AND category = $` + strconv.Itoa(len(args))
		}
	}
	if f.BeforeID > 0 {
		args = append(args, f.BeforeID)
		query += ` AND id < $` + strconv.Itoa(len(args))
	}

	// Keyset pages are cut on id, so they must also be ordered on id: mixing
	// an id cursor with a detected_at ordering repeats or skips rows whenever
	// the two disagree. Ids are sequence-assigned, so id order is detection
	// order.
	if f.BeforeID > 0 {
		query += ` ORDER BY id DESC`
	} else {
		query += ` ORDER BY detected_at DESC, id DESC`
	}

	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += ` LIMIT $` + strconv.Itoa(len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		query += ` OFFSET $` + strconv.Itoa(len(args))
	}

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	pages := make([]*entity.Page, 0, 50)
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, fmt.Errorf("List: %w", err)
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

func (repo *PageRepo) Create(ctx context.Context, page *entity.Page) error {
	return repo.insert(ctx, page, false)
}

func (repo *PageRepo) CreateArchived(ctx context.Context, page *entity.Page) error {
	return repo.insert(ctx, page, true)
}

func (repo *PageRepo) insert(ctx context.Context, page *entity.Page, archived bool) error {
	query := `
INSERT INTO ` + tableFor(archived) + `
       (source_id, source_title, title, url, image_path, description, category, detected_at, is_read)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		page.SourceID, page.SourceTitle, page.Title, page.URL,
		page.ImagePath, page.Description, page.Category, page.DetectedAt, page.IsRead,
	).Scan(&page.ID)
	if err != nil {
		return fmt.Errorf("insert into %s: %w", tableFor(archived), err)
	}
	return nil
}

// SetImagePath updates the cached preview path, trying the live store first
// and falling back to the archive store.
func (repo *PageRepo) SetImagePath(ctx context.Context, id int64, path string) (int64, error) {
	return repo.updateBoth(ctx, `SET image_path = $1`, path, id)
}

// SetRead updates the read flag, trying the live store first and falling back
// to the archive store.
func (repo *PageRepo) SetRead(ctx context.Context, id int64, isRead bool) (int64, error) {
	return repo.updateBoth(ctx, `SET is_read = $1`, isRead, id)
}

func (repo *PageRepo) updateBoth(ctx context.Context, set string, value any, id int64) (int64, error) {
	for _, archived := range []bool{false, true} {
		query := `UPDATE ` + tableFor(archived) + ` ` + set + ` WHERE id = $2`
		res, err := repo.db.ExecContext(ctx, query, value, id)
		if err != nil {
			return 0, fmt.Errorf("update %s: %w", tableFor(archived), err)
		}
		if n, err := res.RowsAffected(); err != nil {
			return 0, err
		} else if n > 0 {
			return n, nil
		}
	}
	return 0, nil
}

// Delete removes the page row from whichever store contains it.
func (repo *PageRepo) Delete(ctx context.Context, id int64) (int64, error) {
	for _, archived := range []bool{false, true} {
		query := `DELETE FROM ` + tableFor(archived) + ` WHERE id = $1`
		res, err := repo.db.ExecContext(ctx, query, id)
		if err != nil {
			return 0, fmt.Errorf("delete from %s: %w", tableFor(archived), err)
		}
		if n, err := res.RowsAffected(); err != nil {
			return 0, err
		} else if n > 0 {
			return n, nil
		}
	}
	return 0, nil
}

func (repo *PageRepo) DeleteBySource(ctx context.Context, sourceID int64) ([]int64, error) {
	const query = `DELETE FROM pages WHERE source_id = $1 RETURNING id`
	rows, err := repo.db.QueryContext(ctx, query, sourceID)
	if err != nil {
		return nil, fmt.Errorf("DeleteBySource: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("DeleteBySource: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
