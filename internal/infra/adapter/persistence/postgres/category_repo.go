package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"pagewatch/internal/domain/entity"
	"pagewatch/internal/repository"
)

type CategoryRepo struct{ db *sql.DB }

func NewCategoryRepo(db *sql.DB) repository.CategoryRepository {
	return &CategoryRepo{db: db}
}

func (repo *CategoryRepo) Get(ctx context.Context, name string) (*entity.Category, error) {
	const query = `SELECT name FROM categories WHERE name = $1 LIMIT 1`
	var cat entity.Category
	err := repo.db.QueryRowContext(ctx, query, name).Scan(&cat.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &cat, nil
}

func (repo *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	const query = `SELECT name FROM categories ORDER BY name ASC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	cats := make([]*entity.Category, 0, 10)
	for rows.Next() {
		var cat entity.Category
		if err := rows.Scan(&cat.Name); err != nil {
			return nil, fmt.Errorf("List: %w", err)
		}
		cats = append(cats, &cat)
	}
	return cats, rows.Err()
}

func (repo *CategoryRepo) ListWithPrefix(ctx context.Context, name string) ([]*entity.Category, error) {
	// Exact name plus slash-delimited descendants; a shared string prefix
	// ("newsletter" for "news") must not match.
	const query = `
SELECT name FROM categories
WHERE name = $1 OR name LIKE $2
ORDER BY name ASC`
	rows, err := repo.db.QueryContext(ctx, query, name, descendantsPattern(name))
	if err != nil {
		return nil, fmt.Errorf("ListWithPrefix: %w", err)
	}
	defer func() { _ = rows.Close() }()

	cats := make([]*entity.Category, 0, 10)
	for rows.Next() {
		var cat entity.Category
		if err := rows.Scan(&cat.Name); err != nil {
			return nil, fmt.Errorf("ListWithPrefix: %w", err)
		}
		cats = append(cats, &cat)
	}
	return cats, rows.Err()
}

func (repo *CategoryRepo) Create(ctx context.Context, name string, ignoreIfExists bool) error {
	if ignoreIfExists {
		const query = `INSERT INTO categories (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`
		if _, err := repo.db.ExecContext(ctx, query, name); err != nil {
			return fmt.Errorf("Create: %w", err)
		}
		return nil
	}

	const query = `INSERT INTO categories (name) VALUES ($1)`
	if _, err := repo.db.ExecContext(ctx, query, name); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return &entity.AlreadyExistsError{Resource: "category", Name: name}
		}
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *CategoryRepo) Delete(ctx context.Context, name string) (int64, error) {
	const query = `DELETE FROM categories WHERE name = $1`
	res, err := repo.db.ExecContext(ctx, query, name)
	if err != nil {
		return 0, fmt.Errorf("Delete: %w", err)
	}
	return res.RowsAffected()
}
