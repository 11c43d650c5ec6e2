package repository

import (
	"context"

	"pagewatch/internal/domain/entity"
)

type CategoryRepository interface {
	Get(ctx context.Context, name string) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	// ListWithPrefix returns the category itself plus all slash-delimited
	// descendants. A shared string prefix ("newsletter" for "news") does
	// not match.
	ListWithPrefix(ctx context.Context, name string) ([]*entity.Category, error)
	// Create registers the name. With ignoreIfExists the insert is
	// idempotent; without it a duplicate name returns
	// entity.AlreadyExistsError.
	Create(ctx context.Context, name string, ignoreIfExists bool) error
	Delete(ctx context.Context, name string) (int64, error)
}
