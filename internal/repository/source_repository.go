package repository

import (
	"context"

	"pagewatch/internal/domain/entity"
)

type SourceRepository interface {
	Get(ctx context.Context, id int64) (*entity.Source, error)
	List(ctx context.Context) ([]*entity.Source, error)
	// Create persists the source and fills in the generated ID.
	Create(ctx context.Context, source *entity.Source) error
	// Update persists the full record and returns the affected row count.
	Update(ctx context.Context, source *entity.Source) (int64, error)
	// SetLastURL updates only the last-seen item pointer.
	SetLastURL(ctx context.Context, id int64, lastURL string) (int64, error)
	// SetDisabled updates only the disabled flag.
	SetDisabled(ctx context.Context, id int64, disabled bool) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
