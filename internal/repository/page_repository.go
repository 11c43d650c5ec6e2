package repository

import (
	"context"

	"pagewatch/internal/domain/entity"
)

// PageFilter narrows List results. Zero values mean "no constraint".
type PageFilter struct {
	UnreadOnly bool
	// Category filters by exact name, or by name plus all slash-delimited
	// descendants when WithSub is set.
	Category string
	WithSub  bool
	// Offset/Limit paginate by position; BeforeID paginates by "items
	// strictly older than this id". The two schemes are independent.
	Offset   int
	Limit    int
	BeforeID int64
}

// PageRepository persists pages across the two disjoint stores. The archived
// flag on Get/List selects the store; id-keyed mutations (SetImagePath,
// SetRead, Delete) try the live store first and fall back to the archive
// store, so a page is addressable by id no matter where it lives.
type PageRepository interface {
	Get(ctx context.Context, id int64, archived bool) (*entity.Page, error)
	List(ctx context.Context, f PageFilter, archived bool) ([]*entity.Page, error)
	// Create persists into the live store and fills in the generated ID.
	Create(ctx context.Context, page *entity.Page) error
	// CreateArchived persists into the archive store and fills in the
	// generated ID, which is always distinct from any live-store id the
	// page previously had.
	CreateArchived(ctx context.Context, page *entity.Page) error
	SetImagePath(ctx context.Context, id int64, path string) (int64, error)
	SetRead(ctx context.Context, id int64, isRead bool) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	// DeleteBySource removes all live pages belonging to the source and
	// returns their ids so cached assets can be cleaned up.
	DeleteBySource(ctx context.Context, sourceID int64) ([]int64, error)
}
