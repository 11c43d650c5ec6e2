// Package category provides use cases for the hierarchical category names
// that group sources and pages. Hierarchy is positional: "tech/go" is a
// descendant of "tech", while "technical" is not.
package category

import (
	"context"
	"fmt"

	"pagewatch/internal/domain/entity"
	"pagewatch/internal/repository"
)

// Service provides category management use cases.
type Service struct {
	Categories repository.CategoryRepository
}

// List retrieves categories. An empty name lists everything; a name alone
// retrieves exactly that category; a name with withSub also includes its
// slash-delimited descendants. A name that matches nothing yields an empty
// slice, not an error.
func (s *Service) List(ctx context.Context, name string, withSub bool) ([]*entity.Category, error) {
	if name == "" {
		cats, err := s.Categories.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list categories: %w", err)
		}
		return cats, nil
	}

	if withSub {
		cats, err := s.Categories.ListWithPrefix(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("list categories: %w", err)
		}
		return cats, nil
	}

	cat, err := s.Categories.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if cat == nil {
		return []*entity.Category{}, nil
	}
	return []*entity.Category{cat}, nil
}

// Add registers a new category name. A duplicate name surfaces as
// *entity.AlreadyExistsError.
func (s *Service) Add(ctx context.Context, name string) error {
	if name == "" {
		return &entity.MissingFieldsError{Fields: []string{"name"}}
	}

	if err := s.Categories.Create(ctx, name, false); err != nil {
		return err
	}
	return nil
}

// Delete removes a category name. Pages and sources keep their category
// strings; the name simply stops being offered.
func (s *Service) Delete(ctx context.Context, name string) error {
	if name == "" {
		return &entity.MissingFieldsError{Fields: []string{"name"}}
	}

	n, err := s.Categories.Delete(ctx, name)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if n == 0 {
		return &entity.NotFoundError{Resource: "category", Name: name}
	}
	return nil
}
