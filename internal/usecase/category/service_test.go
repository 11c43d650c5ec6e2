package category_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"pagewatch/internal/domain/entity"
	catUC "pagewatch/internal/usecase/category"
)

/* ───────── stub ───────── */

type stubRepo struct {
	names map[string]bool
	err   error
}

func newStub(names ...string) *stubRepo {
	s := &stubRepo{names: map[string]bool{}}
	for _, n := range names {
		s.names[n] = true
	}
	return s
}

func (s *stubRepo) Get(_ context.Context, name string) (*entity.Category, error) {
	if s.err != nil {
		return nil, s.err
	}
	if !s.names[name] {
		return nil, nil
	}
	return &entity.Category{Name: name}, nil
}

func (s *stubRepo) List(_ context.Context) ([]*entity.Category, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]*entity.Category, 0, len(s.names))
	for n := range s.names {
		out = append(out, &entity.Category{Name: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *stubRepo) ListWithPrefix(_ context.Context, name string) ([]*entity.Category, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.Category
	for n := range s.names {
		if n == name || strings.HasPrefix(n, name+"/") {
			out = append(out, &entity.Category{Name: n})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *stubRepo) Create(_ context.Context, name string, ignoreIfExists bool) error {
	if s.err != nil {
		return s.err
	}
	if s.names[name] {
		if ignoreIfExists {
			return nil
		}
		return &entity.AlreadyExistsError{Resource: "category", Name: name}
	}
	s.names[name] = true
	return nil
}

func (s *stubRepo) Delete(_ context.Context, name string) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	if !s.names[name] {
		return 0, nil
	}
	delete(s.names, name)
	return 1, nil
}

/* ───────── List ───────── */

func TestService_List(t *testing.T) {
	repo := newStub("tech", "tech/go", "tech/rust", "technical", "news")
	svc := &catUC.Service{Categories: repo}

	tests := []struct {
		name    string
		query   string
		withSub bool
		want    []string
	}{
		{
			name:  "empty name lists all",
			query: "",
			want:  []string{"news", "tech", "tech/go", "tech/rust", "technical"},
		},
		{
			name:  "exact name only",
			query: "tech",
			want:  []string{"tech"},
		},
		{
			name:    "with descendants",
			query:   "tech",
			withSub: true,
			want:    []string{"tech", "tech/go", "tech/rust"},
		},
		{
			name:  "unknown name yields empty slice",
			query: "sports",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cats, err := svc.List(context.Background(), tt.query, tt.withSub)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}

			got := make([]string, len(cats))
			for i, c := range cats {
				got[i] = c.Name
			}
			if len(got) != len(tt.want) {
				t.Fatalf("List() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("List()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

/* ───────── Add ───────── */

func TestService_Add(t *testing.T) {
	repo := newStub()
	svc := &catUC.Service{Categories: repo}

	if err := svc.Add(context.Background(), "tech"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if !repo.names["tech"] {
		t.Error("category should be registered")
	}
}

func TestService_Add_Duplicate(t *testing.T) {
	svc := &catUC.Service{Categories: newStub("tech")}

	err := svc.Add(context.Background(), "tech")
	if !errors.Is(err, entity.ErrAlreadyExists) {
		t.Fatalf("expected already exists error, got %v", err)
	}
}

func TestService_Add_EmptyName(t *testing.T) {
	svc := &catUC.Service{Categories: newStub()}

	err := svc.Add(context.Background(), "")
	if !errors.Is(err, entity.ErrInvalidInput) {
		t.Fatalf("expected invalid input error, got %v", err)
	}
}

/* ───────── Delete ───────── */

func TestService_Delete(t *testing.T) {
	repo := newStub("tech", "tech/go")
	svc := &catUC.Service{Categories: repo}

	if err := svc.Delete(context.Background(), "tech"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if repo.names["tech"] {
		t.Error("category should be removed")
	}
	if !repo.names["tech/go"] {
		t.Error("descendants are not cascaded by Delete")
	}
}

func TestService_Delete_NotFound(t *testing.T) {
	svc := &catUC.Service{Categories: newStub()}

	err := svc.Delete(context.Background(), "missing")
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}
