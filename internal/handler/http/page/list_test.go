package page_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pagewatch/internal/domain/entity"
	pageHandler "pagewatch/internal/handler/http/page"
	"pagewatch/internal/repository"
	pageUC "pagewatch/internal/usecase/page"
)

type capturePageRepo struct {
	filter   repository.PageFilter
	archived bool
	pages    []*entity.Page
}

func (r *capturePageRepo) Get(_ context.Context, _ int64, _ bool) (*entity.Page, error) {
	return nil, nil
}

func (r *capturePageRepo) List(_ context.Context, f repository.PageFilter, archived bool) ([]*entity.Page, error) {
	r.filter = f
	r.archived = archived
	return r.pages, nil
}

func (r *capturePageRepo) Create(_ context.Context, _ *entity.Page) error         { return nil }
func (r *capturePageRepo) CreateArchived(_ context.Context, _ *entity.Page) error { return nil }
func (r *capturePageRepo) SetImagePath(_ context.Context, _ int64, _ string) (int64, error) {
	return 1, nil
}
func (r *capturePageRepo) SetRead(_ context.Context, _ int64, _ bool) (int64, error) { return 1, nil }
func (r *capturePageRepo) Delete(_ context.Context, _ int64) (int64, error)          { return 1, nil }
func (r *capturePageRepo) DeleteBySource(_ context.Context, _ int64) ([]int64, error) {
	return nil, nil
}

func TestListHandler_FilterParsing(t *testing.T) {
	repo := &capturePageRepo{pages: []*entity.Page{{ID: 1, Title: "A", URL: "https://a"}}}
	h := pageHandler.ListHandler{Svc: &pageUC.Service{Pages: repo}}

	req := httptest.NewRequest(http.MethodGet,
		"/pages?unread=true&category=tech&sub=true&offset=20&count=10&before=99&archived=true", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	want := repository.PageFilter{
		UnreadOnly: true,
		Category:   "tech",
		WithSub:    true,
		Offset:     20,
		Limit:      10,
		BeforeID:   99,
	}
	if repo.filter != want {
		t.Errorf("filter = %+v, want %+v", repo.filter, want)
	}
	if !repo.archived {
		t.Error("archived flag not forwarded")
	}

	var out []pageHandler.DTO
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].ID != 1 {
		t.Errorf("body = %+v", out)
	}
}

func TestListHandler_DefaultsToLiveUnfiltered(t *testing.T) {
	repo := &capturePageRepo{}
	h := pageHandler.ListHandler{Svc: &pageUC.Service{Pages: repo}}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pages", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if repo.filter != (repository.PageFilter{}) {
		t.Errorf("filter = %+v, want zero value", repo.filter)
	}
	if repo.archived {
		t.Error("default store must be live")
	}
	if rec.Body.String() != "[]\n" {
		t.Errorf("empty list must encode as [], got %q", rec.Body.String())
	}
}

func TestListHandler_InvalidQueryParams(t *testing.T) {
	repo := &capturePageRepo{}
	h := pageHandler.ListHandler{Svc: &pageUC.Service{Pages: repo}}

	for _, query := range []string{"offset=-1", "offset=x", "count=-2", "before=0", "before=abc"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pages?"+query, nil))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("query %q: status = %d, want 400", query, rec.Code)
		}
	}
}
