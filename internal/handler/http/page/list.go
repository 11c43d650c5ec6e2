package page

import (
	"net/http"
	"strconv"

	"pagewatch/internal/handler/http/respond"
	"pagewatch/internal/repository"
	pageUC "pagewatch/internal/usecase/page"
)

type ListHandler struct{ Svc *pageUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f := repository.PageFilter{
		UnreadOnly: q.Get("unread") == "true",
		Category:   q.Get("category"),
		WithSub:    q.Get("sub") == "true",
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			respond.Error(w, http.StatusBadRequest, errInvalidQuery("offset"))
			return
		}
		f.Offset = n
	}
	if v := q.Get("count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			respond.Error(w, http.StatusBadRequest, errInvalidQuery("count"))
			return
		}
		f.Limit = n
	}
	if v := q.Get("before"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			respond.Error(w, http.StatusBadRequest, errInvalidQuery("before"))
			return
		}
		f.BeforeID = n
	}
	archived := q.Get("archived") == "true"

	list, err := h.Svc.List(r.Context(), f, archived)
	if err != nil {
		respond.DomainError(w, err)
		return
	}
	out := make([]DTO, 0, len(list))
	for _, e := range list {
		out = append(out, fromEntity(e))
	}
	respond.JSON(w, http.StatusOK, out)
}

type queryError string

func errInvalidQuery(param string) error { return queryError(param) }

func (e queryError) Error() string { return "invalid query parameter: " + string(e) }
