package page

import (
	"net/http"

	pageUC "pagewatch/internal/usecase/page"
)

// Register registers the page routes with the given mux. The archive-new
// route is declared before the id-keyed archive route on purpose: the mux
// prefers the more specific literal segment.
func Register(mux *http.ServeMux, svc *pageUC.Service) {
	mux.Handle("GET /pages", ListHandler{svc})
	mux.Handle("GET /pages/{id}", GetHandler{svc})
	mux.Handle("POST /pages", CreateHandler{svc})
	mux.Handle("POST /pages/archive", ArchiveNewHandler{svc})
	mux.Handle("POST /pages/{id}/archive", ArchiveHandler{svc})
	mux.Handle("PUT /pages/{id}/read", ReadHandler{svc})
	mux.Handle("DELETE /pages/{id}", DeleteHandler{svc})
}
