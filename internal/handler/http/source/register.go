package source

import (
	"net/http"

	srcUC "pagewatch/internal/usecase/source"
)

// Register registers the source routes with the given mux.
func Register(mux *http.ServeMux, svc *srcUC.Service) {
	mux.Handle("GET /sources", ListHandler{svc})
	mux.Handle("GET /sources/{id}", GetHandler{svc})
	mux.Handle("POST /sources", CreateHandler{svc})
	mux.Handle("PUT /sources/{id}", UpdateHandler{svc})
	mux.Handle("DELETE /sources/{id}", DeleteHandler{svc})
}
