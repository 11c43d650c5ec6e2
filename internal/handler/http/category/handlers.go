// Package category exposes the category hierarchy over HTTP. Category names
// are slash-delimited paths, so the delete route uses a trailing wildcard.
package category

import (
	"encoding/json"
	"errors"
	"net/http"

	"pagewatch/internal/handler/http/respond"
	catUC "pagewatch/internal/usecase/category"
)

type DTO struct {
	Name string `json:"name"`
}

type ListHandler struct{ Svc *catUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list, err := h.Svc.List(r.Context(), q.Get("name"), q.Get("sub") == "true")
	if err != nil {
		respond.DomainError(w, err)
		return
	}
	out := make([]DTO, 0, len(list))
	for _, e := range list {
		out = append(out, DTO{Name: e.Name})
	}
	respond.JSON(w, http.StatusOK, out)
}

type AddHandler struct{ Svc *catUC.Service }

func (h AddHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req DTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err)
		return
	}
	if err := h.Svc.Add(r.Context(), req.Name); err != nil {
		respond.DomainError(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, req)
}

type DeleteHandler struct{ Svc *catUC.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		respond.Error(w, http.StatusBadRequest, errors.New("category name required"))
		return
	}
	if err := h.Svc.Delete(r.Context(), name); err != nil {
		respond.DomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Register registers the category routes with the given mux.
func Register(mux *http.ServeMux, svc *catUC.Service) {
	mux.Handle("GET /categories", ListHandler{svc})
	mux.Handle("POST /categories", AddHandler{svc})
	// {name...} so hierarchical names like "tech/go" stay addressable
	mux.Handle("DELETE /categories/{name...}", DeleteHandler{svc})
}
