package page

import (
	"encoding/json"
	"net/http"

	"pagewatch/internal/handler/http/respond"
	pageUC "pagewatch/internal/usecase/page"
)

// CreateHandler accepts an explicitly submitted page into the live store.
type CreateHandler struct{ Svc *pageUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err)
		return
	}
	p := req.toEntity()
	if err := h.Svc.Insert(r.Context(), p); err != nil {
		respond.DomainError(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, fromEntity(p))
}
