package page

import (
	"net/http"

	"pagewatch/internal/handler/http/pathutil"
	"pagewatch/internal/handler/http/respond"
	pageUC "pagewatch/internal/usecase/page"
)

type GetHandler struct{ Svc *pageUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err)
		return
	}
	archived := r.URL.Query().Get("archived") == "true"

	p, err := h.Svc.Get(r.Context(), id, archived)
	if err != nil {
		respond.DomainError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, fromEntity(p))
}
