package page

import (
	"net/http"

	"pagewatch/internal/handler/http/pathutil"
	"pagewatch/internal/handler/http/respond"
	pageUC "pagewatch/internal/usecase/page"
)

type DeleteHandler struct{ Svc *pageUC.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err)
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.DomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
