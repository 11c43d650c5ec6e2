package source

import (
	"net/http"

	"pagewatch/internal/handler/http/pathutil"
	"pagewatch/internal/handler/http/respond"
	srcUC "pagewatch/internal/usecase/source"
)

type DeleteHandler struct{ Svc *srcUC.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err)
		return
	}
	cascade := r.URL.Query().Get("pages") == "true"

	if err := h.Svc.Delete(r.Context(), id, cascade); err != nil {
		respond.DomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
