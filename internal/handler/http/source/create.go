package source

import (
	"encoding/json"
	"net/http"

	"pagewatch/internal/handler/http/respond"
	srcUC "pagewatch/internal/usecase/source"
)

type CreateHandler struct{ Svc *srcUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err)
		return
	}
	src := req.toEntity()
	if err := h.Svc.Register(r.Context(), src); err != nil {
		respond.DomainError(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, fromEntity(src))
}
