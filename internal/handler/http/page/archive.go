package page

import (
	"encoding/json"
	"net/http"

	"pagewatch/internal/handler/http/pathutil"
	"pagewatch/internal/handler/http/respond"
	pageUC "pagewatch/internal/usecase/page"
)

// ArchiveHandler moves a live page into the archive store. The page gets a
// fresh id there; the response body carries the archived copy.
type ArchiveHandler struct{ Svc *pageUC.Service }

func (h ArchiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err)
		return
	}
	archived, err := h.Svc.Archive(r.Context(), id)
	if err != nil {
		respond.DomainError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, fromEntity(archived))
}

// ArchiveNewHandler writes a caller-submitted page straight into the archive
// store, skipping the live inbox.
type ArchiveNewHandler struct{ Svc *pageUC.Service }

func (h ArchiveNewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err)
		return
	}
	p := req.toEntity()
	if err := h.Svc.ArchiveNew(r.Context(), p); err != nil {
		respond.DomainError(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, fromEntity(p))
}
