package page

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"pagewatch/internal/handler/http/pathutil"
	"pagewatch/internal/handler/http/respond"
	pageUC "pagewatch/internal/usecase/page"
)

// ReadHandler sets or clears a page's read flag. An empty body marks the page
// read.
type ReadHandler struct{ Svc *pageUC.Service }

func (h ReadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err)
		return
	}

	req := struct {
		Read *bool `json:"read"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respond.Error(w, http.StatusBadRequest, err)
		return
	}
	isRead := true
	if req.Read != nil {
		isRead = *req.Read
	}

	if err := h.Svc.Read(r.Context(), id, isRead); err != nil {
		respond.DomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
