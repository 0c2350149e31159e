package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/negociacion/admin/internal/mockapi/store"
)

// PublicHandler serves uploaded attachments under /public/{name}.
type PublicHandler struct {
	files *store.Files
}

// NewPublicHandler creates a new PublicHandler.
func NewPublicHandler(files *store.Files) *PublicHandler {
	return &PublicHandler{files: files}
}

// ServeHTTP writes the stored file or 404.
func (h *PublicHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	file, ok := h.files.Get(chi.URLParam(r, "name"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Data)))
	_, _ = w.Write(file.Data)
}
