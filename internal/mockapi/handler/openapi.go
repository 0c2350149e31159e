package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"sigs.k8s.io/yaml"

	"github.com/negociacion/admin/internal/mockapi/middleware"
	"github.com/negociacion/admin/internal/mockapi/response"
)

// OpenAPIHandler serves the API description, converted from YAML to JSON
// when the handler is built.
type OpenAPIHandler struct {
	doc    []byte
	err    error
	logger *slog.Logger
}

// NewOpenAPIHandler converts doc to JSON. A document that fails to convert is
// reported on every request rather than at startup.
func NewOpenAPIHandler(doc []byte, logger *slog.Logger) *OpenAPIHandler {
	h := &OpenAPIHandler{logger: logger}
	h.doc, h.err = yaml.YAMLToJSON(doc)
	if h.err != nil {
		logger.Error("invalid OpenAPI document", "error", h.err)
	}
	return h
}

func (h *OpenAPIHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.err != nil {
		response.Err(w, http.StatusInternalServerError, "Documento OpenAPI inválido", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(h.doc)))
	if _, err := w.Write(h.doc); err != nil {
		h.logger.Debug("openapi write aborted", "error", err)
	}
}
