package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/negociacion/admin/internal/clients"
	"github.com/negociacion/admin/internal/mockapi/middleware"
	"github.com/negociacion/admin/internal/mockapi/response"
	"github.com/negociacion/admin/internal/mockapi/store"
)

var clientFields = []string{
	clients.FieldName,
	clients.FieldEconomicActivity,
	clients.FieldAddress,
	clients.FieldLocality,
	clients.FieldPhone,
	clients.FieldEmail,
	clients.FieldMemberCount,
	clients.FieldTestimonial,
}

// ClientHandler handles the /api/clients endpoints.
type ClientHandler struct {
	repo   *store.Repository[clients.Client]
	files  *store.Files
	logger *slog.Logger
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(repo *store.Repository[clients.Client], files *store.Files, logger *slog.Logger) *ClientHandler {
	return &ClientHandler{repo: repo, files: files, logger: logger}
}

// List handles GET /api/clients.
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	items := h.repo.List()
	response.RowList(w, http.StatusOK, items, len(items))
}

// Create handles POST /api/clients/create.
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	u, err := parseUpload(w, r, clients.AttachmentField)
	if err != nil {
		response.Err(w, http.StatusBadRequest, "Request body must be multipart/form-data", requestID)
		return
	}

	var form clients.Form
	fieldErrors := append(u.required(clients.FieldName, clients.FieldEmail), u.apply(form.Set, clientFields...)...)
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "Input validation failed", fieldErrors, requestID)
		return
	}

	var rec clients.Client
	setClientFields(&rec, form)
	if u.file != nil {
		rec.Logo = h.files.Save(u.file.Filename, u.file.Data).Name
	}

	created := h.repo.Create(rec)
	h.logger.Info("client created", "id", created.ID, "requestId", requestID)
	response.Data(w, http.StatusCreated, created)
}

// Update handles PUT /api/clients/edit/{id}. Fields absent from the form keep
// their stored value; the logo is replaced only when a new file is sent.
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, err := idParam(r, "id")
	if err != nil {
		response.Err(w, http.StatusBadRequest, "id must be a number", requestID)
		return
	}

	existing, err := h.repo.Get(id)
	if err != nil {
		response.Err(w, http.StatusNotFound, "Cliente no encontrado", requestID)
		return
	}

	u, err := parseUpload(w, r, clients.AttachmentField)
	if err != nil {
		response.Err(w, http.StatusBadRequest, "Request body must be multipart/form-data", requestID)
		return
	}

	form := clients.FormOf(existing)
	if fieldErrors := u.apply(form.Set, clientFields...); len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "Input validation failed", fieldErrors, requestID)
		return
	}

	var logo string
	if u.file != nil {
		logo = h.files.Save(u.file.Filename, u.file.Data).Name
	}

	updated, err := h.repo.Update(id, func(rec *clients.Client) {
		setClientFields(rec, form)
		if logo != "" {
			rec.Logo = logo
		}
	})
	if err != nil {
		response.Err(w, http.StatusNotFound, "Cliente no encontrado", requestID)
		return
	}

	response.Data(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/clients/delete/{id}.
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, err := idParam(r, "id")
	if err != nil {
		response.Err(w, http.StatusBadRequest, "id must be a number", requestID)
		return
	}

	if err := h.repo.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.Err(w, http.StatusNotFound, "Cliente no encontrado", requestID)
			return
		}
		h.logger.Error("failed to delete client", "error", err, "id", id)
		response.Err(w, http.StatusInternalServerError, "Failed to delete client", requestID)
		return
	}

	response.NoContent(w)
}

func setClientFields(rec *clients.Client, f clients.Form) {
	rec.Name = f.Name
	rec.EconomicActivity = f.EconomicActivity
	rec.Address = f.Address
	rec.Locality = f.Locality
	rec.Phone = f.Phone
	rec.Email = f.Email
	rec.MemberCount = f.MemberCount
	rec.Testimonial = f.Testimonial
}
