package handler

import (
	"log/slog"
	"net/http"

	"github.com/negociacion/admin/internal/mockapi/middleware"
	"github.com/negociacion/admin/internal/mockapi/response"
	"github.com/negociacion/admin/internal/mockapi/store"
	"github.com/negociacion/admin/internal/team"
)

var memberFields = []string{
	team.FieldFirstName,
	team.FieldLastName,
	team.FieldEmail,
	team.FieldProfession,
	team.FieldExperience,
	team.FieldStatus,
}

// TeamHandler handles the /api/team endpoints.
type TeamHandler struct {
	repo   *store.Repository[team.Member]
	files  *store.Files
	logger *slog.Logger
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(repo *store.Repository[team.Member], files *store.Files, logger *slog.Logger) *TeamHandler {
	return &TeamHandler{repo: repo, files: files, logger: logger}
}

// List handles GET /api/team.
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.repo.List())
}

// Create handles POST /api/team.
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	u, err := parseUpload(w, r, team.AttachmentField)
	if err != nil {
		response.Err(w, http.StatusBadRequest, "Request body must be multipart/form-data", requestID)
		return
	}

	if fieldErrors := u.required(team.FieldFirstName, team.FieldLastName); len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "Input validation failed", fieldErrors, requestID)
		return
	}

	var form team.Form
	u.apply(form.Set, memberFields...)

	var rec team.Member
	setMemberFields(&rec, form)
	if u.file != nil {
		rec.Photo = h.files.Save(u.file.Filename, u.file.Data).Name
	}

	created := h.repo.Create(rec)
	h.logger.Info("team member created", "id", created.ID, "requestId", requestID)
	response.Data(w, http.StatusCreated, created)
}

// Update handles PUT /api/team/{id}.
func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, err := idParam(r, "id")
	if err != nil {
		response.Err(w, http.StatusBadRequest, "id must be a number", requestID)
		return
	}

	existing, err := h.repo.Get(id)
	if err != nil {
		response.Err(w, http.StatusNotFound, "Miembro no encontrado", requestID)
		return
	}

	u, err := parseUpload(w, r, team.AttachmentField)
	if err != nil {
		response.Err(w, http.StatusBadRequest, "Request body must be multipart/form-data", requestID)
		return
	}

	form := team.FormOf(existing)
	u.apply(form.Set, memberFields...)

	var photo string
	if u.file != nil {
		photo = h.files.Save(u.file.Filename, u.file.Data).Name
	}

	updated, err := h.repo.Update(id, func(rec *team.Member) {
		setMemberFields(rec, form)
		if photo != "" {
			rec.Photo = photo
		}
	})
	if err != nil {
		response.Err(w, http.StatusNotFound, "Miembro no encontrado", requestID)
		return
	}

	response.Data(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/team/{id}.
func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, err := idParam(r, "id")
	if err != nil {
		response.Err(w, http.StatusBadRequest, "id must be a number", requestID)
		return
	}

	if err := h.repo.Delete(id); err != nil {
		response.Err(w, http.StatusNotFound, "Miembro no encontrado", requestID)
		return
	}

	response.NoContent(w)
}

func setMemberFields(rec *team.Member, f team.Form) {
	rec.FirstName = f.FirstName
	rec.LastName = f.LastName
	rec.Email = f.Email
	rec.Profession = f.Profession
	rec.Experience = f.Experience
	rec.Status = f.Status
}
