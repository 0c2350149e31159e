package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/negociacion/admin/internal/mockapi/middleware"
	"github.com/negociacion/admin/internal/mockapi/response"
	"github.com/negociacion/admin/internal/mockapi/store"
	"github.com/negociacion/admin/internal/news"
)

var postFields = []string{news.FieldTitle, news.FieldSummary, news.FieldBody}

// NewsHandler handles the /api/news endpoints.
type NewsHandler struct {
	repo   *store.Repository[news.Post]
	files  *store.Files
	logger *slog.Logger
	now    func() time.Time
}

// NewNewsHandler creates a new NewsHandler.
func NewNewsHandler(repo *store.Repository[news.Post], files *store.Files, logger *slog.Logger) *NewsHandler {
	return &NewsHandler{repo: repo, files: files, logger: logger, now: time.Now}
}

// List handles GET /api/news.
func (h *NewsHandler) List(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.repo.List())
}

// GetBySlug handles GET /api/news/{ref}, where ref is a slug.
func (h *NewsHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	slug := chi.URLParam(r, "ref")

	post, ok := h.repo.Find(func(p news.Post) bool { return p.Slug == slug })
	if !ok {
		response.Err(w, http.StatusNotFound, "Noticia no encontrada", requestID)
		return
	}
	response.JSON(w, http.StatusOK, post)
}

// Create handles POST /api/news.
func (h *NewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	u, err := parseUpload(w, r, news.AttachmentField)
	if err != nil {
		response.Err(w, http.StatusBadRequest, "Request body must be multipart/form-data", requestID)
		return
	}

	if fieldErrors := u.required(postFields...); len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "Input validation failed", fieldErrors, requestID)
		return
	}

	var form news.Form
	u.apply(form.Set, postFields...)

	published := u.get(news.FieldPublished)
	if published == "" {
		published = news.FormatTimestamp(h.now())
	}

	rec := news.Post{
		Title:       form.Title,
		Summary:     form.Summary,
		Body:        form.Body,
		PublishedAt: published,
		Slug:        h.uniqueSlug(slugSource(u, form), 0),
	}
	if u.file != nil {
		name := h.files.Save(u.file.Filename, u.file.Data).Name
		rec.Image = &name
	}

	created := h.repo.Create(rec)
	h.logger.Info("news post created", "id", created.ID, "slug", created.Slug, "requestId", requestID)
	response.Data(w, http.StatusCreated, created)
}

// Update handles PUT /api/news/{ref}, where ref is a numeric id.
func (h *NewsHandler) Update(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, err := idParam(r, "ref")
	if err != nil {
		response.Err(w, http.StatusBadRequest, "id must be a number", requestID)
		return
	}

	existing, err := h.repo.Get(id)
	if err != nil {
		response.Err(w, http.StatusNotFound, "Noticia no encontrada", requestID)
		return
	}

	u, err := parseUpload(w, r, news.AttachmentField)
	if err != nil {
		response.Err(w, http.StatusBadRequest, "Request body must be multipart/form-data", requestID)
		return
	}

	form := news.FormOf(existing)
	u.apply(form.Set, postFields...)

	edited := u.get(news.FieldEdited)
	if edited == "" {
		edited = news.FormatTimestamp(h.now())
	}
	slug := existing.Slug
	if u.has(news.FieldSlug) || u.has(news.FieldTitle) {
		slug = h.uniqueSlug(slugSource(u, form), id)
	}

	var image string
	if u.file != nil {
		image = h.files.Save(u.file.Filename, u.file.Data).Name
	}

	updated, err := h.repo.Update(id, func(rec *news.Post) {
		rec.Title = form.Title
		rec.Summary = form.Summary
		rec.Body = form.Body
		rec.Slug = slug
		rec.EditedAt = &edited
		if image != "" {
			rec.Image = &image
		}
	})
	if err != nil {
		response.Err(w, http.StatusNotFound, "Noticia no encontrada", requestID)
		return
	}

	response.Data(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/news/{ref}, where ref is a numeric id.
func (h *NewsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, err := idParam(r, "ref")
	if err != nil {
		response.Err(w, http.StatusBadRequest, "id must be a number", requestID)
		return
	}

	if err := h.repo.Delete(id); err != nil {
		response.Err(w, http.StatusNotFound, "Noticia no encontrada", requestID)
		return
	}

	response.NoContent(w)
}

func slugSource(u *upload, form news.Form) string {
	if s := u.get(news.FieldSlug); s != "" {
		return s
	}
	return form.Title
}

// uniqueSlug slugifies source and appends -2, -3, ... while another post
// (other than self) already uses the result.
func (h *NewsHandler) uniqueSlug(source string, self int64) string {
	base := store.Slugify(source)
	if base == "" {
		base = "noticia"
	}

	candidate := base
	for n := 2; ; n++ {
		_, taken := h.repo.Find(func(p news.Post) bool { return p.Slug == candidate && p.ID != self })
		if !taken {
			return candidate
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
}
