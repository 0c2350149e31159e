package handler

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

const maxUploadBytes = 10 << 20

// FieldError represents a validation error on a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type uploadedFile struct {
	Filename string
	Data     []byte
}

// upload is a parsed multipart request.
type upload struct {
	values map[string][]string
	file   *uploadedFile
}

func parseUpload(w http.ResponseWriter, r *http.Request, fileField string) (*upload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, fmt.Errorf("parsing multipart form: %w", err)
	}

	u := &upload{values: r.MultipartForm.Value}

	headers := r.MultipartForm.File[fileField]
	if len(headers) == 0 {
		return u, nil
	}
	f, err := headers[0].Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", fileField, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", fileField, err)
	}
	u.file = &uploadedFile{Filename: headers[0].Filename, Data: data}
	return u, nil
}

func (u *upload) has(name string) bool {
	_, ok := u.values[name]
	return ok
}

func (u *upload) get(name string) string {
	if vs := u.values[name]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// apply passes every present field to set, collecting failures.
func (u *upload) apply(set func(name, value string) error, fields ...string) []FieldError {
	var errs []FieldError
	for _, name := range fields {
		if !u.has(name) {
			continue
		}
		if err := set(name, u.get(name)); err != nil {
			errs = append(errs, FieldError{Field: name, Message: err.Error()})
		}
	}
	return errs
}

// required reports every listed field that is missing or blank.
func (u *upload) required(fields ...string) []FieldError {
	var errs []FieldError
	for _, name := range fields {
		if strings.TrimSpace(u.get(name)) == "" {
			errs = append(errs, FieldError{Field: name, Message: name + " is required"})
		}
	}
	return errs
}

func idParam(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}
