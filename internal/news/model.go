package news

import (
	"errors"
	"fmt"
	"time"

	"github.com/negociacion/admin/internal/apiclient"
)

// Form field names as sent to the API.
const (
	FieldTitle     = "titulo"
	FieldSummary   = "resumen"
	FieldBody      = "texto"
	FieldSlug      = "slug"
	FieldPublished = "fecha_publicacion"
	FieldEdited    = "fecha_edicion"

	// AttachmentField is the multipart field carrying the cover image.
	AttachmentField = "imagen"
)

// TimestampLayout is the UTC, millisecond precision format used for the
// publication and edit timestamps.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// ErrMissingFields is returned when a post is created without a title,
// summary or body.
var ErrMissingFields = errors.New("Todos los campos son obligatorios") //nolint:staticcheck // shown verbatim to the user

// Post is a news article. Timestamps are kept as sent by the API.
type Post struct {
	ID          int64   `json:"id"`
	Title       string  `json:"titulo"`
	Summary     string  `json:"resumen"`
	Body        string  `json:"texto"`
	PublishedAt string  `json:"fecha_publicacion"`
	EditedAt    *string `json:"fecha_edicion"`
	Image       *string `json:"url_imagen"`
	Slug        string  `json:"slug"`
}

// Form holds the editable fields of a Post.
type Form struct {
	Title   string
	Summary string
	Body    string
}

// FormOf copies the editable fields of p.
func FormOf(p Post) Form {
	return Form{Title: p.Title, Summary: p.Summary, Body: p.Body}
}

// Fields renders the form as multipart fields.
func (f Form) Fields() []apiclient.Field {
	return []apiclient.Field{
		{Name: FieldTitle, Value: f.Title},
		{Name: FieldSummary, Value: f.Summary},
		{Name: FieldBody, Value: f.Body},
	}
}

// Set assigns a field by its wire name.
func (f *Form) Set(name, value string) error {
	switch name {
	case FieldTitle:
		f.Title = value
	case FieldSummary:
		f.Summary = value
	case FieldBody:
		f.Body = value
	default:
		return fmt.Errorf("unknown news field %q", name)
	}
	return nil
}

// Validate requires every field to be filled in.
func (f Form) Validate() error {
	if f.Title == "" || f.Summary == "" || f.Body == "" {
		return ErrMissingFields
	}
	return nil
}

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
