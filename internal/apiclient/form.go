package apiclient

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Field is a single named string value of a form payload.
type Field struct {
	Name  string
	Value string
}

// Attachment is a file selected locally but not yet uploaded.
type Attachment struct {
	Filename string
	Content  []byte
}

// ReadAttachment loads the file at path as an Attachment.
func ReadAttachment(path string) (*Attachment, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading attachment: %w", err)
	}
	return &Attachment{Filename: filepath.Base(path), Content: content}, nil
}

// ContentType sniffs the attachment's media type from its bytes.
func (a *Attachment) ContentType() string {
	return mimetype.Detect(a.Content).String()
}

// Form is an ordered multipart payload with at most one file part.
type Form struct {
	fields    []Field
	fileField string
	file      *Attachment
}

// NewForm creates a Form holding the given fields in order.
func NewForm(fields ...Field) *Form {
	return &Form{fields: append([]Field(nil), fields...)}
}

// Add appends a field.
func (f *Form) Add(name, value string) {
	f.fields = append(f.fields, Field{Name: name, Value: value})
}

// Attach sets the file part. A nil attachment removes it.
func (f *Form) Attach(field string, a *Attachment) {
	if a == nil {
		f.fileField, f.file = "", nil
		return
	}
	f.fileField, f.file = field, a
}

// Fields returns the string fields in insertion order.
func (f *Form) Fields() []Field {
	return append([]Field(nil), f.fields...)
}

// File returns the file part and its field name, if any.
func (f *Form) File() (string, *Attachment) {
	return f.fileField, f.file
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// Encode renders the form as multipart/form-data and returns the body along
// with its content type.
func (f *Form) Encode() ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, fld := range f.fields {
		if err := w.WriteField(fld.Name, fld.Value); err != nil {
			return nil, "", fmt.Errorf("writing field %s: %w", fld.Name, err)
		}
	}

	if f.file != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			quoteEscaper.Replace(f.fileField), quoteEscaper.Replace(f.file.Filename)))
		h.Set("Content-Type", f.file.ContentType())
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("creating file part: %w", err)
		}
		if _, err := part.Write(f.file.Content); err != nil {
			return nil, "", fmt.Errorf("writing file part: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("closing multipart writer: %w", err)
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}
