package news

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/negociacion/admin/internal/apiclient"
	"github.com/negociacion/admin/internal/entity"
)

// ConfirmDelete is asked before removing a post.
const ConfirmDelete = "¿Eliminar esta noticia?"

// LoadFailed is shown in place of the list when it cannot be fetched.
const LoadFailed = "No se pudieron cargar las noticias"

// Table manages the news list.
type Table = entity.Table[Post, Form, int64]

// Config returns the table configuration for news posts.
func Config() entity.Config[Post, Form, int64] {
	postPath := func(id int64) string { return fmt.Sprintf("/api/news/%d", id) }

	return entity.Config[Post, Form, int64]{
		Name: "news",
		Endpoints: entity.Endpoints[int64]{
			List:   "/api/news",
			Create: "/api/news",
			Edit:   postPath,
			Delete: postPath,
		},
		List:            entity.ArrayList[Post],
		Key:             func(p Post) int64 { return p.ID },
		FormOf:          FormOf,
		Fields:          Form.Fields,
		SetField:        (*Form).Set,
		AttachmentField: AttachmentField,
		Extra:           extraFields,
		Validate:        Form.Validate,
		ConfirmDelete:   ConfirmDelete,
		Messages: entity.Messages{
			LoadFailed:   LoadFailed,
			CreateFailed: "Error al guardar la noticia",
			EditFailed:   "Error al editar la noticia",
			DeleteFailed: "Error al eliminar la noticia",
		},
	}
}

// extraFields sends the title as slug source and stamps the publication or
// edit time depending on mode.
func extraFields(mode entity.Mode[int64], f Form, now time.Time) []apiclient.Field {
	fields := []apiclient.Field{{Name: FieldSlug, Value: f.Title}}

	switch mode.(type) {
	case entity.CreateMode[int64]:
		fields = append(fields, apiclient.Field{Name: FieldPublished, Value: FormatTimestamp(now)})
	case entity.EditMode[int64]:
		fields = append(fields, apiclient.Field{Name: FieldEdited, Value: FormatTimestamp(now)})
	}
	return fields
}

// NewTable creates an empty news table backed by api.
func NewTable(api *apiclient.Client, deps entity.Deps) *Table {
	return entity.New(api, Config(), deps)
}

// GetBySlug fetches a single post.
func GetBySlug(ctx context.Context, api *apiclient.Client, slug string) (Post, error) {
	return apiclient.Fetch[Post](ctx, api, "/api/news/"+url.PathEscape(slug))
}
