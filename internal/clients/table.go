package clients

import (
	"fmt"

	"github.com/negociacion/admin/internal/apiclient"
	"github.com/negociacion/admin/internal/entity"
)

// Confirmation prompts.
const (
	ConfirmEdit   = "¿Está seguro de editar este cliente?"
	ConfirmDelete = "¿Eliminar este cliente?"
)

// Table manages the client list. Failures are logged, never alerted.
type Table = entity.Table[Client, Form, int64]

// Config returns the table configuration for clients.
func Config() entity.Config[Client, Form, int64] {
	return entity.Config[Client, Form, int64]{
		Name: "clients",
		Endpoints: entity.Endpoints[int64]{
			List:   "/api/clients",
			Create: "/api/clients/create",
			Edit:   func(id int64) string { return fmt.Sprintf("/api/clients/edit/%d", id) },
			Delete: func(id int64) string { return fmt.Sprintf("/api/clients/delete/%d", id) },
		},
		List:            entity.RowsList[Client],
		Key:             func(c Client) int64 { return c.ID },
		FormOf:          FormOf,
		Fields:          Form.Fields,
		SetField:        (*Form).Set,
		AttachmentField: AttachmentField,
		ConfirmEdit:     ConfirmEdit,
		ConfirmDelete:   ConfirmDelete,
	}
}

// NewTable creates an empty client table backed by api.
func NewTable(api *apiclient.Client, deps entity.Deps) *Table {
	return entity.New(api, Config(), deps)
}
