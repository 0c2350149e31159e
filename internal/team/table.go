package team

import (
	"fmt"

	"github.com/negociacion/admin/internal/apiclient"
	"github.com/negociacion/admin/internal/entity"
)

// ConfirmDelete is asked before removing a member. Edits are not confirmed.
const ConfirmDelete = "¿Eliminar miembro?"

// Table manages the team member list.
type Table = entity.Table[Member, Form, int64]

// Config returns the table configuration for team members.
func Config() entity.Config[Member, Form, int64] {
	memberPath := func(id int64) string { return fmt.Sprintf("/api/team/%d", id) }

	return entity.Config[Member, Form, int64]{
		Name: "team",
		Endpoints: entity.Endpoints[int64]{
			List:   "/api/team",
			Create: "/api/team",
			Edit:   memberPath,
			Delete: memberPath,
		},
		List:            entity.ArrayList[Member],
		Key:             func(m Member) int64 { return m.ID },
		FormOf:          FormOf,
		Fields:          Form.Fields,
		SetField:        (*Form).Set,
		AttachmentField: AttachmentField,
		Created: func(m Member) string {
			return m.FullName() + " agregado correctamente"
		},
		ConfirmDelete: ConfirmDelete,
		Messages: entity.Messages{
			CreateFailed: "Error al guardar al miembro del equipo",
			EditFailed:   "Error al editar miembro",
			DeleteFailed: "Error al eliminar miembro",
		},
	}
}

// NewTable creates an empty team table backed by api.
func NewTable(api *apiclient.Client, deps entity.Deps) *Table {
	return entity.New(api, Config(), deps)
}
