package team_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/negociacion/admin/internal/entity"
	"github.com/negociacion/admin/internal/mockapi/mocktest"
	"github.com/negociacion/admin/internal/team"
)

type recorder struct {
	alerts  []string
	prompts []string
	answer  bool
}

func (r *recorder) Alert(msg string) { r.alerts = append(r.alerts, msg) }
func (r *recorder) ScrollToTop()     {}
func (r *recorder) ClearFileInput()  {}
func (r *recorder) Confirm(prompt string) bool {
	r.prompts = append(r.prompts, prompt)
	return r.answer
}

func newTable(t *testing.T, srv *mocktest.Server, answer bool) (*team.Table, *recorder) {
	t.Helper()
	rec := &recorder{answer: answer}
	table := team.NewTable(srv.API(), entity.Deps{View: rec, Confirm: rec})
	require.NoError(t, table.Load(context.Background()))
	return table, rec
}

func TestTable_CreateAlertsFullName(t *testing.T) {
	srv := mocktest.New(t)
	table, rec := newTable(t, srv, true)

	require.NoError(t, table.SetField(team.FieldFirstName, "Ana"))
	require.NoError(t, table.SetField(team.FieldLastName, "Pérez"))
	require.NoError(t, table.SetField(team.FieldProfession, "Abogada"))

	require.NoError(t, table.Submit(context.Background()))

	assert.Equal(t, []string{"Ana Pérez agregado correctamente"}, rec.alerts)
	require.Len(t, table.Items(), 1)
	assert.Equal(t, "Abogada", table.Items()[0].Profession)
}

func TestTable_EditIsNotConfirmed(t *testing.T) {
	srv := mocktest.New(t)
	srv.Deps.Team.Create(team.Member{FirstName: "Ana", LastName: "Pérez"})
	table, rec := newTable(t, srv, false)

	member, ok := table.Find(1)
	require.True(t, ok)
	table.BeginEdit(member)
	require.NoError(t, table.SetField(team.FieldStatus, "inactivo"))

	require.NoError(t, table.Submit(context.Background()))

	assert.Empty(t, rec.prompts)
	edited, _ := table.Find(1)
	assert.Equal(t, "inactivo", edited.Status)
}

func TestTable_FailuresAlert(t *testing.T) {
	srv := mocktest.New(t)
	srv.Deps.Team.Create(team.Member{FirstName: "Ana", LastName: "Pérez"})
	table, rec := newTable(t, srv, true)
	srv.Fail(true)

	require.NoError(t, table.SetField(team.FieldFirstName, "Luis"))
	require.Error(t, table.Submit(context.Background()))

	member, _ := table.Find(1)
	table.BeginEdit(member)
	require.Error(t, table.Submit(context.Background()))

	require.Error(t, table.Delete(context.Background(), 1))

	assert.Equal(t, []string{
		"Error al guardar al miembro del equipo",
		"Error al editar miembro",
		"Error al eliminar miembro",
	}, rec.alerts)
	assert.Equal(t, []string{team.ConfirmDelete}, rec.prompts)
	assert.Len(t, table.Items(), 1)
}

func TestMember_FullName(t *testing.T) {
	m := team.Member{FirstName: "Ana", LastName: "Pérez"}
	assert.Equal(t, "Ana Pérez", m.FullName())
}
