package news_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/negociacion/admin/internal/entity"
	"github.com/negociacion/admin/internal/mockapi/mocktest"
	"github.com/negociacion/admin/internal/news"
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

var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 123_000_000, time.UTC)

func newTable(t *testing.T, srv *mocktest.Server, answer bool) (*news.Table, *recorder) {
	t.Helper()
	rec := &recorder{answer: answer}
	table := news.NewTable(srv.API(), entity.Deps{
		View:    rec,
		Confirm: rec,
		Now:     func() time.Time { return fixedNow },
	})
	require.NoError(t, table.Load(context.Background()))
	return table, rec
}

func fill(t *testing.T, table *news.Table, title, summary, body string) {
	t.Helper()
	require.NoError(t, table.SetField(news.FieldTitle, title))
	require.NoError(t, table.SetField(news.FieldSummary, summary))
	require.NoError(t, table.SetField(news.FieldBody, body))
}

func TestTable_CreateRequiresAllFields(t *testing.T) {
	srv := mocktest.New(t)
	table, rec := newTable(t, srv, true)
	before := len(srv.Requests())

	fill(t, table, "Hola", "", "texto")
	err := table.Submit(context.Background())

	assert.ErrorIs(t, err, news.ErrMissingFields)
	assert.Equal(t, []string{"Todos los campos son obligatorios"}, rec.alerts)
	assert.Len(t, srv.Requests(), before)
	assert.Equal(t, "Hola", table.Form().Title)
}

func TestTable_CreateStampsPublicationDate(t *testing.T) {
	srv := mocktest.New(t)
	table, rec := newTable(t, srv, true)

	fill(t, table, "Año Nuevo", "resumen", "texto")
	require.NoError(t, table.Submit(context.Background()))

	items := table.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "ano-nuevo", items[0].Slug)
	assert.Equal(t, "2024-05-01T10:00:00.123Z", items[0].PublishedAt)
	assert.Nil(t, items[0].EditedAt)
	assert.Empty(t, rec.alerts)
}

func TestTable_EditStampsEditDate(t *testing.T) {
	srv := mocktest.New(t)
	srv.Deps.News.Create(news.Post{Title: "Hola", Summary: "r", Body: "t", Slug: "hola", PublishedAt: "2024-01-01T00:00:00.000Z"})
	table, _ := newTable(t, srv, true)

	post, ok := table.Find(1)
	require.True(t, ok)
	table.BeginEdit(post)
	require.NoError(t, table.SetField(news.FieldTitle, "Hola mundo"))
	require.NoError(t, table.Submit(context.Background()))

	edited, _ := table.Find(1)
	assert.Equal(t, "hola-mundo", edited.Slug)
	assert.Equal(t, "2024-01-01T00:00:00.000Z", edited.PublishedAt)
	require.NotNil(t, edited.EditedAt)
	assert.Equal(t, "2024-05-01T10:00:00.123Z", *edited.EditedAt)
}

func TestTable_LoadFailureShowsInlineError(t *testing.T) {
	srv := mocktest.New(t)
	srv.Fail(true)
	rec := &recorder{}
	table := news.NewTable(srv.API(), entity.Deps{View: rec})

	require.Error(t, table.Load(context.Background()))

	assert.False(t, table.Loading())
	assert.Equal(t, news.LoadFailed, table.LoadError())
	assert.Empty(t, table.Items())
	assert.Empty(t, rec.alerts)
}

func TestTable_DeleteConfirmed(t *testing.T) {
	srv := mocktest.New(t)
	srv.Deps.News.Create(news.Post{Title: "Hola", Slug: "hola"})
	table, rec := newTable(t, srv, true)

	require.NoError(t, table.Delete(context.Background(), 1))

	assert.Equal(t, []string{news.ConfirmDelete}, rec.prompts)
	assert.Empty(t, table.Items())
}

func TestFormatTimestamp(t *testing.T) {
	local := time.Date(2024, 5, 1, 7, 0, 0, 5_000_000, time.FixedZone("ART", -3*60*60))
	assert.Equal(t, "2024-05-01T10:00:00.005Z", news.FormatTimestamp(local))
}
