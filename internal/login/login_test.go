package login_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/negociacion/admin/internal/apiclient"
	"github.com/negociacion/admin/internal/login"
	"github.com/negociacion/admin/internal/mockapi/mocktest"
	"github.com/negociacion/admin/internal/session"
)

type recorder struct {
	alerts []string
	routes []string
}

func (r *recorder) Alert(msg string)      { r.alerts = append(r.alerts, msg) }
func (r *recorder) Navigate(route string) { r.routes = append(r.routes, route) }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newView(t *testing.T, url string) (*login.View, *recorder, *session.MemoryStore) {
	t.Helper()
	store := session.NewMemoryStore()
	rec := &recorder{}
	v := login.New(apiclient.New(url), session.NewManager(store, quietLogger()), rec, rec, quietLogger())
	return v, rec, store
}

func TestSubmit_Success(t *testing.T) {
	srv := mocktest.New(t)
	v, rec, store := newView(t, srv.URL)
	v.Email = mocktest.AdminEmail
	v.Password = mocktest.AdminPassword
	v.Remember = true

	require.NoError(t, v.Submit(context.Background()))

	token, err := store.Get(context.Background(), session.KeyToken)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	user, err := store.Get(context.Background(), session.KeyUser)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"email":"admin@example.com","nombre":"Ada"}`, user)

	assert.Equal(t, []string{"Bienvenido, Ada"}, rec.alerts)
	assert.Equal(t, []string{login.DashboardRoute}, rec.routes)
}

func TestSubmit_DefaultSuccessMessage(t *testing.T) {
	var body map[string]any
	r := chi.NewRouter()
	r.Post("/api/login", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"abc","user":{"id":3}}`))
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	v, rec, store := newView(t, srv.URL)
	v.Email = "a@b.c"
	v.Password = "pw"
	v.Remember = true

	require.NoError(t, v.Submit(context.Background()))

	assert.Equal(t, map[string]any{"email": "a@b.c", "password": "pw"}, body, "remember is never sent")
	assert.Equal(t, []string{"Login exitoso"}, rec.alerts)
	token, err := store.Get(context.Background(), session.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "abc", token)
}

func TestSubmit_InvalidCredentials(t *testing.T) {
	srv := mocktest.New(t)
	v, rec, store := newView(t, srv.URL)
	v.Email = mocktest.AdminEmail
	v.Password = "wrong"

	err := v.Submit(context.Background())

	assert.True(t, apiclient.IsStatus(err, http.StatusUnauthorized))
	assert.Equal(t, []string{"Error 401"}, rec.alerts)
	assert.Empty(t, rec.routes)

	_, err = store.Get(context.Background(), session.KeyToken)
	assert.ErrorIs(t, err, session.ErrNotFound)
	_, err = store.Get(context.Background(), session.KeyUser)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestSubmit_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	v, rec, _ := newView(t, url)

	require.Error(t, v.Submit(context.Background()))
	require.Len(t, rec.alerts, 1)
	assert.NotEmpty(t, rec.alerts[0])
	assert.Empty(t, rec.routes)
}
