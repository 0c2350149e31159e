package apiclient_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/negociacion/admin/internal/apiclient"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

type widget struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func TestFetch_DecodesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/widgets/1", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`{"id":1,"name":"gear"}`))
	}))
	defer srv.Close()

	c := apiclient.New(srv.URL)
	got, err := apiclient.Fetch[widget](context.Background(), c, "/api/widgets/1")

	require.NoError(t, err)
	assert.Equal(t, widget{ID: 1, Name: "gear"}, got)
}

func TestFetch_TrailingSlashBaseURL(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
	}))
	defer srv.Close()

	c := apiclient.New(srv.URL + "/")
	_, err := apiclient.Fetch[widget](context.Background(), c, "/api/widgets")

	require.NoError(t, err)
	assert.Equal(t, "/api/widgets", path)
}

func TestFetch_NonSuccessStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "bad request", status: http.StatusBadRequest},
		{name: "not found", status: http.StatusNotFound},
		{name: "server error", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"message":"ignored"}`))
			}))
			defer srv.Close()

			c := apiclient.New(srv.URL)
			_, err := apiclient.Fetch[widget](context.Background(), c, "/api/widgets")

			require.Error(t, err)
			var httpErr *apiclient.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, tt.status, httpErr.StatusCode)
			assert.True(t, apiclient.IsStatus(err, tt.status))
			assert.Contains(t, err.Error(), "Error ")
		})
	}
}

func TestFetch_EmptyBodyYieldsZeroValue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := apiclient.New(srv.URL)
	got, err := apiclient.Fetch[*widget](context.Background(), c, "/api/widgets/1", apiclient.Method(http.MethodDelete))

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFetch_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := apiclient.New(srv.URL)
	_, err := apiclient.Fetch[widget](context.Background(), c, "/api/widgets")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding response")
}

func TestFetch_JSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@a.com", body["email"])
		_, _ = w.Write([]byte(`{"id":3,"name":"ok"}`))
	}))
	defer srv.Close()

	c := apiclient.New(srv.URL)
	got, err := apiclient.Fetch[widget](context.Background(), c, "/api/login",
		apiclient.Method(http.MethodPost),
		apiclient.JSONBody(map[string]string{"email": "a@a.com"}),
	)

	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ID)
}

func TestFetch_HeaderPrecedence(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
	}))
	defer srv.Close()

	c := apiclient.New(srv.URL,
		apiclient.WithHeader("Accept-Language", "es"),
		apiclient.WithHeader("X-Client", "default"),
	)
	err := c.Do(context.Background(), "/api/widgets",
		apiclient.Header("X-Client", "override"),
		apiclient.Header("Content-Type", "text/plain"),
	)

	require.NoError(t, err)
	assert.Equal(t, "es", got.Get("Accept-Language"))
	assert.Equal(t, "override", got.Get("X-Client"))
	assert.Equal(t, "text/plain", got.Get("Content-Type"))
}

func TestFetch_RequestIDGenerated(t *testing.T) {
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get(apiclient.RequestIDHeader)
	}))
	defer srv.Close()

	c := apiclient.New(srv.URL)
	require.NoError(t, c.Do(context.Background(), "/"))

	_, err := uuid.Parse(requestID)
	assert.NoError(t, err, "request ID should be a valid UUID")
}

func TestFetch_BearerToken(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		expect string
	}{
		{name: "token present", token: "abc", expect: "Bearer abc"},
		{name: "no session", token: "", expect: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var auth string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				auth = r.Header.Get("Authorization")
			}))
			defer srv.Close()

			c := apiclient.New(srv.URL, apiclient.WithTokenSource(staticToken(tt.token)))
			require.NoError(t, c.Do(context.Background(), "/api/news"))
			assert.Equal(t, tt.expect, auth)
		})
	}
}

func TestFetch_MultipartBody(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Acme", r.FormValue("nombre"))
		assert.Equal(t, "5", r.FormValue("numeroMiembros"))

		file, header, err := r.FormFile("logo")
		require.NoError(t, err)
		defer file.Close()
		content, _ := io.ReadAll(file)
		assert.Equal(t, "logo.png", header.Filename)
		assert.Equal(t, "image/png", header.Header.Get("Content-Type"))
		assert.Equal(t, png, content)

		_, _ = w.Write([]byte(`{"id":7,"name":"Acme"}`))
	}))
	defer srv.Close()

	form := apiclient.NewForm(
		apiclient.Field{Name: "nombre", Value: "Acme"},
		apiclient.Field{Name: "numeroMiembros", Value: "5"},
	)
	form.Attach("logo", &apiclient.Attachment{Filename: "logo.png", Content: png})

	c := apiclient.New(srv.URL)
	got, err := apiclient.Fetch[widget](context.Background(), c, "/api/clients/create",
		apiclient.Method(http.MethodPost),
		apiclient.MultipartBody(form),
	)

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
}

func TestAssetURL(t *testing.T) {
	c := apiclient.New("https://api.example.com/")

	assert.Equal(t, "https://api.example.com/public/logo.png", c.AssetURL("logo.png"))
	assert.Equal(t, "https://api.example.com/public/logo.png", c.AssetURL("/logo.png"))
}
