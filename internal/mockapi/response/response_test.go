package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/negociacion/admin/internal/mockapi/response"
)

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestData_WrapsValue(t *testing.T) {
	w := httptest.NewRecorder()

	response.Data(w, http.StatusCreated, map[string]string{"nombre": "Acme"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, map[string]any{"data": map[string]any{"nombre": "Acme"}}, decode(t, w))
}

func TestRowList_WritesCountAndRows(t *testing.T) {
	w := httptest.NewRecorder()

	response.RowList(w, http.StatusOK, []int{1, 2}, 2)

	body := decode(t, w)
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(2), data["count"])
	assert.Equal(t, []any{float64(1), float64(2)}, data["rows"])
}

func TestErr_OmitsEmptyDetails(t *testing.T) {
	w := httptest.NewRecorder()

	response.Err(w, http.StatusNotFound, "Cliente no encontrado", "req-1")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, map[string]any{"message": "Cliente no encontrado", "requestId": "req-1"}, decode(t, w))
}

func TestErrWithDetails(t *testing.T) {
	w := httptest.NewRecorder()

	response.ErrWithDetails(w, http.StatusBadRequest, "Input validation failed",
		[]map[string]string{{"field": "nombre", "message": "nombre is required"}}, "")

	body := decode(t, w)
	assert.Equal(t, "Input validation failed", body["message"])
	assert.NotContains(t, body, "requestId")
	assert.Len(t, body["details"], 1)
}

func TestNoContent(t *testing.T) {
	w := httptest.NewRecorder()

	response.NoContent(w)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())
}
