package response

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Error is the body of every failed request.
type Error struct {
	Message   string `json:"message"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

// Envelope wraps a single record as {"data": ...}.
type Envelope struct {
	Data any `json:"data"`
}

// Rows is the paged-list shape {"data": {"count": n, "rows": [...]}}.
type Rows struct {
	Count int `json:"count"`
	Rows  any `json:"rows"`
}

// JSON writes v as the response body with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Data writes {"data": v}.
func Data(w http.ResponseWriter, status int, v any) {
	JSON(w, status, Envelope{Data: v})
}

// RowList writes {"data": {"count": n, "rows": rows}}.
func RowList(w http.ResponseWriter, status int, rows any, count int) {
	JSON(w, status, Envelope{Data: Rows{Count: count, Rows: rows}})
}

// NoContent writes a 204 No Content response.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Err writes {"message": ...} with the given status code.
func Err(w http.ResponseWriter, status int, message, requestID string) {
	JSON(w, status, Error{Message: message, RequestID: requestID})
}

// ErrWithDetails writes an error response with additional details.
func ErrWithDetails(w http.ResponseWriter, status int, message string, details any, requestID string) {
	JSON(w, status, Error{Message: message, Details: details, RequestID: requestID})
}
