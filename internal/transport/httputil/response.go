// Package httputil holds the JSON response helpers shared by the REST
// handlers and the HTTP middleware.
package httputil

import (
	"encoding/json"
	"net/http"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

// ErrorBody is the uniform error payload: {"status": 404, "message": "Not found"}.
// Errors is only present for validation failures.
type ErrorBody struct {
	Status  int           `json:"status"`
	Message string        `json:"message"`
	Errors  []FieldDetail `json:"errors,omitempty"`
}

// FieldDetail is one field violation inside ErrorBody.
type FieldDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// WriteJSON writes v as JSON with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// WriteError writes the uniform error body.
func WriteError(w http.ResponseWriter, status int, message string) {
	_ = WriteJSON(w, status, ErrorBody{Status: status, Message: message})
}

// WriteValidationError writes a 400 whose message joins every violation
// and whose errors list carries them individually.
func WriteValidationError(w http.ResponseWriter, verr *domain.ValidationError) {
	details := make([]FieldDetail, len(verr.Errors))
	for i, fe := range verr.Errors {
		details[i] = FieldDetail{Field: fe.Field, Message: fe.String()}
	}
	_ = WriteJSON(w, http.StatusBadRequest, ErrorBody{
		Status:  http.StatusBadRequest,
		Message: verr.Messages(),
		Errors:  details,
	})
}
