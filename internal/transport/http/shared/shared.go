// Package shared holds the response helpers every handler uses, so the JSON
// error envelope stays identical across the surface.
package shared

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "vincula/pkg/domain-errors"
)

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// WriteJSON writes v with the given status. Encoding failures are not
// recoverable at this point; the status line has already been sent.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a domain error into the JSON envelope. Field-level
// validation detail rides along; uncoded errors collapse to a generic 500 so
// internals never leak to the subject.
func WriteError(w http.ResponseWriter, err error) {
	var dErr *dErrors.Error
	if !errors.As(err, &dErr) {
		WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error:   string(dErrors.CodeInternal),
			Message: "internal error",
		})
		return
	}
	WriteJSON(w, dErrors.ToHTTPStatus(dErr.Code), ErrorResponse{
		Error:   string(dErr.Code),
		Message: dErr.Message,
		Fields:  dErr.Fields,
	})
}
