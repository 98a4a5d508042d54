package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/taskmate/taskmate-go/internal/service"
)

// maxBodySize caps request bodies; all request payloads here are small JSON
// documents.
const maxBodySize = 1 << 20 // 1MB

var errBodyTooLarge = errors.New("request body too large")

// decodeJSON decodes the request body into v with a size cap applied.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return errBodyTooLarge
		}
		return err
	}
	return nil
}

// writeBodyError maps a decodeJSON failure to the right status.
func writeBodyError(w http.ResponseWriter, err error) {
	if errors.Is(err, errBodyTooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, messageResponse("request body too large"))
		return
	}
	writeJSON(w, http.StatusBadRequest, messageResponse("invalid request body"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// messageResponse is the uniform envelope for error and status messages.
func messageResponse(msg string) map[string]string {
	return map[string]string{"message": msg}
}

// isValidationError reports whether err is a missing-field error from any
// service.
func isValidationError(err error) bool {
	return errors.Is(err, service.ErrUsernameRequired) ||
		errors.Is(err, service.ErrEmailRequired) ||
		errors.Is(err, service.ErrPasswordRequired) ||
		errors.Is(err, service.ErrTitleRequired) ||
		errors.Is(err, service.ErrDescriptionRequired) ||
		errors.Is(err, service.ErrNameRequired)
}
