package respond

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/rgalvan/jobtracker-api/internal/domain"
)

// ErrorBody is the envelope every error response uses: a timestamp, the
// HTTP status, and either a single message or a field-error map.
type ErrorBody struct {
	Timestamp string            `json:"timestamp"`
	Status    int               `json:"status"`
	Error     string            `json:"error,omitempty"`
	Errors    map[string]string `json:"errors,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			log.Printf("ERROR [respond.JSON] failed to encode response: %v", err)
		}
	}
}

func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorBody{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Status:    status,
		Error:     message,
	})
}

// FieldErrors writes a 400 with per-field validation messages.
func FieldErrors(w http.ResponseWriter, fields map[string]string) {
	JSON(w, http.StatusBadRequest, ErrorBody{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Status:    http.StatusBadRequest,
		Errors:    fields,
	})
}

// DomainError maps known domain errors to their HTTP status. Anything
// unrecognized is logged and reported as a generic 500 so internals
// never leak to the client.
func DomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		Error(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrNotAuthenticated):
		Error(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrUserNotFound):
		Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrApplicationNotFound):
		Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrNotOwner):
		Error(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrInvalidStatus):
		Error(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("ERROR [respond.DomainError] unhandled error: %v", err)
		Error(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
