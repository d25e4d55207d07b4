// internal/handlers/respond.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/ammerola/pos-be/internal/core/domain"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, kind domain.ErrorKind, message string) {
	respondJSON(w, status, ErrorResponse{Error: message, Kind: kind.String()})
}

// statusForKind maps an error kind to the HTTP status returned to clients
func statusForKind(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindReference:
		return http.StatusUnprocessableEntity
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindInsufficientStock, domain.KindConstraintViolation:
		return http.StatusConflict
	case domain.KindStorageUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondDomainError writes err using its kind. Unknown failures are
// logged and hidden behind a generic message.
func respondDomainError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, msg string, err error) {
	kind := domain.KindOf(err)
	status := statusForKind(kind)

	message := msg
	var de *domain.Error
	if errors.As(err, &de) && de.Msg != "" && kind != domain.KindStorageUnavailable {
		message = de.Msg
	}

	if status >= http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), msg,
			slog.String("kind", kind.String()),
			slog.String("error", err.Error()))
	} else {
		logger.DebugContext(r.Context(), msg,
			slog.String("kind", kind.String()),
			slog.String("error", err.Error()))
	}

	respondError(w, status, kind, message)
}

func badRequest(w http.ResponseWriter, message string) {
	respondError(w, http.StatusBadRequest, domain.KindValidation, message)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// parseTime accepts RFC 3339 timestamps and plain dates. Dates are
// interpreted in loc.
func parseTime(value string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.ParseInLocation(time.DateOnly, value, loc)
}

func queryInt64(r *http.Request, key string) (*int64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
