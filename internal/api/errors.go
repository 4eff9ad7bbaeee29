package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/raphaelsc/ragedb-go/internal/shardservice"
	"github.com/raphaelsc/ragedb-go/internal/typecatalog"
	"go.uber.org/zap"
)

// ErrKind classifies an API error for the response envelope and for the
// structured log field recorded alongside it.
type ErrKind string

const (
	ErrKindNotFound    ErrKind = "not_found"
	ErrKindConflict    ErrKind = "conflict"
	ErrKindBadRequest  ErrKind = "bad_request"
	ErrKindInternal    ErrKind = "internal"
)

// Error is the JSON envelope every non-2xx response carries.
type Error struct {
	Code    ErrKind `json:"code"`
	Message string  `json:"message"`
}

func (e *Error) Error() string { return e.Message }

// badRequest builds an ErrKindBadRequest error for malformed input.
func badRequest(format string, args ...any) *Error {
	return &Error{Code: ErrKindBadRequest, Message: fmt.Sprintf(format, args...)}
}

// classify maps a shardservice/typecatalog/propertycatalog error to the
// ErrKind and HTTP status it should surface as.
func classify(err error) (ErrKind, int) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case ErrKindNotFound:
			return ErrKindNotFound, http.StatusNotFound
		case ErrKindConflict:
			return ErrKindConflict, http.StatusConflict
		case ErrKindBadRequest:
			return ErrKindBadRequest, http.StatusBadRequest
		default:
			return ErrKindInternal, http.StatusInternalServerError
		}
	}

	switch {
	case errors.Is(err, shardservice.ErrNodeNotFound),
		errors.Is(err, shardservice.ErrRelationshipNotFound),
		errors.Is(err, shardservice.ErrTypeNotFound):
		return ErrKindNotFound, http.StatusNotFound
	case errors.Is(err, typecatalog.ErrConflict):
		return ErrKindConflict, http.StatusConflict
	case errors.Is(err, typecatalog.ErrUnknownType):
		return ErrKindNotFound, http.StatusNotFound
	default:
		return ErrKindInternal, http.StatusInternalServerError
	}
}

// writeError logs err at the single surfacing point for this request and
// writes its classified Error envelope.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind, status := classify(err)
	s.log.Error("request failed",
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
		zap.String("kind", string(kind)),
		zap.Error(err),
	)
	writeJSON(w, status, &Error{Code: kind, Message: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
