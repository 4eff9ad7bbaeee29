package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/raphaelsc/ragedb-go/internal/propertycatalog"
)

func valueJSON(v propertycatalog.Value) any {
	switch v.Kind {
	case propertycatalog.KindBool:
		return v.Bool
	case propertycatalog.KindI64:
		return v.I64
	case propertycatalog.KindF64:
		return v.F64
	case propertycatalog.KindString:
		return v.Str
	case propertycatalog.KindBoolList:
		return v.BoolList
	case propertycatalog.KindI64List:
		return v.I64List
	case propertycatalog.KindF64List:
		return v.F64List
	case propertycatalog.KindStringList:
		return v.StringList
	default:
		return nil
	}
}

func (s *Server) handleGetNodeProperty(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	name := r.PathValue("name")
	v, ok, err := s.svc.GetNodeProperty(r.Context(), id, name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if !ok {
		s.writeError(w, r, badRequestToNotFound(name))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"name": name, "value": valueJSON(v)})
}

func (s *Server) handleSetNodeProperty(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	name := r.PathValue("name")
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeError(w, r, badRequest("reading request body: %v", err))
		return
	}
	ok, err := s.svc.SetNodeProperty(r.Context(), id, name, raw)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if !ok {
		s.writeError(w, r, badRequest("value for %q is not a supported literal or kind mismatch", name))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteNodeProperty(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	name := r.PathValue("name")
	ok, err := s.svc.DeleteNodeProperty(r.Context(), id, name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if !ok {
		s.writeError(w, r, badRequestToNotFound(name))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSetNodeProperties(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var obj map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&obj); err != nil {
		s.writeError(w, r, badRequest("malformed request body: %v", err))
		return
	}
	rejected, err := s.svc.SetNodeProperties(r.Context(), id, obj)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"rejected": rejected})
}

func (s *Server) handleGetRelationshipProperty(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	name := r.PathValue("name")
	v, ok, err := s.svc.GetRelationshipProperty(r.Context(), id, name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if !ok {
		s.writeError(w, r, badRequestToNotFound(name))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"name": name, "value": valueJSON(v)})
}

func (s *Server) handleSetRelationshipProperty(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	name := r.PathValue("name")
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeError(w, r, badRequest("reading request body: %v", err))
		return
	}
	ok, err := s.svc.SetRelationshipProperty(r.Context(), id, name, raw)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if !ok {
		s.writeError(w, r, badRequest("value for %q is not a supported literal or kind mismatch", name))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteRelationshipProperty(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	name := r.PathValue("name")
	ok, err := s.svc.DeleteRelationshipProperty(r.Context(), id, name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if !ok {
		s.writeError(w, r, badRequestToNotFound(name))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSetRelationshipProperties(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var obj map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&obj); err != nil {
		s.writeError(w, r, badRequest("malformed request body: %v", err))
		return
	}
	rejected, err := s.svc.SetRelationshipProperties(r.Context(), id, obj)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"rejected": rejected})
}

// badRequestToNotFound reports an unregistered property name as not_found
// rather than bad_request: the request was well-formed, the name just
// doesn't exist on this entity's type.
func badRequestToNotFound(name string) *Error {
	return &Error{Code: ErrKindNotFound, Message: "unregistered property: " + name}
}
