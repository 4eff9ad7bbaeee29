package api

import (
	"encoding/json"
	"net/http"
)

type addRelationshipRequest struct {
	StartID uint64 `json:"start_id"`
	EndID   uint64 `json:"end_id"`
}

func (s *Server) handleAddRelationship(w http.ResponseWriter, r *http.Request) {
	typeName := r.PathValue("type")

	var req addRelationshipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, badRequest("malformed request body: %v", err))
		return
	}

	id, err := s.svc.AddRelationship(r.Context(), typeName, req.StartID, req.EndID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": id})
}

func (s *Server) handleGetRelationship(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	start, end, err := s.svc.GetRelationship(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"start_id": start, "end_id": end})
}

func (s *Server) handleRemoveRelationship(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.svc.RemoveRelationship(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
