package api

import "net/http"

func (s *Server) handleAddNode(w http.ResponseWriter, r *http.Request) {
	typeName := r.PathValue("type")
	key := r.PathValue("key")
	id, err := s.svc.AddNode(r.Context(), typeName, key)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": id})
}

func (s *Server) handleGetNodeID(w http.ResponseWriter, r *http.Request) {
	typeName := r.PathValue("type")
	key := r.PathValue("key")
	id, err := s.svc.GetNodeID(r.Context(), typeName, key)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": id})
}

func (s *Server) handleRemoveNode(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.svc.RemoveNode(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetNodeKey(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	key, err := s.svc.GetNodeKey(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"key": key})
}

func (s *Server) handleNodeOutgoing(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if relType := r.URL.Query().Get("type"); relType != "" {
		ids, err := s.svc.NodeOutgoingByType(r.Context(), id, relType)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"relationships": ids})
		return
	}
	ids, err := s.svc.NodeOutgoing(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"relationships": ids})
}

func (s *Server) handleNodeIncoming(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if relType := r.URL.Query().Get("type"); relType != "" {
		ids, err := s.svc.NodeIncomingByType(r.Context(), id, relType)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"relationships": ids})
		return
	}
	ids, err := s.svc.NodeIncoming(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"relationships": ids})
}
