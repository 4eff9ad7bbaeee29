package api

import (
	"context"
	"net/http"

	"github.com/raphaelsc/ragedb-go/internal/shardservice"
)

func (s *Server) handleAssignNodeType(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	id, err := s.svc.GetOrAssignNodeType(r.Context(), name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"name": name, "id": id})
}

func (s *Server) handleAssignRelationshipType(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	id, err := s.svc.GetOrAssignRelationshipType(r.Context(), name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"name": name, "id": id})
}

func (s *Server) handleListNodeTypes(w http.ResponseWriter, r *http.Request) {
	names, err := s.svc.ListNodeTypeNames(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"names": names})
}

func (s *Server) handleListRelationshipTypes(w http.ResponseWriter, r *http.Request) {
	names, err := s.svc.ListRelationshipTypeNames(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"names": names})
}

func (s *Server) handleGetNodeTypeID(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	id, ok, err := s.svc.LookupNodeTypeID(r.Context(), name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if !ok {
		s.writeError(w, r, shardservice.ErrTypeNotFound)
		return
	}
	writeJSON(w, http.StatusOK, s.nodeTypeSummary(r.Context(), name, id))
}

func (s *Server) handleGetRelationshipTypeID(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	id, ok, err := s.svc.LookupRelationshipTypeID(r.Context(), name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if !ok {
		s.writeError(w, r, shardservice.ErrTypeNotFound)
		return
	}
	writeJSON(w, http.StatusOK, s.relationshipTypeSummary(r.Context(), name, id))
}

func (s *Server) nodeTypeSummary(ctx context.Context, name string, id uint16) map[string]any {
	count, _ := s.svc.NodeTypeCount(ctx, id)
	capacity, _ := s.svc.NodeTypeCapacity(ctx, id)
	return map[string]any{"name": name, "id": id, "count": count, "capacity": capacity}
}

func (s *Server) relationshipTypeSummary(ctx context.Context, name string, id uint16) map[string]any {
	count, _ := s.svc.RelationshipTypeCount(ctx, id)
	capacity, _ := s.svc.RelationshipTypeCapacity(ctx, id)
	return map[string]any{"name": name, "id": id, "count": count, "capacity": capacity}
}
