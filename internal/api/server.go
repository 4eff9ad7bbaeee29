package api

import (
	"net/http"

	"github.com/raphaelsc/ragedb-go/internal/shardservice"
	"go.uber.org/zap"
)

// Server adapts a shardservice.Service to HTTP.
type Server struct {
	svc *shardservice.Service
	log *zap.Logger
	mux *http.ServeMux
}

// NewServer builds a Server around svc, routing every endpoint documented
// in this package's doc comment.
func NewServer(svc *shardservice.Service, log *zap.Logger) *Server {
	s := &Server{svc: svc, log: log, mux: http.NewServeMux()}
	s.routes()
	return s
}

// ServeHTTP makes Server an http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.mux.ServeHTTP(w, r) }

func (s *Server) routes() {
	s.mux.HandleFunc("GET /health", s.handleHealth)

	s.mux.HandleFunc("POST /types/nodes/{name}", s.handleAssignNodeType)
	s.mux.HandleFunc("POST /types/relationships/{name}", s.handleAssignRelationshipType)
	s.mux.HandleFunc("GET /types/nodes", s.handleListNodeTypes)
	s.mux.HandleFunc("GET /types/relationships", s.handleListRelationshipTypes)
	s.mux.HandleFunc("GET /types/nodes/{name}", s.handleGetNodeTypeID)
	s.mux.HandleFunc("GET /types/relationships/{name}", s.handleGetRelationshipTypeID)

	s.mux.HandleFunc("POST /nodes/{type}/{key}", s.handleAddNode)
	s.mux.HandleFunc("GET /nodes/{type}/{key}", s.handleGetNodeID)
	s.mux.HandleFunc("DELETE /nodes/id/{id}", s.handleRemoveNode)
	s.mux.HandleFunc("GET /nodes/id/{id}/key", s.handleGetNodeKey)
	s.mux.HandleFunc("GET /nodes/id/{id}/outgoing", s.handleNodeOutgoing)
	s.mux.HandleFunc("GET /nodes/id/{id}/incoming", s.handleNodeIncoming)

	s.mux.HandleFunc("POST /relationships/{type}", s.handleAddRelationship)
	s.mux.HandleFunc("GET /relationships/id/{id}", s.handleGetRelationship)
	s.mux.HandleFunc("DELETE /relationships/id/{id}", s.handleRemoveRelationship)

	s.mux.HandleFunc("GET /nodes/id/{id}/properties/{name}", s.handleGetNodeProperty)
	s.mux.HandleFunc("PUT /nodes/id/{id}/properties/{name}", s.handleSetNodeProperty)
	s.mux.HandleFunc("DELETE /nodes/id/{id}/properties/{name}", s.handleDeleteNodeProperty)
	s.mux.HandleFunc("PUT /nodes/id/{id}/properties", s.handleSetNodeProperties)

	s.mux.HandleFunc("GET /relationships/id/{id}/properties/{name}", s.handleGetRelationshipProperty)
	s.mux.HandleFunc("PUT /relationships/id/{id}/properties/{name}", s.handleSetRelationshipProperty)
	s.mux.HandleFunc("DELETE /relationships/id/{id}/properties/{name}", s.handleDeleteRelationshipProperty)
	s.mux.HandleFunc("PUT /relationships/id/{id}/properties", s.handleSetRelationshipProperties)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"num_shards": s.svc.NumShards(),
	})
}
