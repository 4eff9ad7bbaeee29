package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/raphaelsc/ragedb-go/internal/shardservice"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	svc, err := shardservice.New(4)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(svc.Close)
	return NewServer(svc, zap.NewNop())
}

func doRequest(s *Server, method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(s, "GET", "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestAddAndFetchNode(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, "POST", "/nodes/Person/alice", nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	var created map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	if created["id"] == nil {
		t.Fatal("expected id in response")
	}

	rec = doRequest(s, "GET", "/nodes/Person/alice", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var fetched map[string]any
	json.Unmarshal(rec.Body.Bytes(), &fetched)
	if fetched["id"] != created["id"] {
		t.Fatalf("fetched id %v != created id %v", fetched["id"], created["id"])
	}
}

func TestGetMissingNodeReturnsNotFound(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(s, "GET", "/nodes/Person/missing", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var body Error
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Code != ErrKindNotFound {
		t.Fatalf("code = %v, want not_found", body.Code)
	}
}

func TestSetAndGetNodeProperty(t *testing.T) {
	s := newTestServer(t)
	doRequest(s, "POST", "/nodes/Person/alice", nil)

	rec := doRequest(s, "GET", "/nodes/Person/alice", nil)
	var node map[string]any
	json.Unmarshal(rec.Body.Bytes(), &node)
	id := int64(node["id"].(float64))

	rec = doRequest(s, "PUT", fmt.Sprintf("/nodes/id/%d/properties/age", id), []byte("30"))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(s, "GET", fmt.Sprintf("/nodes/id/%d/properties/age", id), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var prop map[string]any
	json.Unmarshal(rec.Body.Bytes(), &prop)
	if prop["value"].(float64) != 30 {
		t.Fatalf("value = %v, want 30", prop["value"])
	}
}

func TestListAndGetNodeType(t *testing.T) {
	s := newTestServer(t)
	doRequest(s, "POST", "/nodes/Person/alice", nil)

	rec := doRequest(s, "GET", "/types/nodes", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var listed map[string]any
	json.Unmarshal(rec.Body.Bytes(), &listed)
	names := listed["names"].([]any)
	found := false
	for _, n := range names {
		if n == "Person" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected Person in %v", names)
	}

	rec = doRequest(s, "GET", "/types/nodes/Person", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var summary map[string]any
	json.Unmarshal(rec.Body.Bytes(), &summary)
	if summary["count"].(float64) != 1 {
		t.Fatalf("count = %v, want 1", summary["count"])
	}

	rec = doRequest(s, "GET", "/types/nodes/NoSuchType", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestAddRelationshipEndToEnd(t *testing.T) {
	s := newTestServer(t)
	recA := doRequest(s, "POST", "/nodes/Person/alice", nil)
	recB := doRequest(s, "POST", "/nodes/Person/bob", nil)

	var a, b map[string]any
	json.Unmarshal(recA.Body.Bytes(), &a)
	json.Unmarshal(recB.Body.Bytes(), &b)

	body, _ := json.Marshal(map[string]any{"start_id": a["id"], "end_id": b["id"]})
	rec := doRequest(s, "POST", "/relationships/KNOWS", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var rel map[string]any
	json.Unmarshal(rec.Body.Bytes(), &rel)

	aID := int64(a["id"].(float64))
	rec = doRequest(s, "GET", fmt.Sprintf("/nodes/id/%d/outgoing", aID), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var out map[string]any
	json.Unmarshal(rec.Body.Bytes(), &out)
	ids := out["relationships"].([]any)
	if len(ids) != 1 {
		t.Fatalf("expected one outgoing relationship, got %v", ids)
	}
}
