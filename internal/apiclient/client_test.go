package apiclient

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/raphaelsc/ragedb-go/internal/api"
	"github.com/raphaelsc/ragedb-go/internal/shardservice"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	svc, err := shardservice.New(4)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(svc.Close)

	srv := httptest.NewServer(api.NewServer(svc, zap.NewNop()))
	t.Cleanup(srv.Close)
	return New(srv.URL)
}

func TestClientAddAndFetchNode(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	var created map[string]any
	if err := c.Post(ctx, "/nodes/Person/alice", nil, &created); err != nil {
		t.Fatal(err)
	}
	if created["id"] == nil {
		t.Fatal("expected id in response")
	}

	var fetched map[string]any
	if err := c.Get(ctx, "/nodes/Person/alice", &fetched); err != nil {
		t.Fatal(err)
	}
	if fetched["id"] != created["id"] {
		t.Fatalf("fetched id %v != created id %v", fetched["id"], created["id"])
	}
}

func TestClientGetMissingNodeReturnsStatusError(t *testing.T) {
	c := newTestClient(t)
	err := c.Get(context.Background(), "/nodes/Person/missing", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	statusErr, ok := err.(*StatusError)
	if !ok {
		t.Fatalf("err = %T, want *StatusError", err)
	}
	if statusErr.Status != 404 {
		t.Fatalf("status = %d, want 404", statusErr.Status)
	}
}

func TestClientSetAndGetPropertyRoundTrip(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	var created map[string]any
	if err := c.Post(ctx, "/nodes/Person/alice", nil, &created); err != nil {
		t.Fatal(err)
	}
	id := int64(created["id"].(float64))
	path := fmt.Sprintf("/nodes/id/%d/properties/age", id)

	if err := c.Put(ctx, path, 30, nil); err != nil {
		t.Fatal(err)
	}

	var prop map[string]any
	if err := c.Get(ctx, path, &prop); err != nil {
		t.Fatal(err)
	}
	if prop["value"].(float64) != 30 {
		t.Fatalf("value = %v, want 30", prop["value"])
	}
}

func TestClientAddRelationshipAndRemoveNode(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	var a, b map[string]any
	if err := c.Post(ctx, "/nodes/Person/alice", nil, &a); err != nil {
		t.Fatal(err)
	}
	if err := c.Post(ctx, "/nodes/Person/bob", nil, &b); err != nil {
		t.Fatal(err)
	}

	var rel map[string]any
	body := map[string]any{"start_id": a["id"], "end_id": b["id"]}
	if err := c.Post(ctx, "/relationships/KNOWS", body, &rel); err != nil {
		t.Fatal(err)
	}

	relID := int64(rel["id"].(float64))
	if err := c.Delete(ctx, fmt.Sprintf("/relationships/id/%d", relID), nil); err != nil {
		t.Fatal(err)
	}

	aID := int64(a["id"].(float64))
	if err := c.Delete(ctx, fmt.Sprintf("/nodes/id/%d", aID), nil); err != nil {
		t.Fatal(err)
	}
	if err := c.Get(ctx, fmt.Sprintf("/nodes/id/%d/key", aID), nil); err == nil {
		t.Fatal("expected error fetching key of removed node")
	}
}
