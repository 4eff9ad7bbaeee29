package shardservice

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/raphaelsc/ragedb-go/internal/propertycatalog"
)

func TestAddNodeIdempotentAndRoutesConsistently(t *testing.T) {
	svc, err := New(4)
	if err != nil {
		t.Fatal(err)
	}
	defer svc.Close()
	ctx := context.Background()

	id1, err := svc.AddNode(ctx, "Person", "alice")
	if err != nil {
		t.Fatal(err)
	}
	id2, err := svc.AddNode(ctx, "Person", "alice")
	if err != nil {
		t.Fatal(err)
	}
	if id1 != id2 {
		t.Fatalf("AddNode not idempotent: %d != %d", id1, id2)
	}

	got, err := svc.GetNodeID(ctx, "Person", "alice")
	if err != nil {
		t.Fatal(err)
	}
	if got != id1 {
		t.Fatalf("GetNodeID = %d, want %d", got, id1)
	}
}

func TestGetNodeIDNotFound(t *testing.T) {
	svc, err := New(2)
	if err != nil {
		t.Fatal(err)
	}
	defer svc.Close()

	if _, err := svc.GetNodeID(context.Background(), "Person", "missing"); err != ErrNodeNotFound {
		t.Fatalf("expected ErrNodeNotFound, got %v", err)
	}
}

func TestAddRelationshipAndAdjacency(t *testing.T) {
	svc, err := New(8)
	if err != nil {
		t.Fatal(err)
	}
	defer svc.Close()
	ctx := context.Background()

	aliceID, err := svc.AddNode(ctx, "Person", "alice")
	if err != nil {
		t.Fatal(err)
	}
	bobID, err := svc.AddNode(ctx, "Person", "bob")
	if err != nil {
		t.Fatal(err)
	}

	relID, err := svc.AddRelationship(ctx, "KNOWS", aliceID, bobID)
	if err != nil {
		t.Fatal(err)
	}

	start, end, err := svc.GetRelationship(ctx, relID)
	if err != nil {
		t.Fatal(err)
	}
	if start != aliceID || end != bobID {
		t.Fatalf("GetRelationship = (%d,%d), want (%d,%d)", start, end, aliceID, bobID)
	}

	out, err := svc.NodeOutgoing(ctx, aliceID)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0] != relID {
		t.Fatalf("NodeOutgoing(alice) = %v, want [%d]", out, relID)
	}

	in, err := svc.NodeIncoming(ctx, bobID)
	if err != nil {
		t.Fatal(err)
	}
	if len(in) != 1 || in[0] != relID {
		t.Fatalf("NodeIncoming(bob) = %v, want [%d]", in, relID)
	}
}

func TestRemoveRelationshipClearsAdjacencyBothSides(t *testing.T) {
	svc, err := New(8)
	if err != nil {
		t.Fatal(err)
	}
	defer svc.Close()
	ctx := context.Background()

	aliceID, _ := svc.AddNode(ctx, "Person", "alice")
	bobID, _ := svc.AddNode(ctx, "Person", "bob")
	relID, err := svc.AddRelationship(ctx, "KNOWS", aliceID, bobID)
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.RemoveRelationship(ctx, relID); err != nil {
		t.Fatal(err)
	}

	out, _ := svc.NodeOutgoing(ctx, aliceID)
	if len(out) != 0 {
		t.Fatalf("expected no outgoing after removal, got %v", out)
	}
	in, _ := svc.NodeIncoming(ctx, bobID)
	if len(in) != 0 {
		t.Fatalf("expected no incoming after removal, got %v", in)
	}
	if _, _, err := svc.GetRelationship(ctx, relID); err != ErrRelationshipNotFound {
		t.Fatalf("expected ErrRelationshipNotFound, got %v", err)
	}
}

func TestSetGetNodeProperty(t *testing.T) {
	svc, err := New(4)
	if err != nil {
		t.Fatal(err)
	}
	defer svc.Close()
	ctx := context.Background()

	id, err := svc.AddNode(ctx, "Person", "alice")
	if err != nil {
		t.Fatal(err)
	}

	ok, err := svc.SetNodeProperty(ctx, id, "age", json.RawMessage(`30`))
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("SetNodeProperty returned ok=false")
	}

	v, ok, err := svc.GetNodeProperty(ctx, id, "age")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || v.I64 != 30 {
		t.Fatalf("GetNodeProperty = (%+v,%v), want (30,true)", v, ok)
	}
}

func TestSetNodePropertiesBulkAndReject(t *testing.T) {
	svc, err := New(4)
	if err != nil {
		t.Fatal(err)
	}
	defer svc.Close()
	ctx := context.Background()

	id, err := svc.AddNode(ctx, "Person", "alice")
	if err != nil {
		t.Fatal(err)
	}

	rejected, err := svc.SetNodeProperties(ctx, id, map[string]json.RawMessage{
		"name": json.RawMessage(`"alice"`),
		"bad":  json.RawMessage(`{"x":1}`),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(rejected) != 1 || rejected[0] != "bad" {
		t.Fatalf("expected ['bad'] rejected, got %v", rejected)
	}

	v, ok, err := svc.GetNodeProperty(ctx, id, "name")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || v.Str != "alice" {
		t.Fatalf("GetNodeProperty(name) = (%+v,%v)", v, ok)
	}
}

func TestDeleteNodePropertyWritesTombstone(t *testing.T) {
	svc, err := New(4)
	if err != nil {
		t.Fatal(err)
	}
	defer svc.Close()
	ctx := context.Background()

	id, _ := svc.AddNode(ctx, "Person", "alice")
	svc.SetNodeProperty(ctx, id, "name", json.RawMessage(`"alice"`))

	ok, err := svc.DeleteNodeProperty(ctx, id, "name")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("DeleteNodeProperty returned ok=false")
	}

	v, ok, err := svc.GetNodeProperty(ctx, id, "name")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || v.Str != "" {
		t.Fatalf("expected tombstone, got (%+v,%v)", v, ok)
	}
}

func TestRemoveNodeMakesKeyUnresolvable(t *testing.T) {
	svc, err := New(4)
	if err != nil {
		t.Fatal(err)
	}
	defer svc.Close()
	ctx := context.Background()

	id, _ := svc.AddNode(ctx, "Person", "alice")
	svc.SetNodeProperty(ctx, id, "name", json.RawMessage(`"alice"`))

	if err := svc.RemoveNode(ctx, id); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.GetNodeKey(ctx, id); err != ErrNodeNotFound {
		t.Fatalf("expected ErrNodeNotFound, got %v", err)
	}
}

func TestAddNodePropertySchemaExplicit(t *testing.T) {
	svc, err := New(2)
	if err != nil {
		t.Fatal(err)
	}
	defer svc.Close()
	ctx := context.Background()

	if err := svc.AddNodePropertySchema(ctx, "Person", "age", propertycatalog.KindI64); err != nil {
		t.Fatal(err)
	}

	id, err := svc.AddNode(ctx, "Person", "alice")
	if err != nil {
		t.Fatal(err)
	}
	v, ok, err := svc.GetNodeProperty(ctx, id, "age")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected schema-registered property visible before any write")
	}
	if !propertycatalog.IsSentinel(v) {
		t.Fatalf("expected sentinel for never-written property, got %+v", v)
	}
}
