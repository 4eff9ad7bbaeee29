package shardservice

import (
	"context"
	"testing"
)

func TestStatsCountNodeAndRelationshipOps(t *testing.T) {
	svc, err := New(4)
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
	if _, err := svc.AddRelationship(ctx, "KNOWS", aliceID, bobID); err != nil {
		t.Fatal(err)
	}

	var totalNodesAdded, totalRelsAdded uint64
	for i := 0; i < svc.NumShards(); i++ {
		st := svc.Stats(i)
		totalNodesAdded += st.NodesAdded
		totalRelsAdded += st.RelationshipsAdded
	}
	if totalNodesAdded != 2 {
		t.Fatalf("total NodesAdded = %d, want 2", totalNodesAdded)
	}
	if totalRelsAdded != 1 {
		t.Fatalf("total RelationshipsAdded = %d, want 1", totalRelsAdded)
	}
}
