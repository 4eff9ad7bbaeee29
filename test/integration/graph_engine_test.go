// Package integration exercises a running ragedbd instance end to end,
// through the same HTTP surface a real client would use, rather than
// calling shardservice directly.
package integration

import (
	"context"
	"fmt"
	"net/http/httptest"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/raphaelsc/ragedb-go/internal/api"
	"github.com/raphaelsc/ragedb-go/internal/apiclient"
	"github.com/raphaelsc/ragedb-go/internal/shardservice"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestEngine starts a shardservice.Service behind an httptest server and
// returns an apiclient.Client pointed at it, torn down at test end.
func newTestEngine(t *testing.T, numShards int) *apiclient.Client {
	t.Helper()
	svc, err := shardservice.New(numShards)
	require.NoError(t, err)
	t.Cleanup(svc.Close)

	srv := httptest.NewServer(api.NewServer(svc, zap.NewNop()))
	t.Cleanup(srv.Close)
	return apiclient.New(srv.URL)
}

func mustNodeID(t *testing.T, c *apiclient.Client, ctx context.Context, typeName, key string) int64 {
	t.Helper()
	var created map[string]any
	require.NoError(t, c.Post(ctx, fmt.Sprintf("/nodes/%s/%s", typeName, key), nil, &created))
	return int64(created["id"].(float64))
}

func TestCreateAndFetchNodesAcrossShards(t *testing.T) {
	c := newTestEngine(t, 4)
	ctx := context.Background()

	keys := []string{"alice", "bob", "carol", "dave", "erin", "frank", "grace", "heidi"}
	ids := make(map[string]int64, len(keys))
	for _, k := range keys {
		ids[k] = mustNodeID(t, c, ctx, "Person", k)
	}

	for _, k := range keys {
		var fetched map[string]any
		require.NoError(t, c.Get(ctx, fmt.Sprintf("/nodes/Person/%s", k), &fetched))
		require.Equal(t, ids[k], int64(fetched["id"].(float64)), "key %s", k)
	}
}

func TestRelationshipAdjacencyAcrossShards(t *testing.T) {
	c := newTestEngine(t, 4)
	ctx := context.Background()

	alice := mustNodeID(t, c, ctx, "Person", "alice")
	bob := mustNodeID(t, c, ctx, "Person", "bob")
	carol := mustNodeID(t, c, ctx, "Person", "carol")

	for _, end := range []int64{bob, carol} {
		var rel map[string]any
		body := map[string]any{"start_id": alice, "end_id": end}
		require.NoError(t, c.Post(ctx, "/relationships/KNOWS", body, &rel))
	}

	var out map[string]any
	require.NoError(t, c.Get(ctx, fmt.Sprintf("/nodes/id/%d/outgoing", alice), &out))
	require.Len(t, out["relationships"].([]any), 2)

	var in map[string]any
	require.NoError(t, c.Get(ctx, fmt.Sprintf("/nodes/id/%d/incoming", bob), &in))
	require.Len(t, in["relationships"].([]any), 1)
}

func TestPropertyRoundTripAllKinds(t *testing.T) {
	c := newTestEngine(t, 2)
	ctx := context.Background()
	alice := mustNodeID(t, c, ctx, "Person", "alice")

	props := map[string]any{
		"age":     30,
		"height":  1.78,
		"active":  true,
		"name":    "Alice",
		"scores":  []any{1, 2, 3},
		"flags":   []any{true, false},
		"weights": []any{1.5, 2.5},
		"tags":    []any{"a", "b"},
	}
	for name, value := range props {
		path := fmt.Sprintf("/nodes/id/%d/properties/%s", alice, name)
		require.NoError(t, c.Put(ctx, path, value, nil), "set %s", name)
	}

	for name := range props {
		var prop map[string]any
		path := fmt.Sprintf("/nodes/id/%d/properties/%s", alice, name)
		require.NoError(t, c.Get(ctx, path, &prop), "get %s", name)
	}
}

func TestDeleteRelationshipAndNodeCleansAdjacency(t *testing.T) {
	c := newTestEngine(t, 3)
	ctx := context.Background()

	alice := mustNodeID(t, c, ctx, "Person", "alice")
	bob := mustNodeID(t, c, ctx, "Person", "bob")

	var rel map[string]any
	body := map[string]any{"start_id": alice, "end_id": bob}
	require.NoError(t, c.Post(ctx, "/relationships/KNOWS", body, &rel))
	relID := int64(rel["id"].(float64))

	require.NoError(t, c.Delete(ctx, fmt.Sprintf("/relationships/id/%d", relID), nil))

	var out map[string]any
	require.NoError(t, c.Get(ctx, fmt.Sprintf("/nodes/id/%d/outgoing", alice), &out))
	require.Len(t, out["relationships"].([]any), 0)

	require.NoError(t, c.Delete(ctx, fmt.Sprintf("/nodes/id/%d", alice), nil))
	require.Error(t, c.Get(ctx, fmt.Sprintf("/nodes/id/%d/key", alice), nil))
}

// TestVariousKeyPatterns verifies node keys carrying unicode and
// punctuation all round-trip through the HTTP surface unchanged.
func TestVariousKeyPatterns(t *testing.T) {
	c := newTestEngine(t, 4)
	ctx := context.Background()

	keys := []string{
		"simple",
		"with-dash",
		"with_underscore",
		"with.dot",
		"数字",
		"emoji-😀",
	}
	for _, key := range keys {
		require.True(t, utf8.ValidString(key), "test key %q is not valid UTF-8", key)
		id := mustNodeID(t, c, ctx, "Person", key)
		var fetched map[string]any
		require.NoError(t, c.Get(ctx, fmt.Sprintf("/nodes/Person/%s", key), &fetched), "fetch key %q", key)
		require.Equal(t, id, int64(fetched["id"].(float64)), "key %q", key)
	}
}

// TestConcurrentNodeCreation verifies the engine handles concurrent callers
// creating distinct nodes without lost writes or races.
func TestConcurrentNodeCreation(t *testing.T) {
	c := newTestEngine(t, 8)
	ctx := context.Background()

	const numClients = 32
	var wg sync.WaitGroup
	errs := make(chan error, numClients)
	wg.Add(numClients)
	for i := 0; i < numClients; i++ {
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("concurrent-%d", i)
			var created map[string]any
			if err := c.Post(ctx, fmt.Sprintf("/nodes/Person/%s", key), nil, &created); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
