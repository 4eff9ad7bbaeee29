package shardservice

import (
	"fmt"

	"github.com/raphaelsc/ragedb-go/internal/graphstore"
	"github.com/raphaelsc/ragedb-go/internal/idcodec"
	"github.com/raphaelsc/ragedb-go/internal/peered"
	"github.com/raphaelsc/ragedb-go/internal/propertycatalog"
	"github.com/raphaelsc/ragedb-go/internal/typecatalog"
)

// shard bundles every per-shard store behind one shard index. Its fields
// are unexported: all access goes through Service methods, which run on
// the shard's own goroutine via the Router.
type shard struct {
	id            int
	nodeTypes     *typecatalog.Catalog
	relTypes      *typecatalog.Catalog
	nodes         *graphstore.NodeStore
	relationships *graphstore.RelationshipStore
	nodeProps     *propertycatalog.Catalog
	relProps      *propertycatalog.Catalog
	stats         OperationStats
}

// Service is the engine's single entry point: one Router plus numShards
// independent shards, each with its own type catalogs, identity stores,
// and property catalogs.
type Service struct {
	router    *peered.Router
	shards    []*shard
	numShards int
}

// New builds a Service with numShards shards, starting the Router's
// worker goroutines immediately. numShards must be at least 1 and at most
// idcodec.MaxShard+1.
func New(numShards int) (*Service, error) {
	if numShards < 1 || numShards > idcodec.MaxShard+1 {
		return nil, fmt.Errorf("shardservice: numShards %d out of range [1,%d]", numShards, idcodec.MaxShard+1)
	}

	s := &Service{
		router:    peered.New(numShards),
		shards:    make([]*shard, numShards),
		numShards: numShards,
	}
	for i := 0; i < numShards; i++ {
		primary := i == 0
		nt := typecatalog.New(primary)
		rt := typecatalog.New(primary)
		s.shards[i] = &shard{
			id:            i,
			nodeTypes:     nt,
			relTypes:      rt,
			nodes:         graphstore.NewNodeStore(i, nt),
			relationships: graphstore.NewRelationshipStore(i, rt),
			nodeProps:     propertycatalog.New(),
			relProps:      propertycatalog.New(),
		}
	}
	return s, nil
}

// NumShards returns the shard count the Service was built with.
func (s *Service) NumShards() int { return s.numShards }

// Close shuts down every shard goroutine. No further calls may be made
// after Close returns.
func (s *Service) Close() { s.router.Close() }

// shardFor returns the shard index owning (typeName, key) under the
// bias-free routing hash.
func (s *Service) shardFor(typeName, key string) int {
	return idcodec.Route(typeName, key, s.numShards)
}
