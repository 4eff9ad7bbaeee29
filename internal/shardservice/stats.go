package shardservice

import "sync/atomic"

// OperationStats tracks cumulative operation counts for one shard.
// Counters are updated atomically so a call to Stats never needs to wait
// on that shard's goroutine.
type OperationStats struct {
	NodesAdded           uint64
	NodesRemoved         uint64
	RelationshipsAdded   uint64
	RelationshipsRemoved uint64
	PropertyWrites       uint64
	PropertyReads        uint64
}

// snapshot returns an immutable copy of s, safe to retain after the shard
// continues mutating the live counters.
func (s *OperationStats) snapshot() OperationStats {
	return OperationStats{
		NodesAdded:           atomic.LoadUint64(&s.NodesAdded),
		NodesRemoved:         atomic.LoadUint64(&s.NodesRemoved),
		RelationshipsAdded:   atomic.LoadUint64(&s.RelationshipsAdded),
		RelationshipsRemoved: atomic.LoadUint64(&s.RelationshipsRemoved),
		PropertyWrites:       atomic.LoadUint64(&s.PropertyWrites),
		PropertyReads:        atomic.LoadUint64(&s.PropertyReads),
	}
}

// Stats returns a point-in-time snapshot of shard shardIdx's operation
// counters.
func (s *Service) Stats(shardIdx int) OperationStats {
	return s.shards[shardIdx].stats.snapshot()
}
