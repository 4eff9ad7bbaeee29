package shardservice

import (
	"context"
	"sync/atomic"

	"github.com/raphaelsc/ragedb-go/internal/idcodec"
)

// AddRelationship creates a relationship of typeName from startID to
// endID. The relationship's identity (and its slot in relTypeName's
// property columns) lives on startID's shard; its outgoing reference is
// attached there too. Its incoming reference is attached on endID's shard,
// which may be a different goroutine entirely — that second attachment is
// dispatched as its own InvokeOn once the relationship's id is known.
func (s *Service) AddRelationship(ctx context.Context, typeName string, startID, endID uint64) (uint64, error) {
	typeID, err := s.GetOrAssignRelationshipType(ctx, typeName)
	if err != nil {
		return 0, err
	}

	startShard, startType, startSlot := idcodec.Unpack(startID)
	v, err := s.router.InvokeOn(ctx, startShard, func(ctx context.Context, sh int) (any, error) {
		st := s.shards[sh]
		if !st.nodes.IsLive(startType, startSlot) {
			return uint64(0), ErrNodeNotFound
		}
		relID, err := st.relationships.Add(typeID, startID, endID)
		if err != nil {
			return uint64(0), err
		}
		st.nodes.AddOutgoing(startType, startSlot, typeID, relID)
		atomic.AddUint64(&st.stats.RelationshipsAdded, 1)
		return relID, nil
	})
	if err != nil {
		return 0, err
	}
	relID := v.(uint64)

	endShard, endType, endSlot := idcodec.Unpack(endID)
	_, err = s.router.InvokeOn(ctx, endShard, func(ctx context.Context, sh int) (any, error) {
		s.shards[sh].nodes.AddIncoming(endType, endSlot, typeID, relID)
		return nil, nil
	})
	if err != nil {
		return 0, err
	}
	return relID, nil
}

// GetRelationship returns the start and end node external ids of
// relationship id.
func (s *Service) GetRelationship(ctx context.Context, id uint64) (startID, endID uint64, err error) {
	shardIdx, typeID, slot := idcodec.Unpack(id)
	v, err := s.router.InvokeOn(ctx, shardIdx, func(ctx context.Context, sh int) (any, error) {
		start, end, ok := s.shards[sh].relationships.Get(typeID, slot)
		if !ok {
			return nil, ErrRelationshipNotFound
		}
		return [2]uint64{start, end}, nil
	})
	if err != nil {
		return 0, 0, err
	}
	pair := v.([2]uint64)
	return pair[0], pair[1], nil
}

// RemoveRelationship deletes relationship id: its identity and properties
// on its owning (starting-node's) shard, its outgoing reference there, and
// its incoming reference on the ending node's shard.
func (s *Service) RemoveRelationship(ctx context.Context, id uint64) error {
	shardIdx, typeID, slot := idcodec.Unpack(id)
	v, err := s.router.InvokeOn(ctx, shardIdx, func(ctx context.Context, sh int) (any, error) {
		st := s.shards[sh]
		start, end, ok := st.relationships.Get(typeID, slot)
		if !ok {
			return nil, ErrRelationshipNotFound
		}
		if !st.relationships.Remove(typeID, slot) {
			return nil, ErrRelationshipNotFound
		}
		st.relProps.DeleteAll(typeID, slot)
		_, startType, startSlot := idcodec.Unpack(start)
		st.nodes.RemoveOutgoing(startType, startSlot, typeID, id)
		atomic.AddUint64(&st.stats.RelationshipsRemoved, 1)
		return end, nil
	})
	if err != nil {
		return err
	}
	end := v.(uint64)

	endShard, endType, endSlot := idcodec.Unpack(end)
	_, err = s.router.InvokeOn(ctx, endShard, func(ctx context.Context, sh int) (any, error) {
		s.shards[sh].nodes.RemoveIncoming(endType, endSlot, typeID, id)
		return nil, nil
	})
	return err
}
