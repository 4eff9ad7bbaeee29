package shardservice

import (
	"context"
	"sync/atomic"

	"github.com/raphaelsc/ragedb-go/internal/idcodec"
)

// AddNode creates a propertyless node of typeName under key, assigning
// typeName a type id on first use, and returns its external id. Calling it
// again with the same (typeName, key) returns the existing id.
func (s *Service) AddNode(ctx context.Context, typeName, key string) (uint64, error) {
	typeID, err := s.GetOrAssignNodeType(ctx, typeName)
	if err != nil {
		return 0, err
	}

	shardIdx := s.shardFor(typeName, key)
	v, err := s.router.InvokeOn(ctx, shardIdx, func(ctx context.Context, sh int) (any, error) {
		st := s.shards[sh]
		id, err := st.nodes.AddEmpty(typeID, key)
		if err == nil {
			atomic.AddUint64(&st.stats.NodesAdded, 1)
		}
		return id, err
	})
	if err != nil {
		return 0, err
	}
	return v.(uint64), nil
}

// GetNodeID returns the external id registered for (typeName, key).
func (s *Service) GetNodeID(ctx context.Context, typeName, key string) (uint64, error) {
	shardIdx := s.shardFor(typeName, key)
	v, err := s.router.InvokeOn(ctx, shardIdx, func(ctx context.Context, sh int) (any, error) {
		typeID, ok := lookupNodeType(s.shards[sh], typeName)
		if !ok {
			return uint64(0), ErrNodeNotFound
		}
		id, ok := s.shards[sh].nodes.GetID(typeID, key)
		if !ok {
			return uint64(0), ErrNodeNotFound
		}
		return id, nil
	})
	if err != nil {
		return 0, err
	}
	return v.(uint64), nil
}

// ContainsNode reports whether (typeName, key) names a live node.
func (s *Service) ContainsNode(ctx context.Context, typeName, key string) (bool, error) {
	_, err := s.GetNodeID(ctx, typeName, key)
	if err == ErrNodeNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// RemoveNode deletes the node addressed by id: its identity, its
// properties, and its adjacency lists on this shard. It does not remove
// relationships that reference id — callers should remove those first.
func (s *Service) RemoveNode(ctx context.Context, id uint64) error {
	shardIdx, typeID, slot := idcodec.Unpack(id)
	_, err := s.router.InvokeOn(ctx, shardIdx, func(ctx context.Context, sh int) (any, error) {
		st := s.shards[sh]
		if !st.nodes.Remove(typeID, slot) {
			return nil, ErrNodeNotFound
		}
		st.nodeProps.DeleteAll(typeID, slot)
		atomic.AddUint64(&st.stats.NodesRemoved, 1)
		return nil, nil
	})
	return err
}

// GetNodeKey returns the key a node id was created under.
func (s *Service) GetNodeKey(ctx context.Context, id uint64) (string, error) {
	shardIdx, typeID, slot := idcodec.Unpack(id)
	v, err := s.router.InvokeOn(ctx, shardIdx, func(ctx context.Context, sh int) (any, error) {
		key, ok := s.shards[sh].nodes.GetKey(typeID, slot)
		if !ok {
			return "", ErrNodeNotFound
		}
		return key, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// NodeOutgoing returns every outgoing relationship id of node id, across
// all relationship types.
func (s *Service) NodeOutgoing(ctx context.Context, id uint64) ([]uint64, error) {
	shardIdx, typeID, slot := idcodec.Unpack(id)
	v, err := s.router.InvokeOn(ctx, shardIdx, func(ctx context.Context, sh int) (any, error) {
		return s.shards[sh].nodes.Outgoing(typeID, slot), nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]uint64), nil
}

// NodeIncoming returns every incoming relationship id of node id, across
// all relationship types.
func (s *Service) NodeIncoming(ctx context.Context, id uint64) ([]uint64, error) {
	shardIdx, typeID, slot := idcodec.Unpack(id)
	v, err := s.router.InvokeOn(ctx, shardIdx, func(ctx context.Context, sh int) (any, error) {
		return s.shards[sh].nodes.Incoming(typeID, slot), nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]uint64), nil
}

// NodeOutgoingByType returns node id's outgoing relationship ids of
// relationship type relTypeName.
func (s *Service) NodeOutgoingByType(ctx context.Context, id uint64, relTypeName string) ([]uint64, error) {
	shardIdx, typeID, slot := idcodec.Unpack(id)
	v, err := s.router.InvokeOn(ctx, shardIdx, func(ctx context.Context, sh int) (any, error) {
		relTypeID, ok := lookupRelType(s.shards[sh], relTypeName)
		if !ok {
			return []uint64(nil), nil
		}
		return s.shards[sh].nodes.OutgoingByType(typeID, slot, relTypeID), nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]uint64), nil
}

// NodeIncomingByType returns node id's incoming relationship ids of
// relationship type relTypeName.
func (s *Service) NodeIncomingByType(ctx context.Context, id uint64, relTypeName string) ([]uint64, error) {
	shardIdx, typeID, slot := idcodec.Unpack(id)
	v, err := s.router.InvokeOn(ctx, shardIdx, func(ctx context.Context, sh int) (any, error) {
		relTypeID, ok := lookupRelType(s.shards[sh], relTypeName)
		if !ok {
			return []uint64(nil), nil
		}
		return s.shards[sh].nodes.IncomingByType(typeID, slot, relTypeID), nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]uint64), nil
}
