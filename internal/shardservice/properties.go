package shardservice

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"github.com/raphaelsc/ragedb-go/internal/idcodec"
	"github.com/raphaelsc/ragedb-go/internal/propertycatalog"
)

// GetNodeProperty returns node id's value for name. ok is false if name
// was never registered on the node's type, or if id does not resolve to a
// live node.
func (s *Service) GetNodeProperty(ctx context.Context, id uint64, name string) (propertycatalog.Value, bool, error) {
	return s.getProperty(ctx, id, name,
		func(sh *shard) *propertycatalog.Catalog { return sh.nodeProps },
		func(sh *shard, typeID uint16, slot uint64) bool { return sh.nodes.IsLive(typeID, slot) })
}

// SetNodeProperty assigns a single JSON-literal value to node id's
// property name, inferring and fixing name's kind on first use. It is a
// no-op returning false if id does not resolve to a live node.
func (s *Service) SetNodeProperty(ctx context.Context, id uint64, name string, raw json.RawMessage) (bool, error) {
	return s.setProperty(ctx, id, name, raw,
		func(sh *shard) *propertycatalog.Catalog { return sh.nodeProps },
		func(sh *shard, typeID uint16, slot uint64) bool { return sh.nodes.IsLive(typeID, slot) })
}

// SetNodeProperties bulk-assigns every field of obj onto node id,
// returning the names whose literal didn't coerce to a supported kind or
// conflicted with an existing registration.
func (s *Service) SetNodeProperties(ctx context.Context, id uint64, obj map[string]json.RawMessage) ([]string, error) {
	return s.setProperties(ctx, id, obj,
		func(sh *shard) *propertycatalog.Catalog { return sh.nodeProps },
		func(sh *shard, typeID uint16, slot uint64) bool { return sh.nodes.IsLive(typeID, slot) })
}

// DeleteNodeProperty tombstones node id's value for name.
func (s *Service) DeleteNodeProperty(ctx context.Context, id uint64, name string) (bool, error) {
	return s.deleteProperty(ctx, id, name, func(sh *shard) *propertycatalog.Catalog { return sh.nodeProps })
}

// GetRelationshipProperty is GetNodeProperty for a relationship id.
func (s *Service) GetRelationshipProperty(ctx context.Context, id uint64, name string) (propertycatalog.Value, bool, error) {
	return s.getProperty(ctx, id, name,
		func(sh *shard) *propertycatalog.Catalog { return sh.relProps },
		func(sh *shard, typeID uint16, slot uint64) bool { return sh.relationships.Contains(typeID, slot) })
}

// SetRelationshipProperty is SetNodeProperty for a relationship id.
func (s *Service) SetRelationshipProperty(ctx context.Context, id uint64, name string, raw json.RawMessage) (bool, error) {
	return s.setProperty(ctx, id, name, raw,
		func(sh *shard) *propertycatalog.Catalog { return sh.relProps },
		func(sh *shard, typeID uint16, slot uint64) bool { return sh.relationships.Contains(typeID, slot) })
}

// SetRelationshipProperties is SetNodeProperties for a relationship id.
func (s *Service) SetRelationshipProperties(ctx context.Context, id uint64, obj map[string]json.RawMessage) ([]string, error) {
	return s.setProperties(ctx, id, obj,
		func(sh *shard) *propertycatalog.Catalog { return sh.relProps },
		func(sh *shard, typeID uint16, slot uint64) bool { return sh.relationships.Contains(typeID, slot) })
}

// DeleteRelationshipProperty is DeleteNodeProperty for a relationship id.
func (s *Service) DeleteRelationshipProperty(ctx context.Context, id uint64, name string) (bool, error) {
	return s.deleteProperty(ctx, id, name, func(sh *shard) *propertycatalog.Catalog { return sh.relProps })
}

// AddNodePropertySchema explicitly registers name as a property of node
// type typeName with the given kind, ahead of any value being written.
func (s *Service) AddNodePropertySchema(ctx context.Context, typeName, name string, kind propertycatalog.Kind) error {
	return s.addPropertySchema(ctx, typeName, name, kind, true)
}

// AddRelationshipPropertySchema is AddNodePropertySchema for relationship
// types.
func (s *Service) AddRelationshipPropertySchema(ctx context.Context, typeName, name string, kind propertycatalog.Kind) error {
	return s.addPropertySchema(ctx, typeName, name, kind, false)
}

func (s *Service) addPropertySchema(ctx context.Context, typeName, name string, kind propertycatalog.Kind, isNode bool) error {
	var typeID uint16
	var err error
	if isNode {
		typeID, err = s.GetOrAssignNodeType(ctx, typeName)
	} else {
		typeID, err = s.GetOrAssignRelationshipType(ctx, typeName)
	}
	if err != nil {
		return err
	}

	_, err = s.router.InvokeOnAll(ctx, func(ctx context.Context, sh int) (any, error) {
		st := s.shards[sh]
		if isNode {
			return nil, st.nodeProps.SchemaAdd(typeID, name, kind)
		}
		return nil, st.relProps.SchemaAdd(typeID, name, kind)
	})
	return err
}

// liveCheck reports whether typeID/slot on shard sh currently resolves to a
// live node or relationship, gating property reads and writes against
// stale ids left over from a removed or never-created entity.
type liveCheck func(sh *shard, typeID uint16, slot uint64) bool

func (s *Service) getProperty(ctx context.Context, id uint64, name string, pick func(*shard) *propertycatalog.Catalog, live liveCheck) (propertycatalog.Value, bool, error) {
	shardIdx, typeID, slot := idcodec.Unpack(id)
	v, err := s.router.InvokeOn(ctx, shardIdx, func(ctx context.Context, sh int) (any, error) {
		st := s.shards[sh]
		if !live(st, typeID, slot) {
			return propGetResult{}, nil
		}
		val, ok := pick(st).Get(typeID, slot, name)
		atomic.AddUint64(&st.stats.PropertyReads, 1)
		return propGetResult{val, ok}, nil
	})
	if err != nil {
		return propertycatalog.Value{}, false, err
	}
	res := v.(propGetResult)
	return res.value, res.ok, nil
}

type propGetResult struct {
	value propertycatalog.Value
	ok    bool
}

func (s *Service) setProperty(ctx context.Context, id uint64, name string, raw json.RawMessage, pick func(*shard) *propertycatalog.Catalog, live liveCheck) (bool, error) {
	shardIdx, typeID, slot := idcodec.Unpack(id)
	v, err := s.router.InvokeOn(ctx, shardIdx, func(ctx context.Context, sh int) (any, error) {
		st := s.shards[sh]
		if !live(st, typeID, slot) {
			return false, nil
		}
		ok, err := pick(st).SetOneFromJSON(typeID, slot, name, raw)
		if ok {
			atomic.AddUint64(&st.stats.PropertyWrites, 1)
		}
		return ok, err
	})
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

func (s *Service) setProperties(ctx context.Context, id uint64, obj map[string]json.RawMessage, pick func(*shard) *propertycatalog.Catalog, live liveCheck) ([]string, error) {
	shardIdx, typeID, slot := idcodec.Unpack(id)
	v, err := s.router.InvokeOn(ctx, shardIdx, func(ctx context.Context, sh int) (any, error) {
		st := s.shards[sh]
		if !live(st, typeID, slot) {
			return []string(nil), nil
		}
		rejected, err := pick(st).SetAllFromJSON(typeID, slot, obj)
		atomic.AddUint64(&st.stats.PropertyWrites, uint64(len(obj)-len(rejected)))
		return rejected, err
	})
	if err != nil {
		return nil, err
	}
	return v.([]string), nil
}

func (s *Service) deleteProperty(ctx context.Context, id uint64, name string, pick func(*shard) *propertycatalog.Catalog) (bool, error) {
	shardIdx, typeID, slot := idcodec.Unpack(id)
	v, err := s.router.InvokeOn(ctx, shardIdx, func(ctx context.Context, sh int) (any, error) {
		return pick(s.shards[sh]).Delete(typeID, slot, name), nil
	})
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}
