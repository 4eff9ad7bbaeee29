package shardservice

import "context"

// GetOrAssignNodeType returns the id for a node type name, minting one on
// shard 0 if this is the first time it's been seen, then broadcasting the
// mapping to every other shard before returning.
func (s *Service) GetOrAssignNodeType(ctx context.Context, name string) (uint16, error) {
	return s.getOrAssignType(ctx, name, func(sh *shard) *typeCatalogHandle { return nodeTypeHandle(sh) })
}

// GetOrAssignRelationshipType is GetOrAssignNodeType for relationship type
// names.
func (s *Service) GetOrAssignRelationshipType(ctx context.Context, name string) (uint16, error) {
	return s.getOrAssignType(ctx, name, func(sh *shard) *typeCatalogHandle { return relTypeHandle(sh) })
}

// typeCatalogHandle lets getOrAssignType stay generic over the node and
// relationship type catalogs without duplicating its broadcast logic.
type typeCatalogHandle struct {
	getOrAssign func(name string) (uint16, error)
	assert      func(name string, id uint16) error
	lookupID    func(name string) (uint16, bool)
	listNames   func() []string
}

func nodeTypeHandle(sh *shard) *typeCatalogHandle {
	return &typeCatalogHandle{
		getOrAssign: sh.nodeTypes.GetOrAssign,
		assert:      sh.nodeTypes.Assert,
		lookupID:    sh.nodeTypes.LookupID,
		listNames:   sh.nodeTypes.ListNames,
	}
}

func relTypeHandle(sh *shard) *typeCatalogHandle {
	return &typeCatalogHandle{
		getOrAssign: sh.relTypes.GetOrAssign,
		assert:      sh.relTypes.Assert,
		lookupID:    sh.relTypes.LookupID,
		listNames:   sh.relTypes.ListNames,
	}
}

func (s *Service) getOrAssignType(ctx context.Context, name string, pick func(*shard) *typeCatalogHandle) (uint16, error) {
	v, err := s.router.InvokeOn(ctx, 0, func(ctx context.Context, sh int) (any, error) {
		return pick(s.shards[sh]).getOrAssign(name)
	})
	if err != nil {
		return 0, err
	}
	id := v.(uint16)

	_, err = s.router.InvokeOnAll(ctx, func(ctx context.Context, sh int) (any, error) {
		if sh == 0 {
			return nil, nil
		}
		return nil, pick(s.shards[sh]).assert(name, id)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// ListNodeTypeNames returns every registered node type name, sorted. Every
// shard carries an identical replica of the name↔id mapping, so this reads
// shard 0 without needing to fan out.
func (s *Service) ListNodeTypeNames(ctx context.Context) ([]string, error) {
	return s.listTypeNames(ctx, func(sh *shard) *typeCatalogHandle { return nodeTypeHandle(sh) })
}

// ListRelationshipTypeNames is ListNodeTypeNames for relationship types.
func (s *Service) ListRelationshipTypeNames(ctx context.Context) ([]string, error) {
	return s.listTypeNames(ctx, func(sh *shard) *typeCatalogHandle { return relTypeHandle(sh) })
}

func (s *Service) listTypeNames(ctx context.Context, pick func(*shard) *typeCatalogHandle) ([]string, error) {
	v, err := s.router.InvokeOn(ctx, 0, func(ctx context.Context, sh int) (any, error) {
		return pick(s.shards[sh]).listNames(), nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]string), nil
}

// LookupNodeTypeID returns the id registered for name, without minting one.
func (s *Service) LookupNodeTypeID(ctx context.Context, name string) (uint16, bool, error) {
	return s.lookupTypeID(ctx, name, func(sh *shard) *typeCatalogHandle { return nodeTypeHandle(sh) })
}

// LookupRelationshipTypeID is LookupNodeTypeID for relationship types.
func (s *Service) LookupRelationshipTypeID(ctx context.Context, name string) (uint16, bool, error) {
	return s.lookupTypeID(ctx, name, func(sh *shard) *typeCatalogHandle { return relTypeHandle(sh) })
}

func (s *Service) lookupTypeID(ctx context.Context, name string, pick func(*shard) *typeCatalogHandle) (uint16, bool, error) {
	v, err := s.router.InvokeOn(ctx, 0, func(ctx context.Context, sh int) (any, error) {
		id, ok := pick(s.shards[sh]).lookupID(name)
		return typeLookupResult{id, ok}, nil
	})
	if err != nil {
		return 0, false, err
	}
	res := v.(typeLookupResult)
	return res.id, res.ok, nil
}

type typeLookupResult struct {
	id uint16
	ok bool
}

// NodeTypeCount returns the total number of live nodes of typeID across
// every shard.
func (s *Service) NodeTypeCount(ctx context.Context, typeID uint16) (uint64, error) {
	return s.sumAcrossShards(ctx, func(sh *shard) uint64 { return sh.nodeTypes.Count(typeID) })
}

// RelationshipTypeCount is NodeTypeCount for relationship types.
func (s *Service) RelationshipTypeCount(ctx context.Context, typeID uint16) (uint64, error) {
	return s.sumAcrossShards(ctx, func(sh *shard) uint64 { return sh.relTypes.Count(typeID) })
}

// NodeTypeCapacity returns the total backing-array length (live + free
// slots) allocated for typeID across every shard.
func (s *Service) NodeTypeCapacity(ctx context.Context, typeID uint16) (uint64, error) {
	return s.sumAcrossShards(ctx, func(sh *shard) uint64 { return sh.nodeTypes.Capacity(typeID) })
}

// RelationshipTypeCapacity is NodeTypeCapacity for relationship types.
func (s *Service) RelationshipTypeCapacity(ctx context.Context, typeID uint16) (uint64, error) {
	return s.sumAcrossShards(ctx, func(sh *shard) uint64 { return sh.relTypes.Capacity(typeID) })
}

func (s *Service) sumAcrossShards(ctx context.Context, f func(*shard) uint64) (uint64, error) {
	results, err := s.router.InvokeOnAll(ctx, func(ctx context.Context, sh int) (any, error) {
		return f(s.shards[sh]), nil
	})
	if err != nil {
		return 0, err
	}
	var total uint64
	for _, r := range results {
		total += r.(uint64)
	}
	return total, nil
}

// lookupNodeType returns the id registered for name on shard sh, without
// minting one. Every shard carries the same replicated mapping, so this
// can be resolved on whichever shard the caller is already dispatching to.
func lookupNodeType(sh *shard, name string) (uint16, bool) {
	return sh.nodeTypes.LookupID(name)
}

func lookupRelType(sh *shard, name string) (uint16, bool) {
	return sh.relTypes.LookupID(name)
}
