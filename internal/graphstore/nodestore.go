package graphstore

import (
	"errors"
	"sync"

	"github.com/raphaelsc/ragedb-go/internal/idcodec"
	"github.com/raphaelsc/ragedb-go/internal/typecatalog"
)

// ErrUnknownType names the "node type the catalog never registered"
// condition. NodeStore's methods do not return it: AddEmpty passes through
// typecatalog.ErrUnknownType from the catalog.
var ErrUnknownType = errors.New("graphstore: unknown node type")

// ErrUnknownSlot names the "slot never allocated, or already removed"
// condition. NodeStore's methods report it as a false or empty result rather
// than returning this error.
var ErrUnknownSlot = errors.New("graphstore: unknown or removed slot")

// adjacency maps a relationship type id to the relationship external ids
// attached in that direction, in insertion order.
type adjacency map[uint16][]uint64

func (a adjacency) add(relType uint16, relID uint64) adjacency {
	if a == nil {
		a = make(adjacency)
	}
	a[relType] = append(a[relType], relID)
	return a
}

func (a adjacency) remove(relType uint16, relID uint64) {
	if a == nil {
		return
	}
	ids := a[relType]
	for i, id := range ids {
		if id == relID {
			a[relType] = append(ids[:i], ids[i+1:]...)
			return
		}
	}
}

func (a adjacency) all() []uint64 {
	var out []uint64
	for _, ids := range a {
		out = append(out, ids...)
	}
	return out
}

type nodeTypeData struct {
	keys     []string
	outgoing []adjacency
	incoming []adjacency
}

func (d *nodeTypeData) ensure(slot uint64) {
	if slot >= uint64(len(d.keys)) {
		n := slot + 1
		grown := make([]string, n)
		copy(grown, d.keys)
		d.keys = grown

		grownOut := make([]adjacency, n)
		copy(grownOut, d.outgoing)
		d.outgoing = grownOut

		grownIn := make([]adjacency, n)
		copy(grownIn, d.incoming)
		d.incoming = grownIn
	}
}

// NodeStore is the per-shard identity and adjacency table for every node
// type whose slots are allocated through catalog.
type NodeStore struct {
	mu      sync.RWMutex
	shardID int
	catalog *typecatalog.Catalog
	keyToID map[uint16]map[string]uint64
	types   map[uint16]*nodeTypeData
}

// NewNodeStore creates a NodeStore for the given shard id, backed by
// catalog for type registration and slot allocation. catalog must be the
// same instance (or a correctly-replicated peer) used by every other store
// on this shard.
func NewNodeStore(shardID int, catalog *typecatalog.Catalog) *NodeStore {
	return &NodeStore{
		shardID: shardID,
		catalog: catalog,
		keyToID: make(map[uint16]map[string]uint64),
		types:   make(map[uint16]*nodeTypeData),
	}
}

func (s *NodeStore) typeData(typeID uint16) *nodeTypeData {
	d, ok := s.types[typeID]
	if !ok {
		d = &nodeTypeData{}
		s.types[typeID] = d
	}
	return d
}

// AddEmpty creates a propertyless node of typeID under key, or returns the
// existing id if key is already registered for typeID on this shard.
func (s *NodeStore) AddEmpty(typeID uint16, key string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if byKey, ok := s.keyToID[typeID]; ok {
		if id, ok := byKey[key]; ok {
			return id, nil
		}
	}

	slot, err := s.catalog.AllocSlot(typeID)
	if err != nil {
		return 0, err
	}
	id, err := idcodec.Pack(s.shardID, typeID, slot)
	if err != nil {
		return 0, err
	}

	d := s.typeData(typeID)
	d.ensure(slot)
	d.keys[slot] = key

	if s.keyToID[typeID] == nil {
		s.keyToID[typeID] = make(map[string]uint64)
	}
	s.keyToID[typeID][key] = id
	return id, nil
}

// IsLive reports whether slot is a currently-occupied node of typeID.
func (s *NodeStore) IsLive(typeID uint16, slot uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.IsLive(typeID, slot)
}

// GetID returns the external id registered for key under typeID.
func (s *NodeStore) GetID(typeID uint16, key string) (uint64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	byKey, ok := s.keyToID[typeID]
	if !ok {
		return 0, false
	}
	id, ok := byKey[key]
	return id, ok
}

// Contains reports whether key is registered under typeID.
func (s *NodeStore) Contains(typeID uint16, key string) bool {
	_, ok := s.GetID(typeID, key)
	return ok
}

// GetKey returns the key stored at slot for typeID.
func (s *NodeStore) GetKey(typeID uint16, slot uint64) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.types[typeID]
	if !ok || slot >= uint64(len(d.keys)) || !s.catalog.IsLive(typeID, slot) {
		return "", false
	}
	return d.keys[slot], true
}

// Remove frees slot's occupancy, its key mapping, and its adjacency lists.
// It does not touch any relationship the removed node referenced — callers
// coordinate cross-store relationship cleanup at the shard-service layer.
func (s *NodeStore) Remove(typeID uint16, slot uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.types[typeID]
	if !ok || slot >= uint64(len(d.keys)) {
		return false
	}
	if !s.catalog.FreeSlot(typeID, slot) {
		return false
	}

	key := d.keys[slot]
	delete(s.keyToID[typeID], key)
	d.keys[slot] = ""
	d.outgoing[slot] = nil
	d.incoming[slot] = nil
	return true
}

// AddOutgoing attaches relID (of type relType) as an outgoing relationship
// of the node at (typeID, slot).
func (s *NodeStore) AddOutgoing(typeID uint16, slot uint64, relType uint16, relID uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.typeData(typeID)
	d.ensure(slot)
	d.outgoing[slot] = d.outgoing[slot].add(relType, relID)
}

// AddIncoming attaches relID (of type relType) as an incoming relationship
// of the node at (typeID, slot).
func (s *NodeStore) AddIncoming(typeID uint16, slot uint64, relType uint16, relID uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.typeData(typeID)
	d.ensure(slot)
	d.incoming[slot] = d.incoming[slot].add(relType, relID)
}

// RemoveOutgoing detaches relID from the node's outgoing adjacency list.
func (s *NodeStore) RemoveOutgoing(typeID uint16, slot uint64, relType uint16, relID uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.types[typeID]
	if !ok || slot >= uint64(len(d.outgoing)) {
		return
	}
	d.outgoing[slot].remove(relType, relID)
}

// RemoveIncoming detaches relID from the node's incoming adjacency list.
func (s *NodeStore) RemoveIncoming(typeID uint16, slot uint64, relType uint16, relID uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.types[typeID]
	if !ok || slot >= uint64(len(d.incoming)) {
		return
	}
	d.incoming[slot].remove(relType, relID)
}

// Outgoing returns every outgoing relationship id of the node at (typeID,
// slot), across all relationship types.
func (s *NodeStore) Outgoing(typeID uint16, slot uint64) []uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.types[typeID]
	if !ok || slot >= uint64(len(d.outgoing)) {
		return nil
	}
	return d.outgoing[slot].all()
}

// Incoming returns every incoming relationship id of the node at (typeID,
// slot), across all relationship types. Per design, this is always the
// full incoming vector — there is no type-filtered short-circuit.
func (s *NodeStore) Incoming(typeID uint16, slot uint64) []uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.types[typeID]
	if !ok || slot >= uint64(len(d.incoming)) {
		return nil
	}
	return d.incoming[slot].all()
}

// OutgoingByType returns the node's outgoing relationship ids restricted to
// relType.
func (s *NodeStore) OutgoingByType(typeID uint16, slot uint64, relType uint16) []uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.types[typeID]
	if !ok || slot >= uint64(len(d.outgoing)) {
		return nil
	}
	return d.outgoing[slot][relType]
}

// IncomingByType returns the node's incoming relationship ids restricted to
// relType.
func (s *NodeStore) IncomingByType(typeID uint16, slot uint64, relType uint16) []uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.types[typeID]
	if !ok || slot >= uint64(len(d.incoming)) {
		return nil
	}
	return d.incoming[slot][relType]
}
