package graphstore

import (
	"sync"

	"github.com/raphaelsc/ragedb-go/internal/idcodec"
	"github.com/raphaelsc/ragedb-go/internal/typecatalog"
)

type relTypeData struct {
	startID []uint64
	endID   []uint64
}

func (d *relTypeData) ensure(slot uint64) {
	if slot >= uint64(len(d.startID)) {
		n := slot + 1
		grownStart := make([]uint64, n)
		copy(grownStart, d.startID)
		d.startID = grownStart

		grownEnd := make([]uint64, n)
		copy(grownEnd, d.endID)
		d.endID = grownEnd
	}
}

// RelationshipStore is the per-shard identity table for every relationship
// type whose slots are allocated through catalog. Relationships carry no
// external key of their own — only start/end node external ids — so there
// is no key index here, unlike NodeStore.
type RelationshipStore struct {
	mu      sync.RWMutex
	shardID int
	catalog *typecatalog.Catalog
	types   map[uint16]*relTypeData
}

// NewRelationshipStore creates a RelationshipStore for the given shard id,
// backed by catalog for type registration and slot allocation.
func NewRelationshipStore(shardID int, catalog *typecatalog.Catalog) *RelationshipStore {
	return &RelationshipStore{
		shardID: shardID,
		catalog: catalog,
		types:   make(map[uint16]*relTypeData),
	}
}

func (s *RelationshipStore) typeData(typeID uint16) *relTypeData {
	d, ok := s.types[typeID]
	if !ok {
		d = &relTypeData{}
		s.types[typeID] = d
	}
	return d
}

// Add creates a relationship of typeID between startID and endID, returning
// its freshly-allocated external id.
func (s *RelationshipStore) Add(typeID uint16, startID, endID uint64) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

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
	d.startID[slot] = startID
	d.endID[slot] = endID
	return id, nil
}

// Get returns the start and end node external ids of the relationship at
// (typeID, slot).
func (s *RelationshipStore) Get(typeID uint16, slot uint64) (startID, endID uint64, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.types[typeID]
	if !ok || slot >= uint64(len(d.startID)) || !s.catalog.IsLive(typeID, slot) {
		return 0, 0, false
	}
	return d.startID[slot], d.endID[slot], true
}

// Contains reports whether slot is a live relationship of typeID.
func (s *RelationshipStore) Contains(typeID uint16, slot uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.IsLive(typeID, slot)
}

// Remove frees slot's occupancy and clears its start/end references.
func (s *RelationshipStore) Remove(typeID uint16, slot uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.types[typeID]
	if !ok || slot >= uint64(len(d.startID)) {
		return false
	}
	if !s.catalog.FreeSlot(typeID, slot) {
		return false
	}
	d.startID[slot] = 0
	d.endID[slot] = 0
	return true
}
