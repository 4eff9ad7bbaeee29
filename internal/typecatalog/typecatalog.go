package typecatalog

import (
	"errors"
	"sort"
	"sync"

	"github.com/bits-and-blooms/bitset"
)

// EmptyTypeID is the permanently reserved id for the empty-string sentinel
// type. Every Catalog installs it at construction.
const EmptyTypeID uint16 = 0

// ErrConflict is returned by Assert when a shard already maps the given
// name or id to something different.
var ErrConflict = errors.New("typecatalog: conflicting type assertion")

// ErrUnknownType is returned by operations addressed by a type id/name that
// the catalog has never seen.
var ErrUnknownType = errors.New("typecatalog: unknown type")

// entry tracks occupancy for one type id.
type entry struct {
	live *bitset.BitSet
	free *bitset.BitSet
	cap  uint64
}

// Catalog is the per-shard type registry and slot-occupancy tracker for one
// entity namespace (nodes, or relationships — each namespace gets its own
// Catalog instance).
type Catalog struct {
	mu         sync.RWMutex
	nameToID   map[string]uint16
	idToName   map[uint16]string
	entries    map[uint16]*entry
	nextID     uint16
	canAssign  bool // true only for the shard-0 instance
}

// New creates an empty catalog. canAssign must be true only for the
// instance running on shard 0; every other shard's catalog only replicates
// assignments via Assert.
func New(canAssign bool) *Catalog {
	c := &Catalog{
		nameToID:  make(map[string]uint16),
		idToName:  make(map[uint16]string),
		entries:   make(map[uint16]*entry),
		nextID:    1,
		canAssign: canAssign,
	}
	c.nameToID[""] = EmptyTypeID
	c.idToName[EmptyTypeID] = ""
	c.entries[EmptyTypeID] = newEntry()
	return c
}

func newEntry() *entry {
	return &entry{
		live: bitset.New(0),
		free: bitset.New(0),
	}
}

// GetOrAssign returns the existing id for name, or mints a new one. Only
// legal on the shard-0 catalog; every other shard must learn the mapping
// through Assert.
func (c *Catalog) GetOrAssign(name string) (uint16, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if id, ok := c.nameToID[name]; ok {
		return id, nil
	}
	if !c.canAssign {
		return 0, errors.New("typecatalog: GetOrAssign is only legal on the shard-0 catalog")
	}
	if c.nextID == 0 || int(c.nextID) > 0xFFFF {
		return 0, errors.New("typecatalog: type id space exhausted")
	}

	id := c.nextID
	c.nextID++
	c.nameToID[name] = id
	c.idToName[id] = name
	c.entries[id] = newEntry()
	return id, nil
}

// Assert installs a replica mapping. It is idempotent on an exact match and
// fails with ErrConflict if the name or id already maps to something else.
func (c *Catalog) Assert(name string, id uint16) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existingID, ok := c.nameToID[name]; ok {
		if existingID != id {
			return ErrConflict
		}
	}
	if existingName, ok := c.idToName[id]; ok {
		if existingName != name {
			return ErrConflict
		}
		// Exact match already installed.
		c.nameToID[name] = id
		return nil
	}

	c.nameToID[name] = id
	c.idToName[id] = name
	c.entries[id] = newEntry()
	if id >= c.nextID {
		c.nextID = id + 1
	}
	return nil
}

// LookupName returns the name registered for id, if any.
func (c *Catalog) LookupName(id uint16) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	name, ok := c.idToName[id]
	return name, ok
}

// LookupID returns the id registered for name, if any.
func (c *Catalog) LookupID(name string) (uint16, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	id, ok := c.nameToID[name]
	return id, ok
}

// ListNames returns every registered type name (including the empty-string
// sentinel), sorted for deterministic output.
func (c *Catalog) ListNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.nameToID))
	for n := range c.nameToID {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ListIDs returns every registered type id, sorted.
func (c *Catalog) ListIDs() []uint16 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ids := make([]uint16, 0, len(c.idToName))
	for id := range c.idToName {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Count returns the number of live slots for typeID.
func (c *Catalog) Count(typeID uint16) uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[typeID]
	if !ok {
		return 0
	}
	return e.live.Count()
}

// Capacity returns the current backing-array length for typeID (live +
// free slots).
func (c *Catalog) Capacity(typeID uint16) uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[typeID]
	if !ok {
		return 0
	}
	return e.cap
}

// AllocSlot reserves a slot for typeID: the minimum free slot if one
// exists, otherwise a new slot appended to the end of the array. Returns
// ErrUnknownType if typeID was never registered.
func (c *Catalog) AllocSlot(typeID uint16) (slot uint64, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[typeID]
	if !ok {
		return 0, ErrUnknownType
	}

	if next, ok := e.free.NextSet(0); ok {
		e.free.Clear(next)
		e.live.Set(next)
		return uint64(next), nil
	}

	slot = e.cap
	e.cap++
	e.live.Set(uint(slot))
	return slot, nil
}

// FreeSlot moves slot from live to free, tombstoning it for reuse. A no-op
// (returns false) if the slot wasn't live.
func (c *Catalog) FreeSlot(typeID uint16, slot uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[typeID]
	if !ok || !e.live.Test(uint(slot)) {
		return false
	}
	e.live.Clear(uint(slot))
	e.free.Set(uint(slot))
	return true
}

// IsLive reports whether slot is currently occupied for typeID.
func (c *Catalog) IsLive(typeID uint16, slot uint64) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[typeID]
	if !ok {
		return false
	}
	return e.live.Test(uint(slot))
}
