package propertycatalog

import (
	"encoding/json"
	"errors"
	"sync"

	"golang.org/x/exp/slices"
)

// ErrKindMismatch is returned by SchemaAdd when a name is re-registered with
// a kind different from its existing registration. Value writes with a
// mismatched kind report it as a false result instead.
var ErrKindMismatch = errors.New("propertycatalog: value kind does not match the property's registered kind")

// ErrUnknownProperty names the "property never registered on this type"
// condition. Get and Delete report that condition as a false result rather
// than returning this error.
var ErrUnknownProperty = errors.New("propertycatalog: unknown property")

type propEntry struct {
	id   uint16
	kind Kind
}

type typeSchema struct {
	nameToProp map[string]propEntry
	props      []propEntry // ordered by id, for DeleteAll / listing
	columns    map[uint16]column
}

func newTypeSchema() *typeSchema {
	return &typeSchema{
		nameToProp: make(map[string]propEntry),
		columns:    make(map[uint16]column),
	}
}

// Catalog is the per-shard, per-namespace columnar property store. Node
// properties and relationship properties each get their own Catalog
// instance, since the two namespaces have independent schemas.
type Catalog struct {
	mu     sync.RWMutex
	types  map[uint16]*typeSchema
	nextID uint16
}

// New creates an empty property catalog.
func New() *Catalog {
	return &Catalog{
		types:  make(map[uint16]*typeSchema),
		nextID: 1,
	}
}

func (c *Catalog) schemaFor(typeID uint16) *typeSchema {
	s, ok := c.types[typeID]
	if !ok {
		s = newTypeSchema()
		c.types[typeID] = s
	}
	return s
}

// SchemaAdd registers name as a property of typeID with the given kind. It
// is idempotent when the existing registration already has that kind, and
// fails with ErrKindMismatch if it was registered with a different one.
func (c *Catalog) SchemaAdd(typeID uint16, name string, kind Kind) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.schemaFor(typeID)
	if existing, ok := s.nameToProp[name]; ok {
		if existing.kind != kind {
			return ErrKindMismatch
		}
		return nil
	}

	id := c.nextID
	c.nextID++
	pe := propEntry{id: id, kind: kind}
	s.nameToProp[name] = pe
	s.props = append(s.props, pe)
	s.columns[id] = newColumn(kind)
	return nil
}

// SchemaKind returns the registered kind for name on typeID.
func (c *Catalog) SchemaKind(typeID uint16, name string) (Kind, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.types[typeID]
	if !ok {
		return 0, false
	}
	pe, ok := s.nameToProp[name]
	return pe.kind, ok
}

// SchemaNames returns every property name registered on typeID, sorted.
func (c *Catalog) SchemaNames(typeID uint16) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.types[typeID]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(s.nameToProp))
	for n := range s.nameToProp {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Get returns the value of name at slot for typeID. ok is false if name was
// never registered on typeID; a registered-but-never-written slot returns
// the kind's tombstone with ok true.
func (c *Catalog) Get(typeID uint16, slot uint64, name string) (Value, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.types[typeID]
	if !ok {
		return Value{}, false
	}
	pe, ok := s.nameToProp[name]
	if !ok {
		return Value{}, false
	}
	return s.columns[pe.id].get(slot), true
}

// SetValue writes v into name's column at slot. Returns false (no write)
// if name is unregistered or v.Kind disagrees with the registered kind.
func (c *Catalog) SetValue(typeID uint16, slot uint64, name string, v Value) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.types[typeID]
	if !ok {
		return false
	}
	pe, ok := s.nameToProp[name]
	if !ok || pe.kind != v.Kind {
		return false
	}
	s.columns[pe.id].set(slot, v)
	return true
}

// Delete tombstones name's value at slot. Returns false if name is
// unregistered on typeID.
func (c *Catalog) Delete(typeID uint16, slot uint64, name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.types[typeID]
	if !ok {
		return false
	}
	pe, ok := s.nameToProp[name]
	if !ok {
		return false
	}
	s.columns[pe.id].tombstone(slot)
	return true
}

// DeleteAll tombstones every registered property's value at slot, e.g. when
// the owning node or relationship is removed.
func (c *Catalog) DeleteAll(typeID uint16, slot uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.types[typeID]
	if !ok {
		return
	}
	for _, pe := range s.props {
		s.columns[pe.id].tombstone(slot)
	}
}

// SetOneFromJSON decodes a single JSON literal and assigns it to name at
// slot for typeID, registering name with the literal's coerced kind if
// this is its first use. ok is false if the literal doesn't coerce to a
// supported kind, or if it coerces to a kind conflicting with name's
// existing registration.
func (c *Catalog) SetOneFromJSON(typeID uint16, slot uint64, name string, raw json.RawMessage) (ok bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, decoded := decodeJSONValue(raw)
	if !decoded {
		return false, nil
	}

	s := c.schemaFor(typeID)
	pe, exists := s.nameToProp[name]
	if !exists {
		id := c.nextID
		c.nextID++
		pe = propEntry{id: id, kind: v.Kind}
		s.nameToProp[name] = pe
		s.props = append(s.props, pe)
		s.columns[id] = newColumn(v.Kind)
	} else if pe.kind != v.Kind {
		return false, nil
	}
	s.columns[pe.id].set(slot, v)
	return true, nil
}

// SetAllFromJSON decodes obj as a JSON object and assigns each field onto
// slot for typeID, registering any property name seen for the first time
// with the kind its literal coerces to. Fields whose literal doesn't map
// to a supported kind (nested objects, heterogeneous or nested arrays) are
// reported in the returned, possibly-empty, list of rejected names; every
// other field is still applied.
func (c *Catalog) SetAllFromJSON(typeID uint16, slot uint64, obj map[string]json.RawMessage) (rejected []string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.schemaFor(typeID)
	names := make([]string, 0, len(obj))
	for name := range obj {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		v, ok := decodeJSONValue(obj[name])
		if !ok {
			rejected = append(rejected, name)
			continue
		}
		pe, exists := s.nameToProp[name]
		if !exists {
			id := c.nextID
			c.nextID++
			pe = propEntry{id: id, kind: v.Kind}
			s.nameToProp[name] = pe
			s.props = append(s.props, pe)
			s.columns[id] = newColumn(v.Kind)
		} else if pe.kind != v.Kind {
			rejected = append(rejected, name)
			continue
		}
		s.columns[pe.id].set(slot, v)
	}
	return rejected, nil
}
