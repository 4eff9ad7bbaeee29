// Package typecatalog implements the per-shard name↔id registry and the
// live/free slot bookkeeping for one entity namespace (nodes or
// relationships).
//
// # Overview
//
// A Catalog is the per-shard authority for "what types exist and what id
// does each one have," plus, for every type id, which slots in that type's
// backing arrays are occupied ("live") and which are available for reuse
// ("free"). It does not own the arrays themselves — those belong to
// internal/graphstore — only the occupancy bitsets and the type's declared
// capacity (current array length).
//
// # Replication model
//
// Exactly one shard (shard 0) may call GetOrAssign to mint a new type id.
// Every other shard only ever calls Assert to install a mapping it learned
// about through the peered broadcast, never inventing one itself. This
// keeps the name→id mapping identical on every shard without a central
// lookup on the read path — see internal/peered for the broadcast
// mechanics.
//
// Architecture, mirroring the shard-local ownership model used throughout
// the engine:
//
//	┌──────────────────────────────────────────┐
//	│              Catalog (per shard)          │
//	├──────────────────────────────────────────┤
//	│  nameToID: map[string]uint16              │
//	│  idToName: map[uint16]string              │
//	│  entries[id]:                             │
//	│    live  *bitset.BitSet  (occupied slots) │
//	│    free  *bitset.BitSet  (reusable slots) │
//	│    cap   uint64          (array length)   │
//	└──────────────────────────────────────────┘
package typecatalog
