// Package propertycatalog implements the schema-on-write, columnar
// property storage shared by nodes and relationships.
//
// # Overview
//
// Each entity type (once registered with internal/typecatalog) gets its
// own schema: a table of property name → (property id, kind). The first
// successful write of a property fixes its kind for the lifetime of the
// type; every later write is checked against that kind rather than
// re-inferred.
//
// Storage is columnar: for property id p of kind K, there is one dense
// column holding every slot's K-typed value, indexed by the same slot
// number internal/typecatalog hands out for that entity's type. List kinds
// store a vector of vectors (one inner vector per slot) instead of a flat
// vector, since list values have no fixed width.
//
//	┌─────────────────────────────────────────────┐
//	│         Catalog (per shard, per namespace)   │
//	├─────────────────────────────────────────────┤
//	│  schema[typeID]: name → (propID, kind)        │
//	│  columns[typeID][propID]: dense column         │
//	└─────────────────────────────────────────────┘
//
// # Tombstones over optionals
//
// Delete writes a kind-specific sentinel into the column rather than
// marking the slot "absent" out of band: string → "", i64 → MinInt64,
// f64 → -math.MaxFloat64, bool → false. This keeps the column a tight
// vector of the raw type — no per-cell presence bit — at the cost of one
// reserved value per kind. Callers who need optionality compare against
// the sentinel; this package exposes Sentinel and IsSentinel for that
// purpose.
package propertycatalog
