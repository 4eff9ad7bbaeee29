// Package graphstore holds the per-shard node and relationship identity
// arrays: the key↔id index, and the adjacency lists linking nodes to their
// relationships. It does not hold property values — those live in
// internal/propertycatalog, addressed by the same (typeID, slot) pairs
// graphstore hands out.
//
// # Ownership
//
// A relationship's outgoing reference is stored on its starting node's
// shard; its incoming reference on its ending node's shard. When the two
// endpoints live on different shards, the same relationship therefore
// appears in two different NodeStore adjacency lists, each updated through
// internal/peered rather than a local call.
//
// Slot allocation is delegated to internal/typecatalog.Catalog, which each
// NodeStore and RelationshipStore is constructed against: graphstore itself
// only grows the identity arrays to match whatever slot the catalog hands
// back.
package graphstore
