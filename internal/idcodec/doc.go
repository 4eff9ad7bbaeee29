// Package idcodec packs and unpacks the 64-bit external identifiers used
// throughout ragedb-go, and provides the stable key→shard routing function.
//
// # Overview
//
// Every node and relationship is addressed by a single 64-bit integer that
// also tells the caller where the entity lives, with no lookup required:
//
//	┌─────────────────────────────────────────────────────────┐
//	│                      external id (64 bits)               │
//	├───────────────────┬───────────────────┬─────────────────┤
//	│   slot (38 bits)  │   type (16 bits)   │  shard (10 bits)│
//	└───────────────────┴───────────────────┴─────────────────┘
//
// shard occupies the 10 least-significant bits, type the next 16, and slot
// the remaining 38 (most-significant). Unpacking any of the three fields
// is a shift-and-mask; packing is a concatenation validated against each
// field's width.
//
// # Routing without a directory
//
// Operations addressed by (type name, key) instead of an id use Route,
// which hashes "typeName-key" with a 64-bit hash and maps the hash to a
// shard index using the high half of a 128-bit multiply
// (hash * numShards >> 64). This is the classic bias-free alternative to
// "hash % numShards": every shard gets almost exactly a 1/numShards share
// of the hash space, with no modulo skew for non-power-of-two shard
// counts.
package idcodec
