// Package shardservice wires together the per-shard stores — type
// catalogs, node and relationship stores, and property catalogs — behind
// the single internal/peered.Router that gives each shard its
// single-writer guarantee.
//
// Every exported Service method that reads or writes graph data is a
// "peered" operation: it figures out which shard(s) a request belongs to,
// submits the actual work as a closure through the Router, and returns once
// that closure has run to completion on its owning shard's goroutine.
// NumShards, Stats and Close do not go through the Router. Callers never
// touch a shard's fields directly; internal/api, internal/diag and
// cmd/ragedbd reach the engine only through these methods.
//
// Type registration is shard-0-authoritative (internal/typecatalog) and is
// broadcast to every other shard with Router.InvokeOnAll immediately after
// being minted.
package shardservice
