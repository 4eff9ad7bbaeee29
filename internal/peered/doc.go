// Package peered implements the engine's single in-process concurrency
// primitive: one goroutine per shard, each draining its own task channel,
// with cross-shard fan-out built from golang.org/x/sync/errgroup.
//
// A call to another shard crosses goroutines via a buffered channel send
// instead of the network: "run this on the owner, wait for the result."
//
// Router.InvokeOn runs a single closure on one shard's goroutine and
// returns its result. Router.InvokeOnAll runs a closure against every
// shard concurrently and collects every result, short-circuiting on the
// first error the way errgroup.Group does.
//
// Every shard's goroutine processes tasks strictly one at a time, in
// submission order, which is what gives the shard's catalog and store
// types their single-writer guarantee: as long as all mutation happens
// inside a task submitted through a Router, no two goroutines ever touch
// one shard's state concurrently.
package peered
