package peered

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ErrClosed is returned by InvokeOn/InvokeOnAll once the router has been
// shut down.
var ErrClosed = errors.New("peered: router is closed")

// Func is the unit of work dispatched to a shard's goroutine. The shard
// index it was invoked on is passed through so one closure can serve every
// shard in an InvokeOnAll call.
type Func func(ctx context.Context, shard int) (any, error)

type task struct {
	ctx    context.Context
	fn     Func
	shard  int
	result chan result
}

type result struct {
	value any
	err   error
}

type shardWorker struct {
	tasks chan task
	done  chan struct{}
}

// Router owns one goroutine per shard and dispatches Func values to them.
// It is the only way shard-owned state (typecatalog.Catalog,
// graphstore.NodeStore/RelationshipStore, propertycatalog.Catalog) should
// ever be mutated, since that is what gives those types their
// single-writer-per-shard guarantee.
type Router struct {
	workers []*shardWorker
	closed  chan struct{}
}

// New starts numShards worker goroutines and returns a Router addressing
// them as shard indices [0, numShards).
func New(numShards int) *Router {
	r := &Router{
		workers: make([]*shardWorker, numShards),
		closed:  make(chan struct{}),
	}
	for i := range r.workers {
		w := &shardWorker{tasks: make(chan task, 256), done: make(chan struct{})}
		r.workers[i] = w
		go w.run()
	}
	return r
}

func (w *shardWorker) run() {
	defer close(w.done)
	for t := range w.tasks {
		v, err := t.fn(t.ctx, t.shard)
		select {
		case t.result <- result{v, err}:
		case <-t.ctx.Done():
		}
	}
}

// NumShards returns how many shard goroutines this router owns.
func (r *Router) NumShards() int { return len(r.workers) }

// InvokeOn runs fn on shard's goroutine and returns its result, blocking
// until it completes or ctx is cancelled.
func (r *Router) InvokeOn(ctx context.Context, shard int, fn Func) (any, error) {
	if shard < 0 || shard >= len(r.workers) {
		return nil, fmt.Errorf("peered: shard %d out of range [0,%d)", shard, len(r.workers))
	}

	t := task{ctx: ctx, fn: fn, shard: shard, result: make(chan result, 1)}
	select {
	case r.workers[shard].tasks <- t:
	case <-r.closed:
		return nil, ErrClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case res := <-t.result:
		return res.value, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// InvokeOnAll runs fn concurrently on every shard's goroutine and returns
// each shard's result indexed by shard number. It short-circuits on the
// first error, matching errgroup.Group semantics: the remaining shards'
// results are dropped, but their goroutines still finish running fn since
// a task already delivered to a worker is not cancellable mid-execution.
func (r *Router) InvokeOnAll(ctx context.Context, fn Func) ([]any, error) {
	results := make([]any, len(r.workers))
	g, gctx := errgroup.WithContext(ctx)
	for i := range r.workers {
		shard := i
		g.Go(func() error {
			v, err := r.InvokeOn(gctx, shard, fn)
			if err != nil {
				return err
			}
			results[shard] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Close stops accepting new tasks and waits for every shard's goroutine to
// drain its queue and exit. Callers must not invoke InvokeOn/InvokeOnAll
// concurrently with Close.
func (r *Router) Close() {
	close(r.closed)
	for _, w := range r.workers {
		close(w.tasks)
		<-w.done
	}
}
