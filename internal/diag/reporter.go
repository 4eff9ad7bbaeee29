// Package diag periodically logs shard operation counters so an operator
// tailing ragedbd's logs can see write/read volume without attaching a
// separate metrics scraper.
package diag

import (
	"context"
	"sync"
	"time"

	"github.com/raphaelsc/ragedb-go/internal/shardservice"
	"go.uber.org/zap"
)

// Reporter periodically snapshots every shard's OperationStats and logs the
// totals. It is started once and stopped once; it is not safe to Start a
// Reporter twice.
type Reporter struct {
	svc      *shardservice.Service
	log      *zap.Logger
	interval time.Duration
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewReporter builds a Reporter over svc that logs a stats snapshot every
// interval.
func NewReporter(svc *shardservice.Service, log *zap.Logger, interval time.Duration) *Reporter {
	return &Reporter{svc: svc, log: log, interval: interval}
}

// Start begins the reporting loop in a background goroutine. Call Stop to
// end it.
func (r *Reporter) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.logSnapshot()
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop ends the reporting loop and waits for it to exit.
func (r *Reporter) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()
}

func (r *Reporter) logSnapshot() {
	var total shardservice.OperationStats
	for i := 0; i < r.svc.NumShards(); i++ {
		st := r.svc.Stats(i)
		total.NodesAdded += st.NodesAdded
		total.NodesRemoved += st.NodesRemoved
		total.RelationshipsAdded += st.RelationshipsAdded
		total.RelationshipsRemoved += st.RelationshipsRemoved
		total.PropertyWrites += st.PropertyWrites
		total.PropertyReads += st.PropertyReads
	}
	r.log.Info("shard stats",
		zap.Uint64("nodes_added", total.NodesAdded),
		zap.Uint64("nodes_removed", total.NodesRemoved),
		zap.Uint64("relationships_added", total.RelationshipsAdded),
		zap.Uint64("relationships_removed", total.RelationshipsRemoved),
		zap.Uint64("property_writes", total.PropertyWrites),
		zap.Uint64("property_reads", total.PropertyReads),
	)
}
