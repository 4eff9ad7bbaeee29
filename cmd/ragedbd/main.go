// Command ragedbd runs a single ragedb-go engine process: one
// shardservice.Service with --cpus shards, served over HTTP by
// internal/api.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/raphaelsc/ragedb-go/internal/api"
	"github.com/raphaelsc/ragedb-go/internal/diag"
	"github.com/raphaelsc/ragedb-go/internal/shardservice"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	maxShards           = 1024
	shutdownGracePeriod = 5 * time.Second
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cpus int
	var listenAddr string
	var statsInterval time.Duration

	cmd := &cobra.Command{
		Use:   "ragedbd",
		Short: "ragedb-go sharded in-memory property graph engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cpus, listenAddr, statsInterval)
		},
	}

	cmd.Flags().IntVar(&cpus, "cpus", defaultCPUs(), "number of shards to run (also RAGEDB_CPUS)")
	cmd.Flags().StringVar(&listenAddr, "listen", getenv("RAGEDB_LISTEN", ":8080"), "HTTP listen address")
	cmd.Flags().DurationVar(&statsInterval, "stats-interval", 30*time.Second, "how often to log shard operation stats (0 disables)")
	return cmd
}

func defaultCPUs() int {
	if v := os.Getenv("RAGEDB_CPUS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return 1
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func run(cpus int, listenAddr string, statsInterval time.Duration) error {
	if cpus < 1 || cpus > maxShards {
		return fmt.Errorf("ragedbd: --cpus %d out of range [1,%d]", cpus, maxShards)
	}

	log, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("ragedbd: building logger: %w", err)
	}
	defer log.Sync()

	svc, err := shardservice.New(cpus)
	if err != nil {
		return fmt.Errorf("ragedbd: starting shard service: %w", err)
	}
	defer svc.Close()

	if statsInterval > 0 {
		reporter := diag.NewReporter(svc, log, statsInterval)
		reporter.Start()
		defer reporter.Stop()
	}

	srv := &http.Server{
		Addr:              listenAddr,
		Handler:           api.NewServer(svc, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", listenAddr), zap.Int("cpus", cpus))
		serveErr <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("ragedbd: server error: %w", err)
		}
		return nil
	case sig := <-sigCh:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("ragedbd: graceful shutdown: %w", err)
	}
	return nil
}
