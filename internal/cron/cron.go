// Package cron hosts the background refresh loops.
package cron

import (
	"context"
	"log"
	"time"

	"github.com/lanternml/cluster-core/internal/clusterinfo"
	"github.com/lanternml/cluster-core/internal/domain/vc"
)

// StartClusterStatusTask refreshes the persisted cluster status on a
// fixed interval, starting with one immediate refresh so reads do not
// see an empty view at boot. The loop stops when ctx is cancelled.
func StartClusterStatusTask(ctx context.Context, collector *clusterinfo.Collector, vcs vc.Repository, interval time.Duration) {
	go func() {
		log.Printf("Starting cluster status refresh task (interval: %s)", interval)

		refreshClusterStatus(ctx, collector, vcs)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Println("Cluster status refresh task stopped")
				return
			case <-ticker.C:
				refreshClusterStatus(ctx, collector, vcs)
			}
		}
	}()
}

func refreshClusterStatus(ctx context.Context, collector *clusterinfo.Collector, vcs vc.Repository) {
	status, err := collector.Collect(ctx)
	if err != nil {
		log.Printf("Failed to collect cluster status: %v", err)
		return
	}
	if err := vcs.SetClusterStatus(status); err != nil {
		log.Printf("Failed to persist cluster status: %v", err)
	}
}
