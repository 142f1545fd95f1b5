// Package listcache caches the per-VC pending-job listing, the one
// query hot enough to be worth not recomputing on every read. State
// changes evict the VC's entry and eagerly repopulate it, so a reader
// after the invalidation call always sees fresh state and never pays
// the miss cost.
package listcache

import (
	"log"
	"sync"
	"time"

	"github.com/lanternml/cluster-core/internal/domain/job"
	gocache "github.com/patrickmn/go-cache"
)

// Invalidator is what state-changing services depend on.
type Invalidator interface {
	Invalidate(vcName string)
}

// PendingLister is the slice of the job store the cache reads through to.
type PendingLister interface {
	GetPendingJobs(vcName string) ([]job.Job, error)
}

// Cache is a TTL cache of pending-job listings keyed by VC name. One
// mutex guards all VCs; entries also expire on their own so a missed
// invalidation cannot go stale forever.
type Cache struct {
	mu    sync.Mutex
	store *gocache.Cache
	jobs  PendingLister
}

func New(jobs PendingLister, ttl time.Duration) *Cache {
	return &Cache{
		store: gocache.New(ttl, 2*ttl),
		jobs:  jobs,
	}
}

// Pending returns the VC's pending jobs, reading through to the store
// on a miss.
func (c *Cache) Pending(vcName string) ([]job.Job, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cached, ok := c.store.Get(vcName); ok {
		return cached.([]job.Job), nil
	}
	return c.refreshLocked(vcName)
}

// Invalidate evicts the VC's entry and repopulates it immediately. A
// refresh failure leaves the entry evicted; the next read retries.
func (c *Cache) Invalidate(vcName string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store.Delete(vcName)
	if _, err := c.refreshLocked(vcName); err != nil {
		log.Printf("pending job cache refresh failed for vc %s: %v", vcName, err)
	}
}

func (c *Cache) refreshLocked(vcName string) ([]job.Job, error) {
	jobs, err := c.jobs.GetPendingJobs(vcName)
	if err != nil {
		return nil, err
	}
	c.store.SetDefault(vcName, jobs)
	return jobs, nil
}
