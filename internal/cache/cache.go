// Package cache is the session-gated resource cache: one entry per resource
// key, at most one in-flight fetch per key, stale data kept visible through
// failed refetches. Pages never write entries directly; all state changes go
// through Ensure and Invalidate.
package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/studioportal/portal-client/internal/common"
	"github.com/studioportal/portal-client/internal/logging"
	"github.com/studioportal/portal-client/internal/metrics"
	"github.com/studioportal/portal-client/internal/session"
)

// Resource keys for the portal's backend collections.
const (
	KeyProjects   = "projects"
	KeyBookings   = "bookings"
	KeySlots      = "slots"
	KeyFiles      = "files"
	KeyRecordings = "recordings"
	KeyRequests   = "requests"
)

type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// Entry is the cached state for one resource key. A ready entry with a zero
// FetchedAt is stale: its data is still usable but the next Ensure refetches.
type Entry struct {
	Key       string
	Data      any
	Status    Status
	Err       error
	FetchedAt time.Time
}

// Terminal reports whether the entry has settled (ready or error). Pages use
// it to compute their aggregate loading flag.
func (e Entry) Terminal() bool {
	return e.Status == StatusReady || e.Status == StatusError
}

func (e Entry) fresh() bool {
	return e.Status == StatusReady && !e.FetchedAt.IsZero()
}

// Fetcher loads the data for one key from the transport.
type Fetcher func(ctx context.Context) (any, error)

// SessionState is the slice of the session store the cache needs for its
// fetch guard.
type SessionState interface {
	State() session.State
}

// Cache is a process-wide singleton constructed at startup.
type Cache struct {
	sess    SessionState
	metrics *metrics.Collector
	log     logging.Logger

	mu      sync.Mutex
	entries map[string]*Entry
	group   singleflight.Group
	clock   func() time.Time
}

func New(sess SessionState, collector *metrics.Collector, log logging.Logger) *Cache {
	return &Cache{
		sess:    sess,
		metrics: collector,
		log:     log,
		entries: make(map[string]*Entry),
		clock:   time.Now,
	}
}

// Ensure returns the entry for key, fetching if needed.
//
// The fetch guard runs first: unless the session has settled as
// authenticated (Authenticating counts as not-yet-authenticated, covering
// the mount race), Ensure resolves to an error entry wrapping
// ErrUnauthenticated without touching the transport or the cached state.
//
// A fresh ready entry is returned as-is. Otherwise the fetch is issued
// through a per-key singleflight group, so overlapping Ensure calls for the
// same key await one in-flight request. Fetch failures keep any previously
// cached data visible alongside the error.
func (c *Cache) Ensure(ctx context.Context, key string, fetch Fetcher) Entry {
	if c.sess.State() != session.StateAuthenticated {
		c.mu.Lock()
		var data any
		if e, ok := c.entries[key]; ok {
			data = e.Data
		}
		c.mu.Unlock()
		return Entry{Key: key, Data: data, Status: StatusError, Err: common.ErrUnauthenticated}
	}

	c.mu.Lock()
	if e, ok := c.entries[key]; ok {
		if e.fresh() {
			c.mu.Unlock()
			c.metrics.RecordCacheHit(key)
			return *e
		}
		if e.Status == StatusLoading {
			c.metrics.RecordCoalesced(key)
		} else {
			e.Status = StatusLoading
			e.Err = nil
			c.metrics.RecordCacheMiss(key)
		}
	} else {
		c.entries[key] = &Entry{Key: key, Status: StatusLoading}
		c.metrics.RecordCacheMiss(key)
	}
	c.mu.Unlock()

	// singleflight dedupes the actual fetch even if several goroutines
	// reach this point for the same key.
	c.group.Do(key, func() (any, error) {
		// Double-check under the group: a caller that lost the race to an
		// already-completed flight takes the fresh result instead of
		// issuing a duplicate request.
		c.mu.Lock()
		if e := c.entries[key]; e.fresh() {
			data := e.Data
			c.mu.Unlock()
			return data, nil
		}
		c.mu.Unlock()

		start := c.clock()
		data, err := fetch(ctx)
		c.metrics.RecordFetchLatency(c.clock().Sub(start).Seconds())

		c.mu.Lock()
		e := c.entries[key]
		if err != nil {
			e.Status = StatusError
			e.Err = err
			e.FetchedAt = time.Time{}
			c.mu.Unlock()
			c.metrics.RecordFetchError(key)
			c.log.Warn(ctx, "resource fetch failed", "key", key, "error", err)
			return nil, err
		}
		e.Status = StatusReady
		e.Data = data
		e.Err = nil
		e.FetchedAt = c.clock()
		c.mu.Unlock()
		return data, nil
	})
	c.group.Forget(key)

	c.mu.Lock()
	defer c.mu.Unlock()
	return *c.entries[key]
}

// Invalidate marks key stale: cached data stays readable, FetchedAt is
// cleared, and the next Ensure performs a real refetch. No fetch is issued
// here.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		e.FetchedAt = time.Time{}
	}
}

// Read is the synchronous render-time lookup. It never triggers a fetch.
func (c *Cache) Read(key string) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}
