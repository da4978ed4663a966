// Package mutate executes write operations against the backend and keeps the
// resource cache honest afterwards: a successful mutation invalidates its
// dependent keys so the next read refetches, a failed one touches nothing.
package mutate

import (
	"context"

	"github.com/studioportal/portal-client/internal/common"
	"github.com/studioportal/portal-client/internal/logging"
	"github.com/studioportal/portal-client/internal/metrics"
)

// Operation is a single create/update/delete call against the transport.
// Operations returning no body (DELETE) return a nil result.
type Operation func(ctx context.Context) (any, error)

// Invalidator is the slice of the resource cache the coordinator needs.
type Invalidator interface {
	Invalidate(key string)
}

// Coordinator runs mutations one attempt each: no retry (the portal's writes
// carry no idempotency key) and no cancellation of in-flight work. Callers
// that need debounce apply it at the page boundary.
type Coordinator struct {
	cache   Invalidator
	metrics *metrics.Collector
	log     logging.Logger
}

func New(cache Invalidator, collector *metrics.Collector, log logging.Logger) *Coordinator {
	return &Coordinator{cache: cache, metrics: collector, log: log}
}

// Perform executes op. On success every key in invalidates is marked stale
// and the operation's result is returned. On failure nothing is invalidated
// and the error is a MutationError whose Detail carries the backend's
// message verbatim when present.
func (c *Coordinator) Perform(ctx context.Context, op Operation, invalidates ...string) (any, error) {
	result, err := op(ctx)
	if err != nil {
		c.metrics.RecordMutation("failure")
		c.log.Warn(ctx, "mutation rejected", "error", err)
		return nil, &common.MutationError{Detail: common.Detail(err), Err: err}
	}

	for _, key := range invalidates {
		c.cache.Invalidate(key)
	}
	c.metrics.RecordMutation("success")
	c.log.Debug(ctx, "mutation applied", "invalidated", invalidates)
	return result, nil
}
