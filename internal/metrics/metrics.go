// Package metrics collects and exposes Prometheus metrics for the resource
// cache and mutation coordinator.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records cache and mutation activity. A nil *Collector is valid
// and records nothing, so wiring metrics stays optional.
type Collector struct {
	cacheHits      *prometheus.CounterVec
	cacheMisses    *prometheus.CounterVec
	cacheCoalesced *prometheus.CounterVec
	fetchErrors    *prometheus.CounterVec
	fetchLatency   prometheus.Histogram
	mutations      *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		cacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_cache_hits_total",
			Help: "Resource cache hits by key.",
		}, []string{"key"}),
		cacheMisses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_cache_misses_total",
			Help: "Resource cache misses (fetches issued) by key.",
		}, []string{"key"}),
		cacheCoalesced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_cache_coalesced_total",
			Help: "Ensure calls that joined an in-flight fetch, by key.",
		}, []string{"key"}),
		fetchErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_fetch_errors_total",
			Help: "Failed resource fetches by key.",
		}, []string{"key"}),
		fetchLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "portal_fetch_latency_seconds",
			Help:    "Resource fetch latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_mutations_total",
			Help: "Mutation attempts by outcome.",
		}, []string{"outcome"}),
	}

	reg.MustRegister(
		c.cacheHits,
		c.cacheMisses,
		c.cacheCoalesced,
		c.fetchErrors,
		c.fetchLatency,
		c.mutations,
	)
	return c
}

func (c *Collector) RecordCacheHit(key string) {
	if c == nil {
		return
	}
	c.cacheHits.WithLabelValues(key).Inc()
}

func (c *Collector) RecordCacheMiss(key string) {
	if c == nil {
		return
	}
	c.cacheMisses.WithLabelValues(key).Inc()
}

func (c *Collector) RecordCoalesced(key string) {
	if c == nil {
		return
	}
	c.cacheCoalesced.WithLabelValues(key).Inc()
}

func (c *Collector) RecordFetchError(key string) {
	if c == nil {
		return
	}
	c.fetchErrors.WithLabelValues(key).Inc()
}

func (c *Collector) RecordFetchLatency(seconds float64) {
	if c == nil {
		return
	}
	c.fetchLatency.Observe(seconds)
}

func (c *Collector) RecordMutation(outcome string) {
	if c == nil {
		return
	}
	c.mutations.WithLabelValues(outcome).Inc()
}

// Handler serves the registry in the Prometheus text format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
