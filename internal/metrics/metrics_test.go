package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestCollector_RecordsAndExposes(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordCacheHit("bookings")
	c.RecordCacheMiss("bookings")
	c.RecordCoalesced("bookings")
	c.RecordFetchError("requests")
	c.RecordFetchLatency(0.05)
	c.RecordMutation("success")
	c.RecordMutation("failure")

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body := rec.Body.String()
	for _, want := range []string{
		`portal_cache_hits_total{key="bookings"} 1`,
		`portal_cache_misses_total{key="bookings"} 1`,
		`portal_cache_coalesced_total{key="bookings"} 1`,
		`portal_fetch_errors_total{key="requests"} 1`,
		`portal_mutations_total{outcome="success"} 1`,
		`portal_mutations_total{outcome="failure"} 1`,
	} {
		require.True(t, strings.Contains(body, want), "missing %q in:\n%s", want, body)
	}
}

func TestCollector_NilIsSafe(t *testing.T) {
	var c *Collector

	c.RecordCacheHit("bookings")
	c.RecordCacheMiss("bookings")
	c.RecordCoalesced("bookings")
	c.RecordFetchError("bookings")
	c.RecordFetchLatency(0.1)
	c.RecordMutation("success")
}
