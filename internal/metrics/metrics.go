// Package metrics exposes Prometheus instruments for the hub: outgoing
// Sleeper requests, identity lookup outcomes and served HTTP requests.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fwl_hub"

// Recorder owns a private registry so tests can build as many as they like.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry *prometheus.Registry

	sleeperRequests *prometheus.CounterVec
	sleeperLatency  *prometheus.HistogramVec
	identityLookups *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
	httpLatency     *prometheus.HistogramVec
}

// NewRecorder registers every instrument plus the Go and process collectors.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		sleeperRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sleeper_requests_total",
			Help:      "Sleeper API requests by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		sleeperLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sleeper_request_duration_seconds",
			Help:      "Latency of Sleeper API requests that reached the network.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
		identityLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "identity_lookups_total",
			Help:      "Startup identity lookups by slot and outcome.",
		}, []string{"slot", "outcome"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Served HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latency of served HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.sleeperRequests,
		r.sleeperLatency,
		r.identityLookups,
		r.httpRequests,
		r.httpLatency,
	)
	return r
}

// ObserveSleeperRequest implements sleeper.Recorder. Cache hits are counted
// but kept out of the latency histogram.
func (r *Recorder) ObserveSleeperRequest(endpoint, outcome string, d time.Duration) {
	if r == nil {
		return
	}
	r.sleeperRequests.WithLabelValues(endpoint, outcome).Inc()
	if outcome != "cache_hit" {
		r.sleeperLatency.WithLabelValues(endpoint).Observe(d.Seconds())
	}
}

// ObserveIdentityLookup implements identity.Recorder.
func (r *Recorder) ObserveIdentityLookup(slot, outcome string, _ time.Duration) {
	if r == nil {
		return
	}
	r.identityLookups.WithLabelValues(slot, outcome).Inc()
}

// ObserveHTTPRequest records one served request. route should be the
// router pattern, not the raw path, to bound label cardinality.
func (r *Recorder) ObserveHTTPRequest(route, method string, status int, d time.Duration) {
	if r == nil {
		return
	}
	r.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	r.httpLatency.WithLabelValues(route, method).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Gatherer exposes the registry for tests.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}
