package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry owns the gateway and aggregator collectors. All methods are safe
// on a nil *Registry so components can run without metrics in tests.
type Registry struct {
	reg *prometheus.Registry

	proxyRequests  *prometheus.CounterVec
	proxyDuration  *prometheus.HistogramVec
	fetchFailures  *prometheus.CounterVec
	activeSessions prometheus.Gauge
}

func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		proxyRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "phishx_proxy_requests_total",
				Help: "Relayed calls to the upstream control API by method and outcome",
			},
			[]string{"method", "outcome"},
		),
		proxyDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "phishx_proxy_request_duration_seconds",
				Help:    "Duration of relayed upstream calls",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		fetchFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "phishx_dashboard_fetch_failures_total",
				Help: "Failed dashboard fetch branches by source",
			},
			[]string{"source"},
		),
		activeSessions: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "phishx_sessions_active",
				Help: "Open dashboard sessions",
			},
		),
	}

	r.reg.MustRegister(
		r.proxyRequests,
		r.proxyDuration,
		r.fetchFailures,
		r.activeSessions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

func (r *Registry) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

func (r *Registry) ObserveRelay(method, outcome string, d time.Duration) {
	if r == nil {
		return
	}
	r.proxyRequests.WithLabelValues(method, outcome).Inc()
	r.proxyDuration.WithLabelValues(method).Observe(d.Seconds())
}

func (r *Registry) FetchFailed(source string) {
	if r == nil {
		return
	}
	r.fetchFailures.WithLabelValues(source).Inc()
}

func (r *Registry) SetActiveSessions(n int) {
	if r == nil {
		return
	}
	r.activeSessions.Set(float64(n))
}
