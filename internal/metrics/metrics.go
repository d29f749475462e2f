package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all Prometheus metrics.
type Registry struct {
	*prometheus.Registry

	// HTTP metrics
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight prometheus.Gauge

	// Call metrics
	callsTotal    *prometheus.CounterVec
	callDuration  *prometheus.HistogramVec
	batchJobs     *prometheus.CounterVec
	lifecycleRefs prometheus.Collector
}

// NewRegistry creates a new metrics registry with all metrics registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	// Register Go runtime metrics
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := &Registry{
		Registry: reg,

		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),

		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),

		httpRequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently in flight",
			},
		),
	}

	reg.MustRegister(r.httpRequestsTotal)
	reg.MustRegister(r.httpRequestDuration)
	reg.MustRegister(r.httpRequestsInFlight)

	// Call metrics
	r.callsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tacall_calls_total",
			Help: "Total number of indicator calls",
		},
		[]string{"function", "status"},
	)
	r.callDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tacall_call_duration_seconds",
			Help:    "Indicator call duration in seconds",
			Buckets: []float64{.00001, .0001, .001, .01, .1, 1},
		},
		[]string{"function"},
	)
	r.batchJobs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tacall_batch_jobs_total",
			Help: "Total number of batch jobs by outcome",
		},
		[]string{"status"},
	)

	reg.MustRegister(r.callsTotal)
	reg.MustRegister(r.callDuration)
	reg.MustRegister(r.batchJobs)

	return r
}

// RecordRequest records metrics for an HTTP request. route is the matched
// route pattern, never the raw path.
func (r *Registry) RecordRequest(method, route string, status int, duration float64) {
	statusStr := statusToString(status)
	r.httpRequestsTotal.WithLabelValues(method, route, statusStr).Inc()
	r.httpRequestDuration.WithLabelValues(method, route).Observe(duration)
}

// InFlightInc increments in-flight requests.
func (r *Registry) InFlightInc() {
	r.httpRequestsInFlight.Inc()
}

// InFlightDec decrements in-flight requests.
func (r *Registry) InFlightDec() {
	r.httpRequestsInFlight.Dec()
}

// RecordCall records an indicator call.
func (r *Registry) RecordCall(function, status string, duration float64) {
	r.callsTotal.WithLabelValues(function, status).Inc()
	r.callDuration.WithLabelValues(function).Observe(duration)
}

// RecordBatchJob records the outcome of one batch job.
func (r *Registry) RecordBatchJob(status string) {
	r.batchJobs.WithLabelValues(status).Inc()
}

// ObserveLifecycle exports the number of in-flight native calls. Only the
// first source is registered.
func (r *Registry) ObserveLifecycle(refs func() int) {
	if r.lifecycleRefs != nil {
		return
	}
	r.lifecycleRefs = prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "tacall_lifecycle_refs",
			Help: "Number of indicator calls holding the native library",
		},
		func() float64 { return float64(refs()) },
	)
	r.MustRegister(r.lifecycleRefs)
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.Registry, promhttp.HandlerOpts{Registry: r.Registry})
}

func statusToString(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	case status >= 200:
		return "2xx"
	default:
		return "1xx"
	}
}
