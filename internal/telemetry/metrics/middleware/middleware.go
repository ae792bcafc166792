package middleware

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Middleware wraps HTTP handlers with per-handler prometheus instrumentation.
type Middleware struct {
	registry prometheus.Registerer
	buckets  []float64
}

func New(registry prometheus.Registerer, buckets []float64) *Middleware {
	if buckets == nil {
		buckets = prometheus.ExponentialBuckets(0.1, 1.5, 5)
	}
	return &Middleware{
		registry: registry,
		buckets:  buckets,
	}
}

func (m *Middleware) WrapHandler(handlerName string, handler http.Handler) http.Handler {
	reg := prometheus.WrapRegistererWith(
		prometheus.Labels{"handler": handlerName},
		m.registry,
	)

	requestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Tracks the number of HTTP requests.",
		}, []string{"method", "code"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Tracks the latencies for HTTP requests.",
			Buckets: m.buckets,
		},
		[]string{"method", "code"},
	)
	reg.MustRegister(requestsTotal, requestDuration)

	return instrument(requestsTotal, requestDuration, handler)
}

func instrument(
	requestsTotal *prometheus.CounterVec,
	requestDuration *prometheus.HistogramVec,
	next http.Handler,
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		timer := prometheus.NewTimer(prometheus.ObserverFunc(func(seconds float64) {
			requestDuration.WithLabelValues(r.Method, strconv.Itoa(rw.status)).Observe(seconds)
		}))
		defer timer.ObserveDuration()

		next.ServeHTTP(rw, r)

		requestsTotal.WithLabelValues(r.Method, strconv.Itoa(rw.status)).Inc()
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
