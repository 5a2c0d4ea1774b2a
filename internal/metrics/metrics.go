package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "salon_admin",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route.",
		},
		[]string{"route"},
	)

	backendRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "salon_admin",
			Name:      "backend_requests_total",
			Help:      "Backend API calls by operation and outcome.",
		},
		[]string{"op", "outcome"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, backendRequests)
	})
}

// IncHTTP increments the counter for a route label.
func IncHTTP(route string) {
	httpRequests.WithLabelValues(route).Inc()
}

// IncBackend records one backend call for an operation.
func IncBackend(op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	backendRequests.WithLabelValues(op, outcome).Inc()
}
