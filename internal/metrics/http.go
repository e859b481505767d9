package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameHTTPRequests        = "http_requests_total"
	NameHTTPRequestDuration = "http_request_duration_seconds"
	LabelMethod             = "method"
	LabelRoute              = "route"
	LabelStatus             = "status"
)

var HTTPRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameHTTPRequests,
		Help:      "Total HTTP requests",
		Namespace: Namespace,
	},
	[]string{LabelMethod, LabelRoute, LabelStatus},
)

var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:      NameHTTPRequestDuration,
		Help:      "HTTP requests duration",
		Namespace: Namespace,
		Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.3, 1, 3},
	},
	[]string{LabelMethod, LabelRoute},
)
