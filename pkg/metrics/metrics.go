package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	LeadsCreatedCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "leads_created_count",
			Help: "Total number of leads created",
		},
	)

	PaymentsProcessedCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_processed_count",
			Help: "Total number of payments processed",
		},
		[]string{"status"},
	)

	CampaignDispatchCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaign_dispatch_count",
			Help: "Total number of campaign dispatch events published",
		},
		[]string{"channel"},
	)
)

// RecordHTTPRequestDuration records one served request.
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}
