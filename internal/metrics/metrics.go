package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WebhookEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_events_total",
			Help: "Total product-creation webhook events by outcome",
		},
		[]string{"outcome"},
	)

	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Total outbound API requests by service and result",
		},
		[]string{"service", "result"},
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "upstream_request_duration_seconds",
			Help: "Duration of outbound API requests in seconds",
		},
		[]string{"service"},
	)
)

// Webhook outcome label values.
const (
	OutcomeDone        = "done"
	OutcomeAlreadyDone = "already_done"
	OutcomeCheckFailed = "check_failed"
	OutcomeWriteFailed = "write_failed"
)
