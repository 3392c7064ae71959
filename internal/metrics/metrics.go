// Package metrics holds the process-wide Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hostelez",
		Name:      "http_requests_total",
		Help:      "HTTP requests by route, method and status.",
	}, []string{"route", "method", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "hostelez",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	ScanRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hostelez",
		Name:      "scan_runs_total",
		Help:      "Reminder scan runs by job and result.",
	}, []string{"job", "result"})

	RemindersDispatched = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hostelez",
		Name:      "reminders_dispatched_total",
		Help:      "Reminders handed to the queue by kind.",
	}, []string{"kind"})

	RemindersDelivered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hostelez",
		Name:      "reminders_delivered_total",
		Help:      "Reminders recorded in the inbox by kind.",
	}, []string{"kind"})
)
