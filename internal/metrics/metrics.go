// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ticketfoot_http_requests_total",
		Help: "HTTP requests by method, route and status code.",
	}, []string{"method", "path", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ticketfoot_http_request_duration_seconds",
		Help:    "HTTP request latency by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	ReservationsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ticketfoot_reservations_created_total",
		Help: "Successfully committed reservations.",
	})

	ReservationsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ticketfoot_reservations_rejected_total",
		Help: "Rejected reservation attempts by reason.",
	}, []string{"reason"})

	EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ticketfoot_events_published_total",
		Help: "Messages published to NATS by subject.",
	}, []string{"subject"})

	EventPublishFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ticketfoot_event_publish_failures_total",
		Help: "Failed NATS publishes by subject.",
	}, []string{"subject"})

	EmailsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ticketfoot_confirmation_emails_sent_total",
		Help: "Confirmation emails delivered to the SMTP server.",
	})

	EmailsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ticketfoot_confirmation_emails_failed_total",
		Help: "Confirmation emails that could not be sent.",
	})
)
