// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the service's Prometheus collectors. A nil *Metrics is valid
// and records nothing, so components can run without an observability server.
type Metrics struct {
	AuthEvents        *prometheus.CounterVec
	ThrottleDecisions *prometheus.CounterVec
	ThrottleErrors    *prometheus.CounterVec
	SMSMessages       *prometheus.CounterVec
	HTTPRequests      *prometheus.CounterVec
	HTTPDuration      *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		AuthEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blissful_auth_events_total",
				Help: "Identity operations by event and result",
			},
			[]string{"event", "result"},
		),
		ThrottleDecisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blissful_throttle_decisions_total",
				Help: "Throttle decisions by guard and decision",
			},
			[]string{"guard", "decision"},
		),
		ThrottleErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blissful_throttle_errors_total",
				Help: "Throttle backend failures that let the request through",
			},
			[]string{"guard"},
		),
		SMSMessages: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blissful_sms_messages_total",
				Help: "Outbound SMS messages by gateway and result",
			},
			[]string{"gateway", "result"},
		),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blissful_http_requests_total",
				Help: "API requests by route, method and status",
			},
			[]string{"route", "method", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "blissful_http_request_duration_seconds",
				Help:    "API request latency by route",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
	}

	reg.MustRegister(
		m.AuthEvents,
		m.ThrottleDecisions,
		m.ThrottleErrors,
		m.SMSMessages,
		m.HTTPRequests,
		m.HTTPDuration,
	)
	return m
}

// RecordAuthEvent counts an identity operation outcome.
func (m *Metrics) RecordAuthEvent(event, result string) {
	if m == nil {
		return
	}
	m.AuthEvents.WithLabelValues(event, result).Inc()
}

// RecordThrottle counts a throttle decision ("allowed" or "rejected").
func (m *Metrics) RecordThrottle(guard, decision string) {
	if m == nil {
		return
	}
	m.ThrottleDecisions.WithLabelValues(guard, decision).Inc()
}

// RecordThrottleError counts a backend failure that failed open.
func (m *Metrics) RecordThrottleError(guard string) {
	if m == nil {
		return
	}
	m.ThrottleErrors.WithLabelValues(guard).Inc()
}

// RecordSMS counts an outbound message attempt.
func (m *Metrics) RecordSMS(gateway, result string) {
	if m == nil {
		return
	}
	m.SMSMessages.WithLabelValues(gateway, result).Inc()
}

// RecordHTTPRequest observes a finished API request.
func (m *Metrics) RecordHTTPRequest(route, method, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(route, method, status).Inc()
	m.HTTPDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}
