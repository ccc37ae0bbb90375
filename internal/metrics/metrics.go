// DalatGuide - Da Lat Tourism Recommendations and Travel Chat Assistant
// Copyright 2026 DalatGuide Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dalatguide/dalatguide

// Package metrics exposes Prometheus instrumentation for the HTTP surface
// and the classification engine.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// APIRequestsTotal counts HTTP requests by endpoint and status code.
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dalatguide_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"endpoint", "status"},
	)

	// APIRequestDuration tracks per-endpoint request latency.
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dalatguide_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// ChatIntents counts classified chat queries by resolved intent.
	ChatIntents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dalatguide_chat_intents_total",
			Help: "Total chat queries by classified intent",
		},
		[]string{"intent"},
	)

	// WeatherClassifications counts normalized weather readings by class.
	WeatherClassifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dalatguide_weather_classifications_total",
			Help: "Total weather readings by canonical class",
		},
		[]string{"class"},
	)

	// WeatherSignalErrors counts failed weather provider calls.
	WeatherSignalErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dalatguide_weather_signal_errors_total",
			Help: "Total weather signal failures",
		},
	)
)

// ObserveRequest records one finished HTTP request.
func ObserveRequest(endpoint, status string, started time.Time) {
	APIRequestsTotal.WithLabelValues(endpoint, status).Inc()
	APIRequestDuration.WithLabelValues(endpoint).Observe(time.Since(started).Seconds())
}
