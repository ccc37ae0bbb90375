// DalatGuide - Da Lat Tourism Recommendations and Travel Chat Assistant
// Copyright 2026 DalatGuide Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dalatguide/dalatguide

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dalatguide/dalatguide/internal/config"
)

// NewRouter wires the middleware stack and routes.
func NewRouter(h *Handler, cfg *config.ServerConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))
	r.Use(httprate.LimitByIP(cfg.RateLimitRPM, time.Minute))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Get("/recommendations", h.Recommendations)
		r.Post("/chat", h.Chat)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

// requestID attaches a correlation ID to every request and echoes it in the
// X-Request-ID response header, reusing the caller's ID when present.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}
