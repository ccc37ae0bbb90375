// DalatGuide - Da Lat Tourism Recommendations and Travel Chat Assistant
// Copyright 2026 DalatGuide Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dalatguide/dalatguide

// Package api provides the HTTP surface over the recommendation engine.
// Handlers stay thin: decode, delegate to the engine, encode. All decision
// logic lives in internal/engine.
package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"github.com/dalatguide/dalatguide/internal/engine"
	"github.com/dalatguide/dalatguide/internal/metrics"
)

// Version is the reported application version, overridable at build time.
var Version = "dev"

// Handler carries the dependencies of all API handlers.
type Handler struct {
	engine    *engine.Engine
	validate  *validator.Validate
	startTime time.Time
}

// NewHandler creates an API handler around the engine.
func NewHandler(eng *engine.Engine) *Handler {
	return &Handler{
		engine:    eng,
		validate:  validator.New(),
		startTime: time.Now(),
	}
}

// healthResponse is the liveness payload.
type healthResponse struct {
	Status        string `json:"status"`
	Version       string `json:"version"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	respondJSON(w, http.StatusOK, healthResponse{
		Status:        "ok",
		Version:       Version,
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
	})
	metrics.ObserveRequest("health", strconv.Itoa(http.StatusOK), started)
}

// Recommendations returns the currently-open places ranked for the current
// weather.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	rec, err := h.engine.Recommend(r.Context(), time.Now())
	if err != nil {
		metrics.WeatherSignalErrors.Inc()
		respondError(w, http.StatusServiceUnavailable, "upstream_unavailable",
			"recommendations are temporarily unavailable", err)
		metrics.ObserveRequest("recommendations", strconv.Itoa(http.StatusServiceUnavailable), started)
		return
	}

	metrics.WeatherClassifications.WithLabelValues(rec.Weather.String()).Inc()
	respondJSON(w, http.StatusOK, rec)
	metrics.ObserveRequest("recommendations", strconv.Itoa(http.StatusOK), started)
}

// chatRequest is the chat endpoint body. The message is length-capped but
// may be empty, the engine answers empty queries with a prompt.
type chatRequest struct {
	Message string `json:"message" validate:"max=500"`
}

// Chat classifies a free-text query and returns the uniform result shape.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_body", "request body must be JSON with a message field", err)
		metrics.ObserveRequest("chat", strconv.Itoa(http.StatusBadRequest), started)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_message", "message is too long", err)
		metrics.ObserveRequest("chat", strconv.Itoa(http.StatusBadRequest), started)
		return
	}

	res, err := h.engine.Chat(r.Context(), req.Message, time.Now())
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, "upstream_unavailable",
			"the assistant is temporarily unavailable", err)
		metrics.ObserveRequest("chat", strconv.Itoa(http.StatusServiceUnavailable), started)
		return
	}

	metrics.ChatIntents.WithLabelValues(res.Intent.String()).Inc()
	respondJSON(w, http.StatusOK, res)
	metrics.ObserveRequest("chat", strconv.Itoa(http.StatusOK), started)
}
