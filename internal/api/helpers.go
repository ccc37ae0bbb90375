// DalatGuide - Da Lat Tourism Recommendations and Travel Chat Assistant
// Copyright 2026 DalatGuide Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dalatguide/dalatguide

package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/dalatguide/dalatguide/internal/logging"
)

// errorResponse is the uniform error payload.
type errorResponse struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondJSON writes v as a JSON response.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")

	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("failed to write JSON response")
	}
}

// respondError logs err and writes the uniform error payload. The internal
// error never reaches the client.
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	if err != nil {
		logging.Error().Str("code", code).Err(err).Msg("api error")
	}
	respondJSON(w, status, errorResponse{
		Status:  "error",
		Code:    code,
		Message: message,
	})
}
