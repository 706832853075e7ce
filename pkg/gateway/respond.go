// SPDX-FileCopyrightText: Copyright 2025 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"encoding/json"
	"net/http"

	"github.com/authgate/authgate/pkg/logger"
)

// tokenData is the sign-in success payload.
type tokenData struct {
	IDToken      string `json:"idToken"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// registrationData is the sign-up success payload.
type registrationData struct {
	UserConfirmed bool   `json:"userConfirmed"`
	UserSub       string `json:"userSub"`
}

// messageData is the success payload for operations that only acknowledge.
type messageData struct {
	Message string `json:"message"`
}

// successEnvelope wraps every success payload. The success flag makes the
// two envelope shapes distinguishable without inspecting the HTTP status.
type successEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// errorEnvelope is the uniform failure shape for every error path.
type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// respondSuccess writes a success envelope with the given payload.
func respondSuccess(w http.ResponseWriter, status int, data any) {
	respond(w, status, successEnvelope{Success: true, Data: data})
}

// respondError writes a failure envelope with the given message.
func respondError(w http.ResponseWriter, status int, message string) {
	respond(w, status, errorEnvelope{Success: false, Error: message})
}

func respond(w http.ResponseWriter, status int, envelope any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		// Headers are already written; all we can do is record it.
		logger.Errorf("Failed to encode response: %v", err)
	}
}
