// SPDX-FileCopyrightText: Copyright 2025 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/authgate/authgate/pkg/idp"
)

// NewRouter assembles the HTTP handler: request plumbing, CORS, panic
// recovery, a liveness endpoint, and the operation dispatcher as the
// catch-all so unknown paths get the contract's 404 envelope.
func NewRouter(provider idp.Provider, corsOrigin string) http.Handler {
	g := New(provider)

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		requestLogger,
		corsHeaders(corsOrigin),
		recoverer,
	)

	r.Get("/health", getHealth)
	r.HandleFunc("/*", g.Dispatch)

	return r
}

// getHealth is a liveness probe. The gateway holds no state and no
// long-lived provider connection, so reachability is the whole check.
func getHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
