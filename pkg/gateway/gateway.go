// SPDX-FileCopyrightText: Copyright 2025 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

// Package gateway is the dispatch-and-translation core: it maps inbound
// paths to authentication operations, validates required fields, invokes
// the identity provider, and translates provider outcomes into a fixed
// provider-independent response contract.
package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/authgate/authgate/pkg/idp"
	"github.com/authgate/authgate/pkg/logger"
)

// Gateway dispatches authentication requests to the identity provider.
// It holds no mutable state; a single instance serves concurrent requests.
type Gateway struct {
	provider idp.Provider
	ops      map[string]*operation
}

// New creates a Gateway backed by the given identity provider.
func New(provider idp.Provider) *Gateway {
	return &Gateway{
		provider: provider,
		ops:      operations(),
	}
}

// Dispatch handles one authentication request end to end. Dispatch is
// method-agnostic: each path names exactly one operation, so the path alone
// selects it.
func (g *Gateway) Dispatch(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody(w, r)
	if !ok {
		return
	}

	op, ok := g.ops[normalizePath(r.URL.Path)]
	if !ok {
		respondError(w, http.StatusNotFound, fmt.Sprintf("Unknown endpoint: %s", r.URL.Path))
		return
	}

	if missing := missingFields(body, op.requiredFields); len(missing) > 0 {
		respondError(w, http.StatusBadRequest,
			fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", ")))
		return
	}

	payload, err := op.invoke(r.Context(), g.provider, body)
	if err != nil {
		respondOperationError(w, op, err)
		return
	}

	respondSuccess(w, http.StatusOK, payload)
}

// respondOperationError translates a provider error into the operation's
// documented response. Business failures map through the operation's error
// table; anything else is an invocation failure and surfaces as a generic
// 500 with the cause logged, never returned.
func respondOperationError(w http.ResponseWriter, op *operation, err error) {
	var provErr *idp.Error
	if errors.As(err, &provErr) {
		mapping, ok := op.errors[provErr.Code]
		if !ok {
			mapping = op.fallback
		}
		logger.Debugw("Provider rejected operation",
			"operation", op.name, "code", provErr.Code, "status", mapping.status)
		respondError(w, mapping.status, mapping.message)
		return
	}

	logger.Errorw("Provider invocation failed", "operation", op.name, "error", err)
	respondError(w, http.StatusInternalServerError, "Internal server error")
}

// decodeBody parses the optional JSON body into a field map. A missing or
// empty body decodes to an empty map. Malformed JSON is answered directly
// with a 400 and ok=false, before any routing happens.
func decodeBody(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	body := map[string]any{}
	if r.Body == nil {
		return body, true
	}

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, true
		}
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return nil, false
	}
	return body, true
}

// normalizePath strips trailing slashes and case-folds the path for route
// lookup. The original path is kept for diagnostics in the 404 message.
func normalizePath(path string) string {
	return strings.ToLower(strings.TrimRight(path, "/"))
}
