// SPDX-FileCopyrightText: Copyright 2025 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingFields(t *testing.T) {
	t.Parallel()

	required := []string{"email", "password", "firstName", "lastName"}

	tests := []struct {
		name    string
		body    map[string]any
		missing []string
	}{
		{
			name: "all present",
			body: map[string]any{
				"email": "a@b.c", "password": "x", "firstName": "A", "lastName": "B",
			},
			missing: nil,
		},
		{
			name:    "empty body reports all fields in declaration order",
			body:    map[string]any{},
			missing: []string{"email", "password", "firstName", "lastName"},
		},
		{
			name: "empty string counts as missing",
			body: map[string]any{
				"email": "", "password": "x", "firstName": "A", "lastName": "B",
			},
			missing: []string{"email"},
		},
		{
			name: "multiple missing preserve declaration order",
			body: map[string]any{
				"password": "x", "firstName": "",
			},
			missing: []string{"email", "firstName", "lastName"},
		},
		{
			name: "explicit null counts as missing",
			body: map[string]any{
				"email": nil, "password": "x", "firstName": "A", "lastName": "B",
			},
			missing: []string{"email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.missing, missingFields(tt.body, required))
		})
	}
}

func TestIsBlank(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		blank bool
	}{
		{"nil", nil, true},
		{"empty string", "", true},
		{"non-empty string", "x", false},
		{"false", false, true},
		{"true", true, false},
		{"zero number", float64(0), true},
		{"non-zero number", float64(7), false},
		{"empty array", []any{}, true},
		{"non-empty array", []any{"x"}, false},
		{"empty object", map[string]any{}, true},
		{"non-empty object", map[string]any{"k": "v"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.blank, isBlank(tt.value))
		})
	}
}

func TestNormalizePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"/auth/sign-in", "/auth/sign-in"},
		{"/auth/sign-in/", "/auth/sign-in"},
		{"/auth/sign-in///", "/auth/sign-in"},
		{"/Auth/Sign-In", "/auth/sign-in"},
		{"/AUTH/RESET-PASSWORD/", "/auth/reset-password"},
		{"/", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, normalizePath(tt.in))
		})
	}
}

func TestStringField(t *testing.T) {
	t.Parallel()

	body := map[string]any{
		"name":  "alice",
		"count": float64(42),
	}

	assert.Equal(t, "alice", stringField(body, "name"))
	assert.Equal(t, "42", stringField(body, "count"))
	assert.Equal(t, "", stringField(body, "absent"))
}
