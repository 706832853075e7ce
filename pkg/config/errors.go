// SPDX-FileCopyrightText: Copyright 2025 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

package config

import "errors"

// Sentinel errors for configuration validation.
var (
	// ErrMissingRegion is returned when the AWS region is not configured.
	ErrMissingRegion = errors.New("missing required setting: AWS region")

	// ErrMissingClientID is returned when the Cognito client ID is not configured.
	ErrMissingClientID = errors.New("missing required setting: Cognito client ID")
)
