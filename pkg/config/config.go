// SPDX-FileCopyrightText: Copyright 2025 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads and validates the process-wide gateway configuration.
//
// Configuration is immutable after Load returns; the rest of the process
// receives it by value and never mutates it.
package config

import (
	"github.com/spf13/viper"
)

const (
	// defaultAddress is the listen address used when none is configured.
	defaultAddress = ":8080"

	// defaultCORSOrigin allows any origin. Deployments that front a single
	// web application should narrow this to that application's origin.
	defaultCORSOrigin = "*"
)

// Config holds the settings the gateway needs at startup. The provider
// region and client ID are required; the process must not start without them.
type Config struct {
	// Region is the AWS region hosting the Cognito user pool.
	Region string

	// ClientID is the Cognito app client ID used for all provider calls.
	ClientID string

	// Address is the HTTP listen address.
	Address string

	// CORSOrigin is the value emitted in Access-Control-Allow-Origin.
	CORSOrigin string
}

// Load resolves configuration from viper (flags and environment) and
// validates it. It returns an error rather than a partially valid Config.
func Load() (Config, error) {
	cfg := Config{
		Region:     viper.GetString("aws-region"),
		ClientID:   viper.GetString("cognito-client-id"),
		Address:    viper.GetString("address"),
		CORSOrigin: viper.GetString("cors-origin"),
	}

	if cfg.Address == "" {
		cfg.Address = defaultAddress
	}
	if cfg.CORSOrigin == "" {
		cfg.CORSOrigin = defaultCORSOrigin
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that all required settings are present.
func (c Config) Validate() error {
	if c.Region == "" {
		return ErrMissingRegion
	}
	if c.ClientID == "" {
		return ErrMissingClientID
	}
	return nil
}
