// SPDX-FileCopyrightText: Copyright 2025 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/authgate/authgate/pkg/config"
	"github.com/authgate/authgate/pkg/gateway"
	"github.com/authgate/authgate/pkg/idp/cognito"
	"github.com/authgate/authgate/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the authentication gateway",
	Long: `Start the HTTP server exposing the authentication operations.
The AWS region and Cognito app client ID are required; the process refuses
to start without them.`,
	RunE: runServe,
}

const (
	defaultGracefulTimeout = 30 * time.Second
	serverReadTimeout      = 10 * time.Second // Enough for headers and small JSON bodies
	serverWriteTimeout     = 30 * time.Second // Must cover one provider round trip
	serverIdleTimeout      = 60 * time.Second // Keep connections alive for reuse
)

func init() {
	serveCmd.Flags().String("address", ":8080", "Address to listen on")
	serveCmd.Flags().String("aws-region", "", "AWS region hosting the Cognito user pool")
	serveCmd.Flags().String("cognito-client-id", "", "Cognito app client ID")
	serveCmd.Flags().String("cors-origin", "*", "Value for Access-Control-Allow-Origin")

	for flag, env := range map[string]string{
		"address":           "AUTHGATE_ADDRESS",
		"aws-region":        "AWS_REGION",
		"cognito-client-id": "COGNITO_CLIENT_ID",
		"cors-origin":       "AUTHGATE_CORS_ORIGIN",
	} {
		if err := viper.BindPFlag(flag, serveCmd.Flags().Lookup(flag)); err != nil {
			logger.Fatalf("Failed to bind %s flag: %v", flag, err)
		}
		if err := viper.BindEnv(flag, env); err != nil {
			logger.Fatalf("Failed to bind %s env var: %v", env, err)
		}
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	provider, err := cognito.New(ctx, cfg.Region, cfg.ClientID)
	if err != nil {
		return fmt.Errorf("failed to create identity provider client: %w", err)
	}

	router := gateway.NewRouter(provider, cfg.CORSOrigin)

	server := &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: serverWriteTimeout,
		IdleTimeout:  serverIdleTimeout,
	}

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Server listening on %s", cfg.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
		logger.Info("Shutting down server...")
	}

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultGracefulTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
		return err
	}

	logger.Info("Server shutdown complete")
	return nil
}
