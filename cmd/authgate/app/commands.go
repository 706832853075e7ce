// SPDX-FileCopyrightText: Copyright 2025 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

// Package app provides the entry point for the authgate command-line application.
package app

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/authgate/authgate/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:               "authgate",
	DisableAutoGenTag: true,
	Short:             "Authentication gateway in front of AWS Cognito",
	Long: `Authgate exposes a stable set of authentication operations (sign-in,
sign-up, confirmation, password reset) over HTTP and translates AWS Cognito
outcomes into a fixed, provider-independent response contract.`,
	Run: func(cmd *cobra.Command, _ []string) {
		// If no subcommand is provided, print help
		if err := cmd.Help(); err != nil {
			logger.Errorf("Error displaying help: %v", err)
		}
	},
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.Initialize()
	},
}

// NewRootCmd creates a new root command for the authgate CLI.
func NewRootCmd() *cobra.Command {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	if err := viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		logger.Errorf("Error binding debug flag: %v", err)
	}

	rootCmd.AddCommand(serveCmd)

	return rootCmd
}
