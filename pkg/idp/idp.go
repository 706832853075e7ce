// SPDX-FileCopyrightText: Copyright 2025 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

// Package idp defines the capability interface to the external identity
// provider, along with the normalized parameter and result types every
// implementation must speak.
//
// Implementations return *Error for failures the provider reports with a
// known reason (wrong password, duplicate user, bad code). Any other error
// is an invocation failure: network trouble, a malformed provider response,
// or anything else not expressible as a business outcome. Callers
// discriminate with errors.As.
package idp

import "context"

//go:generate mockgen -destination=mocks/mock_provider.go -package=mocks -source=idp.go Provider

// Tokens is the normalized result of a successful authentication.
// Individual tokens may be empty when the provider withholds them; the
// caller passes them through without interpretation.
type Tokens struct {
	IDToken      string
	AccessToken  string
	RefreshToken string
}

// RegisterParams carries the attributes collected at sign-up.
type RegisterParams struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Registration is the normalized result of a successful sign-up.
type Registration struct {
	// Confirmed reports whether the account is already usable or still
	// pending confirmation (e.g. waiting for an emailed code).
	Confirmed bool

	// SubjectID is the provider-assigned stable identifier for the account.
	SubjectID string
}

// Provider is the narrow boundary to the external identity provider.
// Each method is a single synchronous round trip; no retries are performed
// at this layer, so a caller cannot accidentally duplicate a sign-up or a
// password-reset attempt.
type Provider interface {
	// Authenticate verifies credentials and returns the provider's tokens.
	Authenticate(ctx context.Context, username, password string) (*Tokens, error)

	// Register creates a new account, typically pending confirmation.
	Register(ctx context.Context, params RegisterParams) (*Registration, error)

	// ConfirmRegistration completes sign-up with an emailed confirmation code.
	ConfirmRegistration(ctx context.Context, username, code string) error

	// InitiatePasswordReset starts the forgot-password flow for an account.
	InitiatePasswordReset(ctx context.Context, email string) error

	// ConfirmPasswordReset completes the forgot-password flow, setting a
	// new password if the verification code matches.
	ConfirmPasswordReset(ctx context.Context, email, code, newPassword string) error
}
