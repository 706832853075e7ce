// SPDX-FileCopyrightText: Copyright 2025 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/authgate/authgate/pkg/idp"
)

// errorMapping is the response a given provider rejection translates to.
type errorMapping struct {
	status  int
	message string
}

// operation is the static contract for one authentication endpoint: the
// fields it requires, the provider call it makes, and how every known
// provider rejection translates. The table is built once at construction
// and never mutated.
type operation struct {
	name           string
	requiredFields []string
	invoke         func(ctx context.Context, provider idp.Provider, body map[string]any) (any, error)
	errors         map[idp.ErrorCode]errorMapping
	// fallback handles provider rejections whose code is not in errors.
	// Every operation must define one; an unrecognized rejection is still
	// a business failure, never an internal error.
	fallback errorMapping
}

// Route paths, matched after trailing-slash stripping and case folding.
const (
	pathSignIn               = "/auth/sign-in"
	pathSignUp               = "/auth/sign-up"
	pathConfirmSignUp        = "/auth/confirm-sign-up"
	pathResetPassword        = "/auth/reset-password"
	pathConfirmResetPassword = "/auth/confirm-reset-password"
)

// operations builds the five-entry route table.
func operations() map[string]*operation {
	return map[string]*operation{
		pathSignIn: {
			name:           "sign-in",
			requiredFields: []string{"username", "password"},
			invoke: func(ctx context.Context, provider idp.Provider, body map[string]any) (any, error) {
				tokens, err := provider.Authenticate(ctx, stringField(body, "username"), stringField(body, "password"))
				if err != nil {
					return nil, err
				}
				return tokenData{
					IDToken:      tokens.IDToken,
					AccessToken:  tokens.AccessToken,
					RefreshToken: tokens.RefreshToken,
				}, nil
			},
			errors: map[idp.ErrorCode]errorMapping{
				idp.CodeNotAuthorized: {http.StatusUnauthorized, "Invalid username or password"},
				idp.CodeUserNotFound:  {http.StatusUnauthorized, "Invalid username or password"},
			},
			fallback: errorMapping{http.StatusBadRequest, "Authentication failed"},
		},
		pathSignUp: {
			name:           "sign-up",
			requiredFields: []string{"email", "password", "firstName", "lastName"},
			invoke: func(ctx context.Context, provider idp.Provider, body map[string]any) (any, error) {
				reg, err := provider.Register(ctx, idp.RegisterParams{
					Email:     stringField(body, "email"),
					Password:  stringField(body, "password"),
					FirstName: stringField(body, "firstName"),
					LastName:  stringField(body, "lastName"),
				})
				if err != nil {
					return nil, err
				}
				return registrationData{
					UserConfirmed: reg.Confirmed,
					UserSub:       reg.SubjectID,
				}, nil
			},
			errors: map[idp.ErrorCode]errorMapping{
				idp.CodeUsernameExists: {http.StatusBadRequest, "Email already in use"},
			},
			fallback: errorMapping{http.StatusBadRequest, "Sign up failed"},
		},
		pathConfirmSignUp: {
			name:           "confirm-sign-up",
			requiredFields: []string{"username", "confirmationCode"},
			invoke: func(ctx context.Context, provider idp.Provider, body map[string]any) (any, error) {
				err := provider.ConfirmRegistration(ctx, stringField(body, "username"), stringField(body, "confirmationCode"))
				if err != nil {
					return nil, err
				}
				return messageData{Message: "User confirmed successfully"}, nil
			},
			errors: map[idp.ErrorCode]errorMapping{
				idp.CodeUserNotFound:  {http.StatusNotFound, "User not found"},
				idp.CodeMismatch:      {http.StatusBadRequest, "Invalid confirmation code"},
				idp.CodeNotAuthorized: {http.StatusBadRequest, "User already confirmed"},
			},
			fallback: errorMapping{http.StatusBadRequest, "Confirmation failed"},
		},
		pathResetPassword: {
			name:           "reset-password",
			requiredFields: []string{"email"},
			invoke: func(ctx context.Context, provider idp.Provider, body map[string]any) (any, error) {
				if err := provider.InitiatePasswordReset(ctx, stringField(body, "email")); err != nil {
					return nil, err
				}
				return messageData{Message: "Password reset initiated"}, nil
			},
			errors: map[idp.ErrorCode]errorMapping{
				idp.CodeUserNotFound:     {http.StatusNotFound, "Email not found"},
				idp.CodeInvalidParameter: {http.StatusBadRequest, "Cannot reset password for unverified email"},
			},
			fallback: errorMapping{http.StatusBadRequest, "Reset password failed"},
		},
		pathConfirmResetPassword: {
			name:           "confirm-reset-password",
			requiredFields: []string{"email", "verificationCode", "password"},
			invoke: func(ctx context.Context, provider idp.Provider, body map[string]any) (any, error) {
				err := provider.ConfirmPasswordReset(
					ctx,
					stringField(body, "email"),
					stringField(body, "verificationCode"),
					stringField(body, "password"),
				)
				if err != nil {
					return nil, err
				}
				return messageData{Message: "Password reset confirmed"}, nil
			},
			errors: map[idp.ErrorCode]errorMapping{
				idp.CodeMismatch:     {http.StatusBadRequest, "Invalid verification code"},
				idp.CodeUserNotFound: {http.StatusNotFound, "Email not found"},
			},
			fallback: errorMapping{http.StatusBadRequest, "Password confirmation failed"},
		},
	}
}

// stringField returns the named body field as a string. Validation has
// already rejected blank values; non-string JSON values are formatted
// rather than dropped so the provider sees what the caller sent.
func stringField(body map[string]any, name string) string {
	switch v := body[name].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
