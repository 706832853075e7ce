// SPDX-FileCopyrightText: Copyright 2025 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

package cognito

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/aws/smithy-go"

	"github.com/authgate/authgate/pkg/idp"
)

// Sentinel errors for client construction.
var (
	// ErrMissingRegion is returned when the AWS region is not configured.
	ErrMissingRegion = errors.New("AWS region is required")

	// ErrMissingClientID is returned when the app client ID is not configured.
	ErrMissingClientID = errors.New("Cognito client ID is required")
)

// translateError maps a Cognito SDK error onto the provider error taxonomy.
//
// Typed service exceptions become idp business failures with a closed code.
// Any other service-level rejection becomes a business failure with
// CodeUnknown. Errors that never reached the service (connection faults,
// timeouts, malformed responses) pass through wrapped, so callers see them
// as invocation failures rather than rejections.
func translateError(err error) error {
	var (
		notAuthorized    *types.NotAuthorizedException
		userNotFound     *types.UserNotFoundException
		usernameExists   *types.UsernameExistsException
		codeMismatch     *types.CodeMismatchException
		invalidParameter *types.InvalidParameterException
	)

	switch {
	case errors.As(err, &notAuthorized):
		return idp.NewError(idp.CodeNotAuthorized, notAuthorized.ErrorMessage())
	case errors.As(err, &userNotFound):
		return idp.NewError(idp.CodeUserNotFound, userNotFound.ErrorMessage())
	case errors.As(err, &usernameExists):
		return idp.NewError(idp.CodeUsernameExists, usernameExists.ErrorMessage())
	case errors.As(err, &codeMismatch):
		return idp.NewError(idp.CodeMismatch, codeMismatch.ErrorMessage())
	case errors.As(err, &invalidParameter):
		return idp.NewError(idp.CodeInvalidParameter, invalidParameter.ErrorMessage())
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return idp.NewError(idp.CodeUnknown, fmt.Sprintf("%s: %s", apiErr.ErrorCode(), apiErr.ErrorMessage()))
	}

	return fmt.Errorf("cognito call failed: %w", err)
}
