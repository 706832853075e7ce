// SPDX-FileCopyrightText: Copyright 2025 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

package idp

import "fmt"

// ErrorCode is the closed set of reasons the identity provider can reject
// an operation. Provider adapters map their native error taxonomy onto
// these codes; nothing outside an adapter constructs them from raw strings.
type ErrorCode string

const (
	// CodeNotAuthorized covers wrong credentials and attempts to repeat a
	// completed action (e.g. confirming an already-confirmed account).
	CodeNotAuthorized ErrorCode = "not_authorized"

	// CodeUserNotFound means the account does not exist.
	CodeUserNotFound ErrorCode = "user_not_found"

	// CodeUsernameExists means an account with that identifier already exists.
	CodeUsernameExists ErrorCode = "username_exists"

	// CodeMismatch means a confirmation or verification code was wrong.
	CodeMismatch ErrorCode = "code_mismatch"

	// CodeInvalidParameter means the provider rejected a parameter value,
	// e.g. initiating a password reset for an unverified email.
	CodeInvalidParameter ErrorCode = "invalid_parameter"

	// CodeUnknown is a provider rejection whose reason is not in the closed
	// set above. It is still a business failure, never an invocation fault.
	CodeUnknown ErrorCode = "unknown"
)

// Error is a business failure reported by the identity provider: the
// provider answered, and the answer was a named rejection. Invocation
// failures (network faults, malformed responses) are ordinary errors and
// must never be wrapped in this type.
type Error struct {
	// Code classifies the rejection.
	Code ErrorCode

	// Message is the provider's raw diagnostic text. It is logged but
	// never returned to callers of the gateway.
	Message string
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("identity provider rejected operation: %s", e.Code)
	}
	return fmt.Sprintf("identity provider rejected operation: %s: %s", e.Code, e.Message)
}

// NewError constructs a business failure with the given code and raw
// provider message.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}
