// SPDX-FileCopyrightText: Copyright 2025 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

package cognito

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authgate/authgate/pkg/idp"
)

// mockAPI implements API for testing. Each call records its input and
// returns the canned response.
type mockAPI struct {
	initiateAuthOut  *cip.InitiateAuthOutput
	initiateAuthIn   *cip.InitiateAuthInput
	signUpOut        *cip.SignUpOutput
	signUpIn         *cip.SignUpInput
	confirmSignUpIn  *cip.ConfirmSignUpInput
	forgotPasswordIn *cip.ForgotPasswordInput
	confirmForgotIn  *cip.ConfirmForgotPasswordInput
	err              error
}

func (m *mockAPI) InitiateAuth(
	_ context.Context, params *cip.InitiateAuthInput, _ ...func(*cip.Options),
) (*cip.InitiateAuthOutput, error) {
	m.initiateAuthIn = params
	return m.initiateAuthOut, m.err
}

func (m *mockAPI) SignUp(
	_ context.Context, params *cip.SignUpInput, _ ...func(*cip.Options),
) (*cip.SignUpOutput, error) {
	m.signUpIn = params
	return m.signUpOut, m.err
}

func (m *mockAPI) ConfirmSignUp(
	_ context.Context, params *cip.ConfirmSignUpInput, _ ...func(*cip.Options),
) (*cip.ConfirmSignUpOutput, error) {
	m.confirmSignUpIn = params
	return &cip.ConfirmSignUpOutput{}, m.err
}

func (m *mockAPI) ForgotPassword(
	_ context.Context, params *cip.ForgotPasswordInput, _ ...func(*cip.Options),
) (*cip.ForgotPasswordOutput, error) {
	m.forgotPasswordIn = params
	return &cip.ForgotPasswordOutput{}, m.err
}

func (m *mockAPI) ConfirmForgotPassword(
	_ context.Context, params *cip.ConfirmForgotPasswordInput, _ ...func(*cip.Options),
) (*cip.ConfirmForgotPasswordOutput, error) {
	m.confirmForgotIn = params
	return &cip.ConfirmForgotPasswordOutput{}, m.err
}

const testClientID = "test-client-id"

func TestClientAuthenticate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("returns token triad", func(t *testing.T) {
		t.Parallel()
		api := &mockAPI{
			initiateAuthOut: &cip.InitiateAuthOutput{
				AuthenticationResult: &types.AuthenticationResultType{
					IdToken:      aws.String("id-token"),
					AccessToken:  aws.String("access-token"),
					RefreshToken: aws.String("refresh-token"),
				},
			},
		}
		client := &Client{api: api, clientID: testClientID}

		tokens, err := client.Authenticate(ctx, "alice", "hunter2")
		require.NoError(t, err)
		assert.Equal(t, "id-token", tokens.IDToken)
		assert.Equal(t, "access-token", tokens.AccessToken)
		assert.Equal(t, "refresh-token", tokens.RefreshToken)

		require.NotNil(t, api.initiateAuthIn)
		assert.Equal(t, types.AuthFlowTypeUserPasswordAuth, api.initiateAuthIn.AuthFlow)
		assert.Equal(t, testClientID, aws.ToString(api.initiateAuthIn.ClientId))
		assert.Equal(t, "alice", api.initiateAuthIn.AuthParameters["USERNAME"])
		assert.Equal(t, "hunter2", api.initiateAuthIn.AuthParameters["PASSWORD"])
	})

	t.Run("nil authentication result yields empty tokens", func(t *testing.T) {
		t.Parallel()
		api := &mockAPI{initiateAuthOut: &cip.InitiateAuthOutput{}}
		client := &Client{api: api, clientID: testClientID}

		tokens, err := client.Authenticate(ctx, "alice", "hunter2")
		require.NoError(t, err)
		assert.Equal(t, &idp.Tokens{}, tokens)
	})

	t.Run("wrong password maps to not authorized", func(t *testing.T) {
		t.Parallel()
		api := &mockAPI{err: &types.NotAuthorizedException{Message: aws.String("Incorrect username or password.")}}
		client := &Client{api: api, clientID: testClientID}

		_, err := client.Authenticate(ctx, "alice", "wrong")
		var provErr *idp.Error
		require.ErrorAs(t, err, &provErr)
		assert.Equal(t, idp.CodeNotAuthorized, provErr.Code)
	})
}

func TestClientRegister(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("maps sign up result and attributes", func(t *testing.T) {
		t.Parallel()
		api := &mockAPI{
			signUpOut: &cip.SignUpOutput{
				UserConfirmed: false,
				UserSub:       aws.String("sub-123"),
			},
		}
		client := &Client{api: api, clientID: testClientID}

		reg, err := client.Register(ctx, idp.RegisterParams{
			Email:     "alice@example.com",
			Password:  "hunter2",
			FirstName: "Alice",
			LastName:  "Smith",
		})
		require.NoError(t, err)
		assert.False(t, reg.Confirmed)
		assert.Equal(t, "sub-123", reg.SubjectID)

		require.NotNil(t, api.signUpIn)
		assert.Equal(t, "alice@example.com", aws.ToString(api.signUpIn.Username))
		require.Len(t, api.signUpIn.UserAttributes, 3)
		assert.Equal(t, "email", aws.ToString(api.signUpIn.UserAttributes[0].Name))
		assert.Equal(t, "given_name", aws.ToString(api.signUpIn.UserAttributes[1].Name))
		assert.Equal(t, "Alice", aws.ToString(api.signUpIn.UserAttributes[1].Value))
		assert.Equal(t, "family_name", aws.ToString(api.signUpIn.UserAttributes[2].Name))
	})

	t.Run("duplicate email maps to username exists", func(t *testing.T) {
		t.Parallel()
		api := &mockAPI{err: &types.UsernameExistsException{Message: aws.String("User already exists")}}
		client := &Client{api: api, clientID: testClientID}

		_, err := client.Register(ctx, idp.RegisterParams{Email: "alice@example.com"})
		var provErr *idp.Error
		require.ErrorAs(t, err, &provErr)
		assert.Equal(t, idp.CodeUsernameExists, provErr.Code)
	})
}

func TestTranslateError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantCode idp.ErrorCode
	}{
		{
			name:     "not authorized",
			err:      &types.NotAuthorizedException{Message: aws.String("nope")},
			wantCode: idp.CodeNotAuthorized,
		},
		{
			name:     "user not found",
			err:      &types.UserNotFoundException{Message: aws.String("who")},
			wantCode: idp.CodeUserNotFound,
		},
		{
			name:     "username exists",
			err:      &types.UsernameExistsException{Message: aws.String("dup")},
			wantCode: idp.CodeUsernameExists,
		},
		{
			name:     "code mismatch",
			err:      &types.CodeMismatchException{Message: aws.String("bad code")},
			wantCode: idp.CodeMismatch,
		},
		{
			name:     "invalid parameter",
			err:      &types.InvalidParameterException{Message: aws.String("unverified")},
			wantCode: idp.CodeInvalidParameter,
		},
		{
			name: "unrecognized service error becomes unknown business failure",
			err: &smithy.GenericAPIError{
				Code:    "TooManyRequestsException",
				Message: "slow down",
			},
			wantCode: idp.CodeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			translated := translateError(tt.err)
			var provErr *idp.Error
			require.ErrorAs(t, translated, &provErr)
			assert.Equal(t, tt.wantCode, provErr.Code)
		})
	}
}

func TestTranslateErrorTransportFault(t *testing.T) {
	t.Parallel()

	cause := errors.New("dial tcp: connection refused")
	translated := translateError(cause)

	var provErr *idp.Error
	assert.False(t, errors.As(translated, &provErr), "transport fault must not become a business failure")
	assert.ErrorIs(t, translated, cause)
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	_, err := New(ctx, "", testClientID)
	require.ErrorIs(t, err, ErrMissingRegion)

	_, err = New(ctx, "us-east-1", "")
	require.ErrorIs(t, err, ErrMissingClientID)
}
