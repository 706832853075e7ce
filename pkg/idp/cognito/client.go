// SPDX-FileCopyrightText: Copyright 2025 Authgate Authors
// SPDX-License-Identifier: Apache-2.0

// Package cognito implements the identity provider boundary against AWS
// Cognito user pools. It is the only package that knows Cognito exists.
package cognito

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"

	"github.com/authgate/authgate/pkg/idp"
)

// API defines the subset of Cognito operations the client uses, enabling
// mock injection for testing.
type API interface {
	InitiateAuth(
		ctx context.Context,
		params *cip.InitiateAuthInput,
		optFns ...func(*cip.Options),
	) (*cip.InitiateAuthOutput, error)
	SignUp(
		ctx context.Context,
		params *cip.SignUpInput,
		optFns ...func(*cip.Options),
	) (*cip.SignUpOutput, error)
	ConfirmSignUp(
		ctx context.Context,
		params *cip.ConfirmSignUpInput,
		optFns ...func(*cip.Options),
	) (*cip.ConfirmSignUpOutput, error)
	ForgotPassword(
		ctx context.Context,
		params *cip.ForgotPasswordInput,
		optFns ...func(*cip.Options),
	) (*cip.ForgotPasswordOutput, error)
	ConfirmForgotPassword(
		ctx context.Context,
		params *cip.ConfirmForgotPasswordInput,
		optFns ...func(*cip.Options),
	) (*cip.ConfirmForgotPasswordOutput, error)
}

// Client implements idp.Provider against a Cognito user pool app client.
type Client struct {
	api      API
	clientID string
}

var _ idp.Provider = (*Client)(nil)

// New creates a Client with a regional Cognito service client.
func New(ctx context.Context, region, clientID string) (*Client, error) {
	if region == "" {
		return nil, ErrMissingRegion
	}
	if clientID == "" {
		return nil, ErrMissingClientID
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &Client{api: cip.NewFromConfig(cfg), clientID: clientID}, nil
}

// Authenticate performs the USER_PASSWORD_AUTH flow and returns the token
// triad. Tokens the provider withheld come back as empty strings.
func (c *Client) Authenticate(ctx context.Context, username, password string) (*idp.Tokens, error) {
	out, err := c.api.InitiateAuth(ctx, &cip.InitiateAuthInput{
		AuthFlow: types.AuthFlowTypeUserPasswordAuth,
		ClientId: aws.String(c.clientID),
		AuthParameters: map[string]string{
			"USERNAME": username,
			"PASSWORD": password,
		},
	})
	if err != nil {
		return nil, translateError(err)
	}

	result := out.AuthenticationResult
	if result == nil {
		// Cognito answered without tokens, e.g. a challenge response for a
		// flow this gateway does not support.
		return &idp.Tokens{}, nil
	}

	return &idp.Tokens{
		IDToken:      aws.ToString(result.IdToken),
		AccessToken:  aws.ToString(result.AccessToken),
		RefreshToken: aws.ToString(result.RefreshToken),
	}, nil
}

// Register creates a new user with email, given_name and family_name
// attributes, keyed by email as the username.
func (c *Client) Register(ctx context.Context, params idp.RegisterParams) (*idp.Registration, error) {
	out, err := c.api.SignUp(ctx, &cip.SignUpInput{
		ClientId: aws.String(c.clientID),
		Username: aws.String(params.Email),
		Password: aws.String(params.Password),
		UserAttributes: []types.AttributeType{
			{Name: aws.String("email"), Value: aws.String(params.Email)},
			{Name: aws.String("given_name"), Value: aws.String(params.FirstName)},
			{Name: aws.String("family_name"), Value: aws.String(params.LastName)},
		},
	})
	if err != nil {
		return nil, translateError(err)
	}

	return &idp.Registration{
		Confirmed: out.UserConfirmed,
		SubjectID: aws.ToString(out.UserSub),
	}, nil
}

// ConfirmRegistration completes sign-up with an emailed confirmation code.
func (c *Client) ConfirmRegistration(ctx context.Context, username, code string) error {
	_, err := c.api.ConfirmSignUp(ctx, &cip.ConfirmSignUpInput{
		ClientId:         aws.String(c.clientID),
		Username:         aws.String(username),
		ConfirmationCode: aws.String(code),
	})
	if err != nil {
		return translateError(err)
	}
	return nil
}

// InitiatePasswordReset starts the forgot-password flow.
func (c *Client) InitiatePasswordReset(ctx context.Context, email string) error {
	_, err := c.api.ForgotPassword(ctx, &cip.ForgotPasswordInput{
		ClientId: aws.String(c.clientID),
		Username: aws.String(email),
	})
	if err != nil {
		return translateError(err)
	}
	return nil
}

// ConfirmPasswordReset completes the forgot-password flow.
func (c *Client) ConfirmPasswordReset(ctx context.Context, email, code, newPassword string) error {
	_, err := c.api.ConfirmForgotPassword(ctx, &cip.ConfirmForgotPasswordInput{
		ClientId:         aws.String(c.clientID),
		Username:         aws.String(email),
		ConfirmationCode: aws.String(code),
		Password:         aws.String(newPassword),
	})
	if err != nil {
		return translateError(err)
	}
	return nil
}
