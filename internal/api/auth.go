package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"reframe-cli/internal/apperr"
)

// AuthClient talks to POST {base}/api/auth/{register,login}.
type AuthClient struct {
	c *Client
}

func NewAuthClient(c *Client) *AuthClient { return &AuthClient{c: c} }

// Credentials are validated locally before registration hits the network.
type Credentials struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

func (c Credentials) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.UserID,
			validation.Required.Error("user id is required"),
			validation.Length(4, 0).Error("user id must be at least 4 characters"),
		),
		validation.Field(&c.Password,
			validation.Required.Error("password is required"),
			validation.Length(6, 0).Error("password must be at least 6 characters"),
		),
	)
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Register creates an account and returns the session token. Length
// constraints fail locally with no network call.
func (a *AuthClient) Register(ctx context.Context, userID, password string) (string, error) {
	creds := Credentials{UserID: userID, Password: password}
	if err := creds.Validate(); err != nil {
		return "", fmt.Errorf("%w: %s", apperr.ErrValidation, err.Error())
	}
	return a.post(ctx, "/api/auth/register", creds, "registration failed")
}

// Login exchanges credentials for a session token.
func (a *AuthClient) Login(ctx context.Context, userID, password string) (string, error) {
	creds := Credentials{UserID: userID, Password: password}
	return a.post(ctx, "/api/auth/login", creds, "invalid id or password")
}

func (a *AuthClient) post(ctx context.Context, path string, creds Credentials, fallback string) (string, error) {
	resp, err := a.c.do(ctx, http.MethodPost, path, "", creds)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.New(serverMessage(resp, fallback))
	}
	var tr tokenResponse
	if err := decodeJSON(resp, &tr); err != nil {
		return "", fmt.Errorf("decoding auth response: %w", err)
	}
	if tr.Token == "" {
		return "", errors.New("auth response carried no token")
	}
	return tr.Token, nil
}
