package client

import (
	"context"
	"net/http"

	errorvalues "github.com/habithero/habitctl/internal/error_values"
	"github.com/habithero/habitctl/pkg/entity"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", &loginRequest{
		Username: username,
		Password: password,
	}, &resp)
	if err != nil {
		switch statusOf(err) {
		case http.StatusUnauthorized, http.StatusForbidden:
			return "", errorvalues.ErrWrongCredentials
		}
		return "", err
	}
	return resp.AccessToken, nil
}

func (c *Client) Register(ctx context.Context, username, email, password string) (*entity.User, error) {
	var user entity.User
	err := c.do(ctx, http.MethodPost, "/auth/register", &registerRequest{
		Username: username,
		Email:    email,
		Password: password,
	}, &user)
	if err != nil {
		if statusOf(err) == http.StatusConflict {
			return nil, errorvalues.ErrUserExists
		}
		return nil, err
	}
	return &user, nil
}

func (c *Client) Profile(ctx context.Context) (*entity.User, error) {
	var user entity.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &user); err != nil {
		if statusOf(err) == http.StatusUnauthorized {
			return nil, errorvalues.ErrNotAuthenticated
		}
		return nil, err
	}
	return &user, nil
}
