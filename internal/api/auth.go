package api

import (
	"context"

	"github.com/jonathan/jobmatch-cli/internal/types"
)

// Login exchanges credentials for a bearer token and the identity it belongs to.
func (c *Client) Login(ctx context.Context, req *types.LoginRequest) (*types.AuthResponse, error) {
	var out types.AuthResponse
	resp, err := c.rc.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/auth/login")
	if err != nil {
		return nil, wrapTransport("login", err)
	}
	if err := c.checkResponse(resp, out.Success); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a new identity and returns the same envelope as Login.
func (c *Client) Register(ctx context.Context, req *types.RegisterRequest) (*types.AuthResponse, error) {
	var out types.AuthResponse
	resp, err := c.rc.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/auth/register")
	if err != nil {
		return nil, wrapTransport("register", err)
	}
	if err := c.checkResponse(resp, out.Success); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me fetches the identity the current credential belongs to.
func (c *Client) Me(ctx context.Context) (*types.Identity, error) {
	var out types.Identity
	resp, err := c.rc.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/auth/me")
	if err != nil {
		return nil, wrapTransport("me", err)
	}
	if err := c.checkResponse(resp, true); err != nil {
		return nil, err
	}
	return &out, nil
}
