package backend

import (
	"context"
	"net/http"

	"github.com/jhoicas/inventario-console/internal/application/dto"
)

// SignIn POST /api/auth/sign-in.
func (c *Client) SignIn(ctx context.Context, in dto.LoginRequest) (*dto.TokenResponse, error) {
	var out dto.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/sign-in", "", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SignUp POST /api/auth/sign-up.
func (c *Client) SignUp(ctx context.Context, in dto.SignUpRequest) (*dto.TokenResponse, error) {
	var out dto.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/sign-up", "", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
