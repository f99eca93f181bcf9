package api

import (
	"context"
	"net/http"

	"github.com/ejemplo/tienda-cliente/internal/application/dto"
)

// Login autentica contra POST /api/auth/login. No requiere token previo.
func (c *Client) Login(ctx context.Context, username, password string) (dto.LoginResponse, error) {
	var out dto.LoginResponse
	in := dto.LoginRequest{Username: username, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, in, &out); err != nil {
		return dto.LoginResponse{}, err
	}
	return out, nil
}

// Registrar da de alta un usuario vía POST /api/auth/register.
func (c *Client) Registrar(ctx context.Context, in dto.RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/api/auth/register", nil, in, nil)
}
