package api

import (
	"context"
	"net/http"

	"github.com/ejemplo/tienda-cliente/internal/application/dto"
	"github.com/ejemplo/tienda-cliente/internal/domain/entity"
)

// ListarUsuarios devuelve los usuarios registrados (GET /api/admin/users, solo admin).
func (c *Client) ListarUsuarios(ctx context.Context) ([]entity.Usuario, error) {
	var out []dto.UsuarioDTO
	if err := c.do(ctx, http.MethodGet, "/api/admin/users", nil, nil, &out); err != nil {
		return nil, err
	}
	return dto.UsuariosToEntities(out), nil
}
