package dto

import "github.com/ejemplo/tienda-cliente/internal/domain/entity"

// UsuarioDTO usuario tal como lo lista GET /api/admin/users.
type UsuarioDTO struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

// ToEntity convierte el DTO en la entidad de dominio.
func (d UsuarioDTO) ToEntity() entity.Usuario {
	return entity.Usuario{ID: d.ID, Username: d.Username, Email: d.Email, Roles: d.Roles}
}

// UsuariosToEntities convierte un listado completo.
func UsuariosToEntities(ds []UsuarioDTO) []entity.Usuario {
	out := make([]entity.Usuario, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.ToEntity())
	}
	return out
}
