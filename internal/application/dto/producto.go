package dto

import (
	"github.com/shopspring/decimal"

	"github.com/ejemplo/tienda-cliente/internal/domain/entity"
)

// ProductoDTO representación JSON de un producto tal como viaja por la API.
// El precio es numérico crudo en ambas direcciones; el formateo vive en la vista.
type ProductoDTO struct {
	ID          string          `json:"id,omitempty"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
	Categoria   string          `json:"categoria,omitempty"`
	Activo      bool            `json:"activo,omitempty"`
}

// ToEntity convierte el DTO en la entidad de dominio.
func (d ProductoDTO) ToEntity() entity.Producto {
	return entity.Producto{
		ID:          d.ID,
		Nombre:      d.Nombre,
		Descripcion: d.Descripcion,
		Precio:      d.Precio,
		Stock:       d.Stock,
		Categoria:   d.Categoria,
		Activo:      d.Activo,
	}
}

// ProductoFromEntity construye el DTO a partir de la entidad.
func ProductoFromEntity(p entity.Producto) ProductoDTO {
	return ProductoDTO{
		ID:          p.ID,
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		Precio:      p.Precio,
		Stock:       p.Stock,
		Categoria:   p.Categoria,
		Activo:      p.Activo,
	}
}

// ProductosToEntities convierte un listado completo.
func ProductosToEntities(ds []ProductoDTO) []entity.Producto {
	out := make([]entity.Producto, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.ToEntity())
	}
	return out
}
