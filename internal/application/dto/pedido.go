package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ejemplo/tienda-cliente/internal/domain/entity"
)

// ItemPedidoDTO línea de pedido en el formato de la API.
type ItemPedidoDTO struct {
	ProductoID     string          `json:"productoId"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario,omitempty"`
}

// PedidoDTO representación JSON de un pedido.
type PedidoDTO struct {
	ID        string          `json:"id"`
	UsuarioID string          `json:"usuarioId"`
	Productos []ItemPedidoDTO `json:"productos"`
	Total     decimal.Decimal `json:"total"`
	Fecha     time.Time       `json:"fecha"`
	Estado    string          `json:"estado"`
}

// ToEntity convierte el DTO en la entidad de dominio. Un estado desconocido se
// conserva tal cual (en mayúsculas) en lugar de perder el pedido completo.
func (d PedidoDTO) ToEntity() entity.Pedido {
	estado, err := entity.ParseEstado(d.Estado)
	if err != nil {
		estado = entity.EstadoPedido(d.Estado)
	}
	items := make([]entity.ItemPedido, 0, len(d.Productos))
	for _, it := range d.Productos {
		items = append(items, entity.ItemPedido{
			ProductoID:     it.ProductoID,
			Cantidad:       it.Cantidad,
			PrecioUnitario: it.PrecioUnitario,
		})
	}
	return entity.Pedido{
		ID:        d.ID,
		UsuarioID: d.UsuarioID,
		Productos: items,
		Total:     d.Total,
		Fecha:     d.Fecha,
		Estado:    estado,
	}
}

// PedidoFromEntity construye el DTO a partir de la entidad.
func PedidoFromEntity(p entity.Pedido) PedidoDTO {
	items := make([]ItemPedidoDTO, 0, len(p.Productos))
	for _, it := range p.Productos {
		items = append(items, ItemPedidoDTO{
			ProductoID:     it.ProductoID,
			Cantidad:       it.Cantidad,
			PrecioUnitario: it.PrecioUnitario,
		})
	}
	return PedidoDTO{
		ID:        p.ID,
		UsuarioID: p.UsuarioID,
		Productos: items,
		Total:     p.Total,
		Fecha:     p.Fecha,
		Estado:    string(p.Estado),
	}
}

// PedidosToEntities convierte un listado completo.
func PedidosToEntities(ds []PedidoDTO) []entity.Pedido {
	out := make([]entity.Pedido, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.ToEntity())
	}
	return out
}

// CrearPedidoRequest cuerpo de POST /api/pedidos: solo producto y cantidad,
// el servidor congela el precio unitario y calcula el total.
type CrearPedidoRequest struct {
	Productos []CrearPedidoItem `json:"productos"`
}

// CrearPedidoItem línea solicitada.
type CrearPedidoItem struct {
	ProductoID string `json:"productoId"`
	Cantidad   int    `json:"cantidad"`
}
