package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ejemplo/tienda-cliente/internal/application/dto"
	"github.com/ejemplo/tienda-cliente/internal/domain/entity"
)

// ListarPedidosMios devuelve los pedidos del usuario autenticado.
func (c *Client) ListarPedidosMios(ctx context.Context) ([]entity.Pedido, error) {
	var out []dto.PedidoDTO
	if err := c.do(ctx, http.MethodGet, "/api/pedidos/mios", nil, nil, &out); err != nil {
		return nil, err
	}
	return dto.PedidosToEntities(out), nil
}

// ListarPedidos devuelve todos los pedidos (solo admin).
func (c *Client) ListarPedidos(ctx context.Context) ([]entity.Pedido, error) {
	var out []dto.PedidoDTO
	if err := c.do(ctx, http.MethodGet, "/api/pedidos", nil, nil, &out); err != nil {
		return nil, err
	}
	return dto.PedidosToEntities(out), nil
}

// ObtenerPedido devuelve un pedido por id.
func (c *Client) ObtenerPedido(ctx context.Context, id string) (entity.Pedido, error) {
	var out dto.PedidoDTO
	if err := c.do(ctx, http.MethodGet, "/api/pedidos/"+id, nil, nil, &out); err != nil {
		return entity.Pedido{}, err
	}
	return out.ToEntity(), nil
}

// CrearPedido envía el contenido del carrito y devuelve el pedido persistido
// con los totales calculados por el servidor.
func (c *Client) CrearPedido(ctx context.Context, items []entity.ItemCarrito) (entity.Pedido, error) {
	in := dto.CrearPedidoRequest{Productos: make([]dto.CrearPedidoItem, 0, len(items))}
	for _, it := range items {
		in.Productos = append(in.Productos, dto.CrearPedidoItem{ProductoID: it.ProductoID, Cantidad: it.Cantidad})
	}
	var out dto.PedidoDTO
	if err := c.do(ctx, http.MethodPost, "/api/pedidos", nil, in, &out); err != nil {
		return entity.Pedido{}, err
	}
	return out.ToEntity(), nil
}

// CambiarEstadoPedido pide la transición vía PUT /api/pedidos/{id}/estado?estado=.
// No refresca ningún listado: esa responsabilidad queda en quien llama.
func (c *Client) CambiarEstadoPedido(ctx context.Context, id string, estado entity.EstadoPedido) error {
	q := url.Values{"estado": {string(estado)}}
	return c.do(ctx, http.MethodPut, "/api/pedidos/"+id+"/estado", q, nil, nil)
}

// CancelarPedido pide la cancelación vía PUT /api/pedidos/{id}/cancelar.
func (c *Client) CancelarPedido(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/api/pedidos/"+id+"/cancelar", nil, nil, nil)
}
