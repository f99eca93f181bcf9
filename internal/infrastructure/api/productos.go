package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ejemplo/tienda-cliente/internal/application/dto"
	"github.com/ejemplo/tienda-cliente/internal/domain/entity"
)

// ListarProductos devuelve el catálogo completo.
func (c *Client) ListarProductos(ctx context.Context) ([]entity.Producto, error) {
	var out []dto.ProductoDTO
	if err := c.do(ctx, http.MethodGet, "/api/productos", nil, nil, &out); err != nil {
		return nil, err
	}
	return dto.ProductosToEntities(out), nil
}

// BuscarProductos filtra por nombre (GET /api/productos/buscar?nombre=).
func (c *Client) BuscarProductos(ctx context.Context, nombre string) ([]entity.Producto, error) {
	var out []dto.ProductoDTO
	q := url.Values{"nombre": {nombre}}
	if err := c.do(ctx, http.MethodGet, "/api/productos/buscar", q, nil, &out); err != nil {
		return nil, err
	}
	return dto.ProductosToEntities(out), nil
}

// ProductosEnStock devuelve solo productos con existencias.
func (c *Client) ProductosEnStock(ctx context.Context) ([]entity.Producto, error) {
	var out []dto.ProductoDTO
	if err := c.do(ctx, http.MethodGet, "/api/productos/en-stock", nil, nil, &out); err != nil {
		return nil, err
	}
	return dto.ProductosToEntities(out), nil
}

// ObtenerProducto devuelve un producto por id.
func (c *Client) ObtenerProducto(ctx context.Context, id string) (entity.Producto, error) {
	var out dto.ProductoDTO
	if err := c.do(ctx, http.MethodGet, "/api/productos/"+id, nil, nil, &out); err != nil {
		return entity.Producto{}, err
	}
	return out.ToEntity(), nil
}

// CrearProducto da de alta un producto (solo admin).
func (c *Client) CrearProducto(ctx context.Context, p entity.Producto) (entity.Producto, error) {
	var out dto.ProductoDTO
	in := dto.ProductoFromEntity(p)
	if err := c.do(ctx, http.MethodPost, "/api/productos", nil, in, &out); err != nil {
		return entity.Producto{}, err
	}
	return out.ToEntity(), nil
}

// ActualizarProducto reemplaza un producto existente (solo admin).
func (c *Client) ActualizarProducto(ctx context.Context, p entity.Producto) (entity.Producto, error) {
	var out dto.ProductoDTO
	in := dto.ProductoFromEntity(p)
	if err := c.do(ctx, http.MethodPut, "/api/productos/"+p.ID, nil, in, &out); err != nil {
		return entity.Producto{}, err
	}
	return out.ToEntity(), nil
}

// EliminarProducto borra un producto (solo admin).
func (c *Client) EliminarProducto(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/productos/"+id, nil, nil, nil)
}
