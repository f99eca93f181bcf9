// Package catalog consulta el catálogo de productos y retiene el último stock
// observado, que es el techo que respeta el carrito. El estado es una
// instancia explícita inyectada a quien la necesita, no una variable global
// compartida entre páginas.
package catalog

import (
	"context"

	"github.com/ejemplo/tienda-cliente/internal/domain/entity"
	"github.com/ejemplo/tienda-cliente/pkg/logger"
)

// Gateway es lo que el usecase necesita del backend.
type Gateway interface {
	ListarProductos(ctx context.Context) ([]entity.Producto, error)
	BuscarProductos(ctx context.Context, nombre string) ([]entity.Producto, error)
	ProductosEnStock(ctx context.Context) ([]entity.Producto, error)
	ObtenerProducto(ctx context.Context, id string) (entity.Producto, error)
	CrearProducto(ctx context.Context, p entity.Producto) (entity.Producto, error)
	ActualizarProducto(ctx context.Context, p entity.Producto) (entity.Producto, error)
	EliminarProducto(ctx context.Context, id string) error
}

// UseCase casos de uso de catálogo (lectura para todos, escritura solo admin).
type UseCase struct {
	gw         Gateway
	observados map[string]entity.Producto
	log        *logger.Logger
}

// New construye el caso de uso.
func New(gw Gateway, log *logger.Logger) *UseCase {
	return &UseCase{gw: gw, observados: make(map[string]entity.Producto), log: log}
}

// Listar devuelve el catálogo completo y actualiza el stock observado.
func (uc *UseCase) Listar(ctx context.Context) ([]entity.Producto, error) {
	ps, err := uc.gw.ListarProductos(ctx)
	if err != nil {
		return nil, err
	}
	uc.recordar(ps...)
	return ps, nil
}

// Buscar filtra por nombre en el servidor.
func (uc *UseCase) Buscar(ctx context.Context, nombre string) ([]entity.Producto, error) {
	ps, err := uc.gw.BuscarProductos(ctx, nombre)
	if err != nil {
		return nil, err
	}
	uc.recordar(ps...)
	return ps, nil
}

// EnStock devuelve solo productos con existencias.
func (uc *UseCase) EnStock(ctx context.Context) ([]entity.Producto, error) {
	ps, err := uc.gw.ProductosEnStock(ctx)
	if err != nil {
		return nil, err
	}
	uc.recordar(ps...)
	return ps, nil
}

// Obtener devuelve un producto por id.
func (uc *UseCase) Obtener(ctx context.Context, id string) (entity.Producto, error) {
	p, err := uc.gw.ObtenerProducto(ctx, id)
	if err != nil {
		return entity.Producto{}, err
	}
	uc.recordar(p)
	return p, nil
}

// Guardar crea (sin id) o actualiza (con id) un producto; solo admin.
func (uc *UseCase) Guardar(ctx context.Context, p entity.Producto) (entity.Producto, error) {
	var (
		guardado entity.Producto
		err      error
	)
	if p.ID == "" {
		guardado, err = uc.gw.CrearProducto(ctx, p)
	} else {
		guardado, err = uc.gw.ActualizarProducto(ctx, p)
	}
	if err != nil {
		return entity.Producto{}, err
	}
	uc.recordar(guardado)
	return guardado, nil
}

// Eliminar borra un producto; solo admin.
func (uc *UseCase) Eliminar(ctx context.Context, id string) error {
	if err := uc.gw.EliminarProducto(ctx, id); err != nil {
		return err
	}
	delete(uc.observados, id)
	return nil
}

// StockObservado implementa cart.Stocks con el último stock visto para el
// producto. ok=false si el producto nunca se ha listado en esta sesión.
func (uc *UseCase) StockObservado(productoID string) (int, bool) {
	p, ok := uc.observados[productoID]
	if !ok {
		return 0, false
	}
	return p.Stock, true
}

// Observado devuelve la copia cacheada de un producto (para mostrar nombres y
// precios en vistas de pedidos sin volver a pedir el catálogo).
func (uc *UseCase) Observado(productoID string) (entity.Producto, bool) {
	p, ok := uc.observados[productoID]
	return p, ok
}

func (uc *UseCase) recordar(ps ...entity.Producto) {
	for _, p := range ps {
		uc.observados[p.ID] = p
	}
}
