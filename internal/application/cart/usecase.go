// Package cart implementa el agregador de carrito: acumula líneas antes del
// checkout, valida contra el stock observado y persiste tras cada mutación
// para que un reinicio no pierda el carrito.
package cart

import (
	"context"
	"fmt"

	"github.com/ejemplo/tienda-cliente/internal/domain"
	"github.com/ejemplo/tienda-cliente/internal/domain/entity"
	"github.com/ejemplo/tienda-cliente/internal/domain/repository"
	"github.com/ejemplo/tienda-cliente/pkg/logger"
)

// Creador es la operación de la pasarela que materializa el pedido.
type Creador interface {
	CrearPedido(ctx context.Context, items []entity.ItemCarrito) (entity.Pedido, error)
}

// Stocks expone el stock más recientemente observado por el catálogo. El
// agregador nunca supera ese techo, pero el servidor sigue siendo la autoridad
// y puede rechazar en el checkout si el stock cambió por debajo.
type Stocks interface {
	StockObservado(productoID string) (int, bool)
}

// Carrito es el agregador. Posee en exclusiva las líneas; las vistas reciben
// copias, nunca el slice interno.
type Carrito struct {
	store   repository.CartStore
	creador Creador
	stocks  Stocks
	items   []entity.ItemCarrito
	log     *logger.Logger
}

// New construye el agregador cargando el contenido persistido.
func New(store repository.CartStore, creador Creador, stocks Stocks, log *logger.Logger) (*Carrito, error) {
	items, err := store.Items()
	if err != nil {
		return nil, err
	}
	return &Carrito{store: store, creador: creador, stocks: stocks, items: items, log: log}, nil
}

// Items devuelve una copia de las líneas en orden de inserción.
func (c *Carrito) Items() []entity.ItemCarrito {
	out := make([]entity.ItemCarrito, len(c.items))
	copy(out, c.items)
	return out
}

// Vacio indica si el carrito no tiene líneas.
func (c *Carrito) Vacio() bool {
	return len(c.items) == 0
}

// Agregar suma una unidad del producto: incrementa si ya existe y queda techo
// de stock, inserta con cantidad 1 si no existe. Con el stock agotado devuelve
// ErrInsufficientStock y no cambia nada.
func (c *Carrito) Agregar(productoID string) error {
	stock, ok := c.stocks.StockObservado(productoID)
	if !ok {
		return fmt.Errorf("%w: producto %s no está en el catálogo observado", domain.ErrNotFound, productoID)
	}

	idx := c.indice(productoID)
	actual := 0
	if idx >= 0 {
		actual = c.items[idx].Cantidad
	}
	if actual+1 > stock {
		return fmt.Errorf("%w: producto %s (stock %d)", domain.ErrInsufficientStock, productoID, stock)
	}

	if idx >= 0 {
		c.items[idx].Cantidad++
	} else {
		c.items = append(c.items, entity.ItemCarrito{ProductoID: productoID, Cantidad: 1})
	}
	return c.persistir()
}

// FijarCantidad fija la cantidad de una línea. Cantidad <= 0 elimina la línea
// (nunca existe una cantidad negativa); por encima del stock observado devuelve
// ErrInsufficientStock y deja el estado intacto.
func (c *Carrito) FijarCantidad(productoID string, cantidad int) error {
	if cantidad <= 0 {
		return c.Quitar(productoID)
	}

	stock, ok := c.stocks.StockObservado(productoID)
	if !ok {
		return fmt.Errorf("%w: producto %s no está en el catálogo observado", domain.ErrNotFound, productoID)
	}
	if cantidad > stock {
		return fmt.Errorf("%w: producto %s (stock %d)", domain.ErrInsufficientStock, productoID, stock)
	}

	if idx := c.indice(productoID); idx >= 0 {
		c.items[idx].Cantidad = cantidad
	} else {
		c.items = append(c.items, entity.ItemCarrito{ProductoID: productoID, Cantidad: cantidad})
	}
	return c.persistir()
}

// Quitar elimina la línea del producto; quitar lo que no está es un no-op.
func (c *Carrito) Quitar(productoID string) error {
	idx := c.indice(productoID)
	if idx < 0 {
		return nil
	}
	c.items = append(c.items[:idx], c.items[idx+1:]...)
	return c.persistir()
}

// Vaciar elimina todas las líneas.
func (c *Carrito) Vaciar() error {
	c.items = nil
	return c.persistir()
}

// Checkout delega en la pasarela y, solo si el pedido se creó, vacía el
// carrito; ante cualquier fallo el carrito queda intacto para reintentar.
// Con el carrito vacío no se hace ninguna llamada de red.
func (c *Carrito) Checkout(ctx context.Context) (entity.Pedido, error) {
	if len(c.items) == 0 {
		return entity.Pedido{}, domain.ErrEmptyCart
	}

	pedido, err := c.creador.CrearPedido(ctx, c.Items())
	if err != nil {
		return entity.Pedido{}, err
	}

	c.items = nil
	if err := c.persistir(); err != nil {
		// El pedido ya existe en el servidor; no se pierde, solo queda un
		// carrito local obsoleto que la siguiente mutación corregirá.
		c.log.Error().Err(err).Str("pedido", pedido.ID).Msg("pedido creado pero no se pudo vaciar el carrito persistido")
	}

	c.log.Info().Str("pedido", pedido.ID).Int("lineas", len(pedido.Productos)).Msg("checkout completado")
	return pedido, nil
}

func (c *Carrito) indice(productoID string) int {
	for i, it := range c.items {
		if it.ProductoID == productoID {
			return i
		}
	}
	return -1
}

func (c *Carrito) persistir() error {
	return c.store.Guardar(c.items)
}
