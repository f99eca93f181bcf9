package cart_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ejemplo/tienda-cliente/internal/application/cart"
	"github.com/ejemplo/tienda-cliente/internal/domain"
	"github.com/ejemplo/tienda-cliente/internal/domain/entity"
	"github.com/ejemplo/tienda-cliente/pkg/logger"
)

// storeFake persiste en memoria y recuerda lo último guardado.
type storeFake struct {
	guardado []entity.ItemCarrito
}

func (s *storeFake) Items() ([]entity.ItemCarrito, error) {
	out := make([]entity.ItemCarrito, len(s.guardado))
	copy(out, s.guardado)
	return out, nil
}

func (s *storeFake) Guardar(items []entity.ItemCarrito) error {
	s.guardado = make([]entity.ItemCarrito, len(items))
	copy(s.guardado, items)
	return nil
}

// creadorFake registra las llamadas al backend y permite forzar un fallo.
type creadorFake struct {
	llamadas int
	fallo    error
	pedido   entity.Pedido
}

func (c *creadorFake) CrearPedido(_ context.Context, items []entity.ItemCarrito) (entity.Pedido, error) {
	c.llamadas++
	if c.fallo != nil {
		return entity.Pedido{}, c.fallo
	}
	return c.pedido, nil
}

// stocksFake responde con un mapa fijo de stock observado.
type stocksFake map[string]int

func (s stocksFake) StockObservado(id string) (int, bool) {
	n, ok := s[id]
	return n, ok
}

func nuevoCarrito(t *testing.T, store *storeFake, creador *creadorFake, stocks stocksFake) *cart.Carrito {
	t.Helper()
	c, err := cart.New(store, creador, stocks, logger.Nop())
	require.NoError(t, err)
	return c
}

func TestAgregar_IncrementaHastaElStockObservado(t *testing.T) {
	store := &storeFake{}
	c := nuevoCarrito(t, store, &creadorFake{}, stocksFake{"p1": 2})

	require.NoError(t, c.Agregar("p1"))
	require.NoError(t, c.Agregar("p1"))

	err := c.Agregar("p1")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock, "la tercera unidad supera el stock de 2")

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Cantidad, "el fallo no debe tocar la cantidad previa")
	assert.Equal(t, items, store.guardado, "cada mutación se persiste")
}

func TestAgregar_ProductoNoObservado(t *testing.T) {
	c := nuevoCarrito(t, &storeFake{}, &creadorFake{}, stocksFake{})

	err := c.Agregar("desconocido")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.True(t, c.Vacio())
}

func TestFijarCantidad_CeroONegativaElimina(t *testing.T) {
	c := nuevoCarrito(t, &storeFake{}, &creadorFake{}, stocksFake{"p1": 10})
	require.NoError(t, c.Agregar("p1"))

	require.NoError(t, c.FijarCantidad("p1", 0))
	assert.True(t, c.Vacio())

	require.NoError(t, c.Agregar("p1"))
	require.NoError(t, c.FijarCantidad("p1", -3))
	assert.True(t, c.Vacio(), "una cantidad negativa nunca puede existir")
}

func TestFijarCantidad_PorEncimaDelStock(t *testing.T) {
	c := nuevoCarrito(t, &storeFake{}, &creadorFake{}, stocksFake{"p1": 5})
	require.NoError(t, c.FijarCantidad("p1", 3))

	err := c.FijarCantidad("p1", 6)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Cantidad, "el rechazo deja la línea como estaba")
}

func TestQuitar_AusenteEsNoOp(t *testing.T) {
	c := nuevoCarrito(t, &storeFake{}, &creadorFake{}, stocksFake{})
	assert.NoError(t, c.Quitar("p1"))
}

func TestCheckout_VacioNoLlamaAlBackend(t *testing.T) {
	creador := &creadorFake{}
	c := nuevoCarrito(t, &storeFake{}, creador, stocksFake{})

	_, err := c.Checkout(context.Background())
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
	assert.Zero(t, creador.llamadas, "con carrito vacío no hay petición de red")
}

func TestCheckout_FalloConservaElCarrito(t *testing.T) {
	creador := &creadorFake{fallo: errors.New("stock agotado en el servidor")}
	store := &storeFake{}
	c := nuevoCarrito(t, store, creador, stocksFake{"p1": 5})
	require.NoError(t, c.Agregar("p1"))

	_, err := c.Checkout(context.Background())
	assert.Error(t, err)
	assert.False(t, c.Vacio(), "el carrito queda intacto para reintentar")
	require.Len(t, store.guardado, 1)
}

func TestCheckout_ExitoVaciaElCarrito(t *testing.T) {
	creador := &creadorFake{pedido: entity.Pedido{
		ID:     "ped-1",
		Total:  decimal.RequireFromString("25.00"),
		Estado: entity.EstadoPendiente,
	}}
	store := &storeFake{}
	c := nuevoCarrito(t, store, creador, stocksFake{"p1": 5})
	require.NoError(t, c.Agregar("p1"))

	pedido, err := c.Checkout(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ped-1", pedido.ID)
	assert.True(t, c.Vacio())
	assert.Empty(t, store.guardado, "el vaciado también se persiste")
}

func TestNew_CargaElCarritoPersistido(t *testing.T) {
	store := &storeFake{guardado: []entity.ItemCarrito{
		{ProductoID: "p1", Cantidad: 2},
		{ProductoID: "p2", Cantidad: 1},
	}}
	c := nuevoCarrito(t, store, &creadorFake{}, stocksFake{})

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "p1", items[0].ProductoID, "se conserva el orden de inserción")
}
