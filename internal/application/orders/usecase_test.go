package orders_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ejemplo/tienda-cliente/internal/application/orders"
	"github.com/ejemplo/tienda-cliente/internal/domain"
	"github.com/ejemplo/tienda-cliente/internal/domain/entity"
	"github.com/ejemplo/tienda-cliente/pkg/logger"
)

type gatewayFake struct {
	cambios    []string
	fallo      error
	cancelados []string
}

func (g *gatewayFake) ListarPedidosMios(context.Context) ([]entity.Pedido, error) { return nil, nil }
func (g *gatewayFake) ListarPedidos(context.Context) ([]entity.Pedido, error)     { return nil, nil }
func (g *gatewayFake) ObtenerPedido(context.Context, string) (entity.Pedido, error) {
	return entity.Pedido{}, nil
}

func (g *gatewayFake) CambiarEstadoPedido(_ context.Context, id string, estado entity.EstadoPedido) error {
	if g.fallo != nil {
		return g.fallo
	}
	g.cambios = append(g.cambios, id+"→"+string(estado))
	return nil
}

func (g *gatewayFake) CancelarPedido(_ context.Context, id string) error {
	g.cancelados = append(g.cancelados, id)
	return nil
}

func TestCambiarEstado_ValidaAntesDeLlamar(t *testing.T) {
	gw := &gatewayFake{}
	uc := orders.New(gw, logger.Nop())

	err := uc.CambiarEstado(context.Background(), "", entity.EstadoEnviado)
	assert.ErrorIs(t, err, domain.ErrValidation)

	err = uc.CambiarEstado(context.Background(), "ped-1", entity.EstadoPedido("DEVUELTO"))
	assert.ErrorIs(t, err, domain.ErrValidation)

	assert.Empty(t, gw.cambios, "una entrada inválida no llega al backend")
}

func TestCambiarEstado_DelegaEnElBackend(t *testing.T) {
	gw := &gatewayFake{}
	uc := orders.New(gw, logger.Nop())

	require.NoError(t, uc.CambiarEstado(context.Background(), "ped-1", entity.EstadoEnviado))
	assert.Equal(t, []string{"ped-1→ENVIADO"}, gw.cambios)
}

// El rechazo del servidor (transición ilegal) se propaga tal cual.
func TestCambiarEstado_PropagaConflicto(t *testing.T) {
	gw := &gatewayFake{fallo: domain.ErrConflict}
	uc := orders.New(gw, logger.Nop())

	err := uc.CambiarEstado(context.Background(), "ped-1", entity.EstadoEnviado)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCancelar_RequiereID(t *testing.T) {
	gw := &gatewayFake{}
	uc := orders.New(gw, logger.Nop())

	err := uc.Cancelar(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, gw.cancelados)

	require.NoError(t, uc.Cancelar(context.Background(), "ped-2"))
	assert.Equal(t, []string{"ped-2"}, gw.cancelados)
}

func TestFiltrarPorEstado(t *testing.T) {
	pedidos := []entity.Pedido{
		{ID: "a", Estado: entity.EstadoPendiente},
		{ID: "b", Estado: entity.EstadoEnviado},
		{ID: "c", Estado: entity.EstadoPendiente},
	}

	pendientes := orders.FiltrarPorEstado(pedidos, entity.EstadoPendiente)
	require.Len(t, pendientes, 2)
	assert.Equal(t, "a", pendientes[0].ID)
	assert.Equal(t, "c", pendientes[1].ID)

	assert.Len(t, orders.FiltrarPorEstado(pedidos, ""), 3, "sin filtro se devuelve todo")
	assert.Empty(t, orders.FiltrarPorEstado(pedidos, entity.EstadoCancelado))
}
