// Package orders expone las operaciones de pedidos sobre la pasarela. No
// mantiene caché: tras cambiar un estado, quien llama vuelve a listar.
package orders

import (
	"context"
	"fmt"

	"github.com/ejemplo/tienda-cliente/internal/domain"
	"github.com/ejemplo/tienda-cliente/internal/domain/entity"
	"github.com/ejemplo/tienda-cliente/pkg/logger"
)

// Gateway es lo que el usecase necesita del backend.
type Gateway interface {
	ListarPedidosMios(ctx context.Context) ([]entity.Pedido, error)
	ListarPedidos(ctx context.Context) ([]entity.Pedido, error)
	ObtenerPedido(ctx context.Context, id string) (entity.Pedido, error)
	CambiarEstadoPedido(ctx context.Context, id string, estado entity.EstadoPedido) error
	CancelarPedido(ctx context.Context, id string) error
}

// UseCase casos de uso de pedidos.
type UseCase struct {
	gw  Gateway
	log *logger.Logger
}

// New construye el caso de uso.
func New(gw Gateway, log *logger.Logger) *UseCase {
	return &UseCase{gw: gw, log: log}
}

// ListarMios devuelve los pedidos del usuario autenticado.
func (uc *UseCase) ListarMios(ctx context.Context) ([]entity.Pedido, error) {
	return uc.gw.ListarPedidosMios(ctx)
}

// ListarTodos devuelve todos los pedidos (solo admin).
func (uc *UseCase) ListarTodos(ctx context.Context) ([]entity.Pedido, error) {
	return uc.gw.ListarPedidos(ctx)
}

// Obtener devuelve un pedido por id.
func (uc *UseCase) Obtener(ctx context.Context, id string) (entity.Pedido, error) {
	return uc.gw.ObtenerPedido(ctx, id)
}

// CambiarEstado pide al servidor la transición. El valor del estado se valida
// localmente, pero la legalidad de la transición la decide el servidor: un
// rechazo llega como ErrConflict y se reporta, nunca se ignora en silencio.
func (uc *UseCase) CambiarEstado(ctx context.Context, id string, estado entity.EstadoPedido) error {
	if id == "" {
		return fmt.Errorf("%w: id de pedido requerido", domain.ErrValidation)
	}
	if _, err := entity.ParseEstado(string(estado)); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if err := uc.gw.CambiarEstadoPedido(ctx, id, estado); err != nil {
		return err
	}
	uc.log.Info().Str("pedido", id).Str("estado", string(estado)).Msg("estado de pedido cambiado")
	return nil
}

// Cancelar pide la cancelación del pedido.
func (uc *UseCase) Cancelar(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id de pedido requerido", domain.ErrValidation)
	}
	if err := uc.gw.CancelarPedido(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Str("pedido", id).Msg("pedido cancelado")
	return nil
}

// FiltrarPorEstado filtra un listado ya obtenido; el backend no pagina ni
// filtra pedidos, así que el filtro del panel vive en el cliente.
func FiltrarPorEstado(pedidos []entity.Pedido, estado entity.EstadoPedido) []entity.Pedido {
	if estado == "" {
		return pedidos
	}
	out := make([]entity.Pedido, 0, len(pedidos))
	for _, p := range pedidos {
		if p.Estado == estado {
			out = append(out, p)
		}
	}
	return out
}
