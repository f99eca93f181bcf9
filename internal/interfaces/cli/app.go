// Package cli implementa las páginas de la tienda como vistas de terminal.
// Cada vista pasa primero por el guard: la sesión se valida antes de pintar o
// pedir dato alguno.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/ejemplo/tienda-cliente/internal/application/admin"
	"github.com/ejemplo/tienda-cliente/internal/application/auth"
	"github.com/ejemplo/tienda-cliente/internal/application/cart"
	"github.com/ejemplo/tienda-cliente/internal/application/catalog"
	"github.com/ejemplo/tienda-cliente/internal/application/guard"
	"github.com/ejemplo/tienda-cliente/internal/application/orders"
	"github.com/ejemplo/tienda-cliente/internal/domain"
	"github.com/ejemplo/tienda-cliente/internal/domain/entity"
	"github.com/ejemplo/tienda-cliente/internal/domain/repository"
	"github.com/ejemplo/tienda-cliente/pkg/logger"
)

// Comprobantes genera el comprobante PDF de un pedido.
type Comprobantes interface {
	Generar(pedido entity.Pedido, productos map[string]entity.Producto) ([]byte, error)
}

// App agrupa los casos de uso que las vistas necesitan.
type App struct {
	Guard        *guard.Guard
	Auth         *auth.UseCase
	Catalogo     *catalog.UseCase
	Carrito      *cart.Carrito
	Pedidos      *orders.UseCase
	Admin        *admin.UseCase
	Flash        repository.FlashStore
	Comprobantes Comprobantes
	Sink         *Sink
	Out          io.Writer
	Log          *logger.Logger
}

// autorizar pasa la página por el guard. Si la sesión no alcanza, notifica el
// motivo y devuelve el error para que la vista no cargue ningún dato.
func (a *App) autorizar(p guard.Pagina) (entity.Session, error) {
	sesion, err := a.Guard.Autorizar(p)
	if err != nil {
		a.reportar(err)
		if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrForbidden) {
			fmt.Fprintln(a.Out, "Redirigiendo a login...")
		}
		return entity.Session{}, err
	}
	return sesion, nil
}

// reportar traduce un error de dominio al mensaje que ve el usuario y lo
// notifica por el sink. El detalle técnico queda solo en el log.
func (a *App) reportar(err error) {
	a.Log.Debug().Err(err).Msg("error reportado al usuario")
	a.Sink.Notificar(mensajeUsuario(err), SeveridadError)
}

func mensajeUsuario(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return "Debes iniciar sesión para continuar"
	case errors.Is(err, domain.ErrForbidden):
		return "No tienes permisos para acceder a esta página"
	case errors.Is(err, domain.ErrNotFound):
		return "El recurso solicitado no existe"
	case errors.Is(err, domain.ErrEmptyCart):
		return "El carrito está vacío"
	case errors.Is(err, domain.ErrInsufficientStock):
		return "Stock insuficiente para la cantidad solicitada"
	case errors.Is(err, domain.ErrConflict):
		return "La operación entra en conflicto con el estado actual del pedido"
	case errors.Is(err, domain.ErrNetwork):
		return "Error de conexión. Intenta nuevamente."
	default:
		return err.Error()
	}
}
