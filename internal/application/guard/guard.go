// Package guard decide, antes de cargar cualquier página, si la sesión actual
// puede verla. Centraliza el chequeo de token y rol que de otro modo cada
// vista repetiría a mano.
package guard

import (
	"fmt"
	"time"

	"github.com/ejemplo/tienda-cliente/internal/domain"
	"github.com/ejemplo/tienda-cliente/internal/domain/entity"
	"github.com/ejemplo/tienda-cliente/internal/domain/repository"
	"github.com/ejemplo/tienda-cliente/pkg/jwt"
	"github.com/ejemplo/tienda-cliente/pkg/logger"
)

// Pagina describe los requisitos de acceso de una página.
// Publica: sin sesión. Roles vacío (y no pública): cualquier autenticado.
type Pagina struct {
	Nombre  string
	Publica bool
	Roles   []entity.Rol
}

// Páginas del cliente con sus requisitos de acceso.
var (
	PaginaInicio    = Pagina{Nombre: "inicio", Publica: true}
	PaginaLogin     = Pagina{Nombre: "login", Publica: true}
	PaginaRegistro  = Pagina{Nombre: "registro", Publica: true}
	PaginaProductos = Pagina{Nombre: "productos"}
	PaginaCarrito   = Pagina{Nombre: "carrito"}
	PaginaPedidos   = Pagina{Nombre: "pedidos"}
	PaginaAdmin     = Pagina{Nombre: "admin", Roles: []entity.Rol{entity.RolAdmin}}
)

// Guard evalúa el acceso una vez por carga de página, antes de cualquier
// fetch de datos.
type Guard struct {
	sesiones repository.SessionStore
	ahora    func() time.Time
	log      *logger.Logger
}

// New construye el guard.
func New(sesiones repository.SessionStore, log *logger.Logger) *Guard {
	return &Guard{sesiones: sesiones, ahora: time.Now, log: log}
}

// Autorizar devuelve la sesión vigente si la página es accesible. Una sesión
// inválida es fatal para la carga: se limpia por completo y el llamador debe
// redirigir a login. Nunca se degrada parcialmente.
func (g *Guard) Autorizar(p Pagina) (entity.Session, error) {
	sesion, err := g.sesiones.Obtener()
	if err != nil {
		return entity.Session{}, fmt.Errorf("guard: leer sesión: %w", err)
	}

	if p.Publica {
		return sesion, nil
	}

	if sesion.Token == "" {
		g.expulsar(p, "sin token")
		return entity.Session{}, fmt.Errorf("guard: página %s: %w", p.Nombre, domain.ErrUnauthorized)
	}

	if jwt.Expirado(sesion.Token, g.ahora()) {
		g.expulsar(p, "token expirado")
		return entity.Session{}, fmt.Errorf("guard: página %s: %w", p.Nombre, domain.ErrUnauthorized)
	}

	// Normaliza de nuevo por si el rol llegó del backend con otra caja;
	// un rol vacío o desconocido equivale a no tener rol.
	rol, ok := entity.ParseRol(string(sesion.Rol))
	if !ok {
		g.expulsar(p, "rol ausente o desconocido")
		return entity.Session{}, fmt.Errorf("guard: página %s: %w", p.Nombre, domain.ErrUnauthorized)
	}
	sesion.Rol = rol

	if len(p.Roles) > 0 && !contiene(p.Roles, rol) {
		g.expulsar(p, "rol insuficiente")
		return entity.Session{}, fmt.Errorf("guard: página %s: %w", p.Nombre, domain.ErrForbidden)
	}

	return sesion, nil
}

func (g *Guard) expulsar(p Pagina, motivo string) {
	g.log.Warn().Str("pagina", p.Nombre).Str("motivo", motivo).Msg("acceso denegado, sesión limpiada")
	if err := g.sesiones.Limpiar(); err != nil {
		g.log.Error().Err(err).Msg("no se pudo limpiar la sesión")
	}
}

func contiene(roles []entity.Rol, rol entity.Rol) bool {
	for _, r := range roles {
		if r == rol {
			return true
		}
	}
	return false
}
