// Package auth implementa login, registro y logout del lado cliente.
package auth

import (
	"context"
	"fmt"

	"github.com/ejemplo/tienda-cliente/internal/application/dto"
	"github.com/ejemplo/tienda-cliente/internal/domain"
	"github.com/ejemplo/tienda-cliente/internal/domain/entity"
	"github.com/ejemplo/tienda-cliente/internal/domain/repository"
	"github.com/ejemplo/tienda-cliente/pkg/logger"
)

// MensajeLogout es el flash que la portada muestra una única vez tras cerrar sesión.
const MensajeLogout = "Sesión cerrada exitosamente. ¡Hasta pronto!"

// Gateway es lo que el usecase necesita del backend.
type Gateway interface {
	Login(ctx context.Context, username, password string) (dto.LoginResponse, error)
	Registrar(ctx context.Context, in dto.RegisterRequest) error
}

// UseCase casos de uso de autenticación del cliente.
type UseCase struct {
	gw       Gateway
	sesiones repository.SessionStore
	flash    repository.FlashStore
	log      *logger.Logger
}

// New construye el caso de uso.
func New(gw Gateway, sesiones repository.SessionStore, flash repository.FlashStore, log *logger.Logger) *UseCase {
	return &UseCase{gw: gw, sesiones: sesiones, flash: flash, log: log}
}

// Login autentica y persiste la sesión de forma atómica. Si el backend no
// devuelve username, se conserva el tecleado. Una respuesta sin rol
// reconocible no crea sesión: el invariante es token y rol juntos o ninguno.
func (uc *UseCase) Login(ctx context.Context, username, password string) (entity.Session, error) {
	out, err := uc.gw.Login(ctx, username, password)
	if err != nil {
		return entity.Session{}, err
	}

	rol, ok := entity.ParseRol(out.Role)
	if !ok {
		uc.log.Warn().Str("role", out.Role).Msg("login con rol desconocido, sesión no creada")
		return entity.Session{}, fmt.Errorf("%w: el backend no devolvió un rol válido", domain.ErrValidation)
	}

	user := out.Username
	if user == "" {
		user = username
	}

	sesion := entity.Session{Token: out.Token, Rol: rol, Username: user}
	if err := uc.sesiones.Guardar(sesion); err != nil {
		return entity.Session{}, err
	}

	uc.log.Info().Str("username", user).Str("rol", string(rol)).Msg("sesión iniciada")
	return sesion, nil
}

// Logout limpia sesión y carrito y deja el mensaje de despedida de un solo uso.
func (uc *UseCase) Logout() error {
	if err := uc.sesiones.Limpiar(); err != nil {
		return err
	}
	if err := uc.flash.Dejar(MensajeLogout); err != nil {
		return err
	}
	uc.log.Info().Msg("sesión cerrada")
	return nil
}

// Registrar da de alta un usuario nuevo (rol CLIENTE en el backend).
func (uc *UseCase) Registrar(ctx context.Context, username, email, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("%w: username y password son requeridos", domain.ErrValidation)
	}
	return uc.gw.Registrar(ctx, dto.RegisterRequest{Username: username, Email: email, Password: password})
}

// DestinoPorRol devuelve la página a la que redirige un login exitoso.
func DestinoPorRol(rol entity.Rol) string {
	switch rol {
	case entity.RolAdmin:
		return "admin"
	case entity.RolCliente:
		return "productos"
	default:
		return "inicio"
	}
}
