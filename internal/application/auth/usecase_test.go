package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ejemplo/tienda-cliente/internal/application/auth"
	"github.com/ejemplo/tienda-cliente/internal/application/dto"
	"github.com/ejemplo/tienda-cliente/internal/domain"
	"github.com/ejemplo/tienda-cliente/internal/domain/entity"
	"github.com/ejemplo/tienda-cliente/pkg/logger"
)

type gatewayFake struct {
	respuesta dto.LoginResponse
	fallo     error
	registros []dto.RegisterRequest
}

func (g *gatewayFake) Login(_ context.Context, _, _ string) (dto.LoginResponse, error) {
	if g.fallo != nil {
		return dto.LoginResponse{}, g.fallo
	}
	return g.respuesta, nil
}

func (g *gatewayFake) Registrar(_ context.Context, in dto.RegisterRequest) error {
	g.registros = append(g.registros, in)
	return nil
}

type sesionesFake struct {
	sesion    entity.Session
	limpiados int
}

func (f *sesionesFake) Obtener() (entity.Session, error) { return f.sesion, nil }
func (f *sesionesFake) Guardar(s entity.Session) error   { f.sesion = s; return nil }
func (f *sesionesFake) Limpiar() error {
	f.sesion = entity.Session{}
	f.limpiados++
	return nil
}

type flashFake struct {
	mensaje string
	dejado  bool
}

func (f *flashFake) Dejar(m string) error { f.mensaje = m; f.dejado = true; return nil }
func (f *flashFake) Tomar() (string, bool, error) {
	if !f.dejado {
		return "", false, nil
	}
	m := f.mensaje
	f.mensaje, f.dejado = "", false
	return m, true, nil
}

func TestLogin_PersisteSesionCompleta(t *testing.T) {
	gw := &gatewayFake{respuesta: dto.LoginResponse{
		Token: "tok", Username: "ana", Role: "CLIENTE",
	}}
	store := &sesionesFake{}
	uc := auth.New(gw, store, &flashFake{}, logger.Nop())

	sesion, err := uc.Login(context.Background(), "ana", "secreta")
	require.NoError(t, err)
	assert.Equal(t, entity.RolCliente, sesion.Rol)
	assert.True(t, store.sesion.Valida(), "token y rol quedan persistidos juntos")
}

// Si el backend no devuelve username, se conserva el que tecleó el usuario.
func TestLogin_UsernameDeRespaldo(t *testing.T) {
	gw := &gatewayFake{respuesta: dto.LoginResponse{Token: "tok", Role: "ADMIN"}}
	store := &sesionesFake{}
	uc := auth.New(gw, store, &flashFake{}, logger.Nop())

	sesion, err := uc.Login(context.Background(), "jefa", "secreta")
	require.NoError(t, err)
	assert.Equal(t, "jefa", sesion.Username)
}

// Una respuesta sin rol reconocible no puede crear sesión: jamás se persiste
// un token sin rol.
func TestLogin_RolDesconocidoNoCreaSesion(t *testing.T) {
	gw := &gatewayFake{respuesta: dto.LoginResponse{Token: "tok", Role: "SUPERUSER"}}
	store := &sesionesFake{}
	uc := auth.New(gw, store, &flashFake{}, logger.Nop())

	_, err := uc.Login(context.Background(), "ana", "secreta")
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.False(t, store.sesion.Valida())
	assert.Empty(t, store.sesion.Token)
}

func TestLogout_LimpiaYDejaDespedida(t *testing.T) {
	store := &sesionesFake{sesion: entity.Session{Token: "tok", Rol: entity.RolCliente}}
	flash := &flashFake{}
	uc := auth.New(&gatewayFake{}, store, flash, logger.Nop())

	require.NoError(t, uc.Logout())
	assert.Equal(t, 1, store.limpiados)

	msg, ok, err := flash.Tomar()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, auth.MensajeLogout, msg)

	_, ok, _ = flash.Tomar()
	assert.False(t, ok, "la despedida es de un solo uso")
}

func TestRegistrar_ValidaCamposRequeridos(t *testing.T) {
	uc := auth.New(&gatewayFake{}, &sesionesFake{}, &flashFake{}, logger.Nop())

	err := uc.Registrar(context.Background(), "", "a@b.c", "secreta")
	assert.ErrorIs(t, err, domain.ErrValidation)

	err = uc.Registrar(context.Background(), "ana", "a@b.c", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDestinoPorRol(t *testing.T) {
	assert.Equal(t, "admin", auth.DestinoPorRol(entity.RolAdmin))
	assert.Equal(t, "productos", auth.DestinoPorRol(entity.RolCliente))
	assert.Equal(t, "inicio", auth.DestinoPorRol(""))
}
