package guard_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ejemplo/tienda-cliente/internal/application/guard"
	"github.com/ejemplo/tienda-cliente/internal/domain"
	"github.com/ejemplo/tienda-cliente/internal/domain/entity"
	"github.com/ejemplo/tienda-cliente/pkg/jwt"
	"github.com/ejemplo/tienda-cliente/pkg/logger"
)

// sesionesFake guarda la sesión en memoria y cuenta las limpiezas.
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

// tokenConExp firma un token con la expiración indicada.
func tokenConExp(t *testing.T, exp time.Time) string {
	t.Helper()
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, jwt.Claims{
		RegisteredClaims: gojwt.RegisteredClaims{ExpiresAt: gojwt.NewNumericDate(exp)},
	}).SignedString([]byte("secreto"))
	require.NoError(t, err)
	return tok
}

func TestAutorizar_PaginaPublicaSinSesion(t *testing.T) {
	g := guard.New(&sesionesFake{}, logger.Nop())

	sesion, err := g.Autorizar(guard.PaginaInicio)
	require.NoError(t, err)
	assert.False(t, sesion.Valida())
}

func TestAutorizar_SinTokenExpulsa(t *testing.T) {
	store := &sesionesFake{}
	g := guard.New(store, logger.Nop())

	_, err := g.Autorizar(guard.PaginaProductos)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, 1, store.limpiados, "la sesión debe limpiarse al expulsar")
}

func TestAutorizar_TokenExpiradoExpulsa(t *testing.T) {
	store := &sesionesFake{sesion: entity.Session{
		Token:    tokenConExp(t, time.Now().Add(-time.Minute)),
		Rol:      entity.RolCliente,
		Username: "ana",
	}}
	g := guard.New(store, logger.Nop())

	_, err := g.Autorizar(guard.PaginaProductos)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, 1, store.limpiados)
	assert.Empty(t, store.sesion.Token, "no debe quedar resto de sesión")
}

// Un rol guardado en minúsculas tiene que valer exactamente igual que en
// mayúsculas.
func TestAutorizar_RolInsensibleACaja(t *testing.T) {
	for _, raw := range []string{"admin", "ADMIN", "Admin"} {
		store := &sesionesFake{sesion: entity.Session{
			Token:    tokenConExp(t, time.Now().Add(time.Hour)),
			Rol:      entity.Rol(raw),
			Username: "ana",
		}}
		g := guard.New(store, logger.Nop())

		sesion, err := g.Autorizar(guard.PaginaAdmin)
		require.NoErrorf(t, err, "rol %q", raw)
		assert.Equal(t, entity.RolAdmin, sesion.Rol)
	}
}

func TestAutorizar_RolVacioExpulsa(t *testing.T) {
	store := &sesionesFake{sesion: entity.Session{
		Token: tokenConExp(t, time.Now().Add(time.Hour)),
	}}
	g := guard.New(store, logger.Nop())

	_, err := g.Autorizar(guard.PaginaProductos)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, 1, store.limpiados)
}

func TestAutorizar_ClienteNoEntraEnAdmin(t *testing.T) {
	store := &sesionesFake{sesion: entity.Session{
		Token:    tokenConExp(t, time.Now().Add(time.Hour)),
		Rol:      entity.RolCliente,
		Username: "ana",
	}}
	g := guard.New(store, logger.Nop())

	_, err := g.Autorizar(guard.PaginaAdmin)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, 1, store.limpiados)
}

func TestAutorizar_ClienteEntraEnProductos(t *testing.T) {
	store := &sesionesFake{sesion: entity.Session{
		Token:    tokenConExp(t, time.Now().Add(time.Hour)),
		Rol:      entity.RolCliente,
		Username: "ana",
	}}
	g := guard.New(store, logger.Nop())

	sesion, err := g.Autorizar(guard.PaginaProductos)
	require.NoError(t, err)
	assert.Equal(t, "ana", sesion.Username)
	assert.Zero(t, store.limpiados)
}
