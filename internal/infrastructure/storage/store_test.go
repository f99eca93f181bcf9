package storage_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ejemplo/tienda-cliente/internal/domain/entity"
	"github.com/ejemplo/tienda-cliente/internal/infrastructure/storage"
)

func abrir(t *testing.T, ruta string) *storage.Store {
	t.Helper()
	store, err := storage.New(ruta)
	require.NoError(t, err)
	return store
}

// Una sesión guardada debe sobrevivir a cerrar y reabrir el archivo, igual que
// el localStorage sobrevivía a recargar la página.
func TestSesion_SobreviveAReabrir(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), "tienda.db")

	store := abrir(t, ruta)
	require.NoError(t, store.Sesiones.Guardar(entity.Session{
		Token: "tok", Rol: entity.RolAdmin, Username: "ana",
	}))

	reabierto := abrir(t, ruta)
	sesion, err := reabierto.Sesiones.Obtener()
	require.NoError(t, err)
	assert.Equal(t, "tok", sesion.Token)
	assert.Equal(t, entity.RolAdmin, sesion.Rol)
	assert.Equal(t, "ana", sesion.Username)
}

func TestSesion_SinDatosDevuelveVacia(t *testing.T) {
	store := abrir(t, filepath.Join(t.TempDir(), "tienda.db"))

	sesion, err := store.Sesiones.Obtener()
	require.NoError(t, err)
	assert.False(t, sesion.Valida())
}

// Un rol guardado en minúsculas se normaliza al leer.
func TestSesion_NormalizaRolAlLeer(t *testing.T) {
	store := abrir(t, filepath.Join(t.TempDir(), "tienda.db"))
	require.NoError(t, store.Sesiones.Guardar(entity.Session{
		Token: "tok", Rol: entity.Rol("admin"), Username: "ana",
	}))

	sesion, err := store.Sesiones.Obtener()
	require.NoError(t, err)
	assert.Equal(t, entity.RolAdmin, sesion.Rol)
}

// Limpiar borra la sesión y también el carrito: el carrito es estado de la
// sesión, no del dispositivo.
func TestLimpiar_BorraSesionYCarrito(t *testing.T) {
	store := abrir(t, filepath.Join(t.TempDir(), "tienda.db"))
	require.NoError(t, store.Sesiones.Guardar(entity.Session{
		Token: "tok", Rol: entity.RolCliente, Username: "ana",
	}))
	require.NoError(t, store.Carrito.Guardar([]entity.ItemCarrito{
		{ProductoID: "p1", Cantidad: 2},
	}))

	require.NoError(t, store.Sesiones.Limpiar())

	sesion, err := store.Sesiones.Obtener()
	require.NoError(t, err)
	assert.False(t, sesion.Valida())

	items, err := store.Carrito.Items()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCarrito_ConservaElOrdenDeInsercion(t *testing.T) {
	store := abrir(t, filepath.Join(t.TempDir(), "tienda.db"))

	lineas := []entity.ItemCarrito{
		{ProductoID: "p3", Cantidad: 1},
		{ProductoID: "p1", Cantidad: 4},
		{ProductoID: "p2", Cantidad: 2},
	}
	require.NoError(t, store.Carrito.Guardar(lineas))

	items, err := store.Carrito.Items()
	require.NoError(t, err)
	assert.Equal(t, lineas, items)
}

func TestCarrito_GuardarReemplazaTodo(t *testing.T) {
	store := abrir(t, filepath.Join(t.TempDir(), "tienda.db"))
	require.NoError(t, store.Carrito.Guardar([]entity.ItemCarrito{
		{ProductoID: "p1", Cantidad: 1},
		{ProductoID: "p2", Cantidad: 1},
	}))
	require.NoError(t, store.Carrito.Guardar([]entity.ItemCarrito{
		{ProductoID: "p2", Cantidad: 3},
	}))

	items, err := store.Carrito.Items()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, entity.ItemCarrito{ProductoID: "p2", Cantidad: 3}, items[0])
}

// El flash es de un solo uso: la segunda lectura ya no lo encuentra.
func TestFlash_UnSoloUso(t *testing.T) {
	store := abrir(t, filepath.Join(t.TempDir(), "tienda.db"))
	require.NoError(t, store.Flash.Dejar("Sesión cerrada exitosamente. ¡Hasta pronto!"))

	msg, ok, err := store.Flash.Tomar()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Sesión cerrada exitosamente. ¡Hasta pronto!", msg)

	_, ok, err = store.Flash.Tomar()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFlash_DejarReemplaza(t *testing.T) {
	store := abrir(t, filepath.Join(t.TempDir(), "tienda.db"))
	require.NoError(t, store.Flash.Dejar("primero"))
	require.NoError(t, store.Flash.Dejar("segundo"))

	msg, ok, err := store.Flash.Tomar()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "segundo", msg)
}
