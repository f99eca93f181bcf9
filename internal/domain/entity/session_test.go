package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ejemplo/tienda-cliente/internal/domain/entity"
)

// "admin", "ADMIN" y "Admin" deben producir exactamente el mismo rol.
func TestParseRol_InsensibleACaja(t *testing.T) {
	for _, s := range []string{"admin", "ADMIN", "Admin", " admin "} {
		rol, ok := entity.ParseRol(s)
		assert.Truef(t, ok, "ParseRol(%q)", s)
		assert.Equal(t, entity.RolAdmin, rol)
	}

	rol, ok := entity.ParseRol("cliente")
	assert.True(t, ok)
	assert.Equal(t, entity.RolCliente, rol)
}

func TestParseRol_VacioODesconocido(t *testing.T) {
	for _, s := range []string{"", "  ", "SUPERUSER", "root"} {
		_, ok := entity.ParseRol(s)
		assert.Falsef(t, ok, "ParseRol(%q) debe fallar", s)
	}
}

// Una sesión con token pero sin rol (o al revés) no es válida: los dos campos
// van siempre juntos.
func TestSession_Valida(t *testing.T) {
	assert.True(t, entity.Session{Token: "t", Rol: entity.RolCliente}.Valida())
	assert.False(t, entity.Session{Token: "t"}.Valida())
	assert.False(t, entity.Session{Rol: entity.RolCliente}.Valida())
	assert.False(t, entity.Session{}.Valida())
}

func TestSession_EsAdmin(t *testing.T) {
	assert.True(t, entity.Session{Token: "t", Rol: entity.RolAdmin}.EsAdmin())
	assert.False(t, entity.Session{Token: "t", Rol: entity.RolCliente}.EsAdmin())
	assert.False(t, entity.Session{Rol: entity.RolAdmin}.EsAdmin(), "sin token no hay admin")
}
