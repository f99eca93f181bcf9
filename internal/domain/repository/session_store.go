package repository

import "github.com/ejemplo/tienda-cliente/internal/domain/entity"

// SessionStore persiste la sesión del cliente entre ejecuciones (el análogo
// del localStorage del navegador).
type SessionStore interface {
	// Obtener devuelve la sesión almacenada; una sesión vacía si no hay ninguna.
	Obtener() (entity.Session, error)
	// Guardar escribe token, rol y username de forma atómica: ningún lector
	// puede observar un estado con solo parte de los campos.
	Guardar(s entity.Session) error
	// Limpiar elimina la sesión y todo estado derivado de ella (el carrito).
	Limpiar() error
}
