package repository

import "github.com/ejemplo/tienda-cliente/internal/domain/entity"

// CartStore persiste el carrito entre ejecuciones. El agregador escribe el
// contenido completo tras cada mutación, igual que la página escribía la
// clave de carrito tras cada cambio.
type CartStore interface {
	// Items devuelve las líneas en orden de inserción.
	Items() ([]entity.ItemCarrito, error)
	// Guardar reemplaza el contenido completo del carrito.
	Guardar(items []entity.ItemCarrito) error
}
