package entity

// ItemCarrito es una línea del carrito local, previa al pedido.
// Invariante: Cantidad > 0; un ítem que baja a cero se elimina.
type ItemCarrito struct {
	ProductoID string
	Cantidad   int
}
