package entity

import "github.com/shopspring/decimal"

// Producto es la copia de lectura de un producto del catálogo. El servidor es
// el dueño; el cliente solo lo cachea para mostrarlo y consultar precio/stock.
// Precio es numérico crudo (decimal); el formateo es responsabilidad de la vista.
type Producto struct {
	ID          string
	Nombre      string
	Descripcion string
	Precio      decimal.Decimal
	Stock       int
	Categoria   string
	Activo      bool
}

// Disponible indica si el producto puede añadirse al carrito.
func (p Producto) Disponible() bool {
	return p.Stock > 0
}
