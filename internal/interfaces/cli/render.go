package cli

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ejemplo/tienda-cliente/internal/domain/entity"
)

// impresor formatea números con separadores de la localización española
// (1.234,56), que es como la tienda muestra los precios.
var impresor = message.NewPrinter(language.Spanish)

// FormatearPrecio presenta un precio crudo para el usuario. El precio viaja
// y se almacena siempre como decimal; este es el único punto de formateo.
func FormatearPrecio(p decimal.Decimal) string {
	f, _ := p.Float64()
	return impresor.Sprintf("%.2f €", f)
}

// FormatearFecha presenta una fecha en el formato corto es-ES.
func FormatearFecha(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Local().Format("02/01/2006 15:04")
}

// abreviarID recorta un id largo a sus últimos 8 caracteres para los listados.
func abreviarID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return "…" + id[len(id)-8:]
}

// nombreProducto resuelve el nombre mostrado de una línea de pedido.
func nombreProducto(productoID string, observado func(string) (entity.Producto, bool)) string {
	if p, ok := observado(productoID); ok {
		return p.Nombre
	}
	return "Producto " + abreviarID(productoID)
}
