package cli

import (
	"fmt"

	"github.com/ejemplo/tienda-cliente/internal/domain/entity"
)

// vistaRol concentra lo que cambia entre roles al pintar una misma página.
// Añadir un rol nuevo es añadir una entrada aquí, no tocar las vistas.
type vistaRol struct {
	filaProducto func(p entity.Producto) string
	accionPedido func(p entity.Pedido) string
}

var vistasPorRol = map[entity.Rol]vistaRol{
	entity.RolAdmin: {
		filaProducto: filaProductoAdmin,
		accionPedido: accionPedidoAdmin,
	},
	entity.RolCliente: {
		filaProducto: filaProductoCliente,
		accionPedido: accionPedidoCliente,
	},
}

// vistaPara devuelve la estrategia del rol; un rol sin entrada ve lo mismo
// que un cliente.
func vistaPara(rol entity.Rol) vistaRol {
	if v, ok := vistasPorRol[rol]; ok {
		return v
	}
	return vistasPorRol[entity.RolCliente]
}

func filaProductoCliente(p entity.Producto) string {
	disponible := "agotado"
	if p.Disponible() {
		disponible = fmt.Sprintf("%d disponibles", p.Stock)
	}
	return fmt.Sprintf("  %-24s %12s   %s", p.Nombre, FormatearPrecio(p.Precio), disponible)
}

func filaProductoAdmin(p entity.Producto) string {
	estado := "activo"
	if !p.Activo {
		estado = "inactivo"
	}
	return fmt.Sprintf("  [%s] %-24s %12s   stock=%d   %s",
		abreviarID(p.ID), p.Nombre, FormatearPrecio(p.Precio), p.Stock, estado)
}

func accionPedidoCliente(p entity.Pedido) string {
	if p.Cancelable() {
		return "puede cancelarse"
	}
	return ""
}

func accionPedidoAdmin(p entity.Pedido) string {
	destinos := transicionesDesde(p.Estado)
	if len(destinos) == 0 {
		return "estado final"
	}
	out := "cambiar a:"
	for _, d := range destinos {
		out += " " + string(d)
	}
	return out
}

// transicionesDesde enumera los destinos que el servidor aceptaría; los
// imposibles ni se ofrecen.
func transicionesDesde(desde entity.EstadoPedido) []entity.EstadoPedido {
	todos := []entity.EstadoPedido{
		entity.EstadoPendiente,
		entity.EstadoEnviado,
		entity.EstadoEntregado,
		entity.EstadoCancelado,
	}
	var out []entity.EstadoPedido
	for _, hacia := range todos {
		if entity.TransicionValida(desde, hacia) {
			out = append(out, hacia)
		}
	}
	return out
}
