package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// EstadoPedido es el estado del ciclo de vida de un pedido.
type EstadoPedido string

// Estados válidos de un pedido.
const (
	EstadoPendiente EstadoPedido = "PENDIENTE"
	EstadoEnviado   EstadoPedido = "ENVIADO"
	EstadoEntregado EstadoPedido = "ENTREGADO"
	EstadoCancelado EstadoPedido = "CANCELADO"
)

// ParseEstado normaliza un estado recibido del backend.
func ParseEstado(s string) (EstadoPedido, error) {
	switch EstadoPedido(strings.ToUpper(strings.TrimSpace(s))) {
	case EstadoPendiente:
		return EstadoPendiente, nil
	case EstadoEnviado:
		return EstadoEnviado, nil
	case EstadoEntregado:
		return EstadoEntregado, nil
	case EstadoCancelado:
		return EstadoCancelado, nil
	default:
		return "", fmt.Errorf("estado de pedido no válido: %q", s)
	}
}

// TransicionValida replica la tabla de transiciones del backend para que la
// vista pueda ocultar acciones imposibles. El servidor sigue siendo la
// autoridad: un rechazo remoto se reporta como conflicto aunque esta tabla
// hubiera dicho lo contrario.
//
//   - Desde PENDIENTE se puede ir a cualquier estado.
//   - Un pedido ENVIADO no puede volver a PENDIENTE.
//   - ENTREGADO y CANCELADO son terminales.
func TransicionValida(desde, hacia EstadoPedido) bool {
	if desde == hacia {
		return false
	}
	switch desde {
	case EstadoPendiente:
		return true
	case EstadoEnviado:
		return hacia != EstadoPendiente
	default:
		return false
	}
}

// ItemPedido es una línea de pedido con el precio congelado al momento de la compra.
type ItemPedido struct {
	ProductoID     string
	Cantidad       int
	PrecioUnitario decimal.Decimal
}

// Subtotal devuelve cantidad × precio unitario.
func (i ItemPedido) Subtotal() decimal.Decimal {
	return i.PrecioUnitario.Mul(decimal.NewFromInt(int64(i.Cantidad)))
}

// Pedido es la copia de lectura de un pedido. El servidor es el dueño; el
// cliente nunca muta un pedido localmente, solo pide transiciones.
type Pedido struct {
	ID        string
	UsuarioID string
	Productos []ItemPedido
	Total     decimal.Decimal
	Fecha     time.Time
	Estado    EstadoPedido
}

// Cancelable indica si el dueño aún puede cancelar su pedido. Solo un pedido
// pendiente admite cancelación; una vez enviado la retirada pasa por el admin.
func (p Pedido) Cancelable() bool {
	return p.Estado == EstadoPendiente
}
