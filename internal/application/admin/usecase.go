// Package admin calcula las métricas del panel de administración y lista los
// usuarios registrados.
package admin

import (
	"context"
	"time"

	"github.com/ejemplo/tienda-cliente/internal/domain/entity"
)

// Gateway es lo que el panel necesita del backend.
type Gateway interface {
	ListarUsuarios(ctx context.Context) ([]entity.Usuario, error)
}

// UseCase casos de uso del panel de administración.
type UseCase struct {
	gw Gateway
}

// New construye el caso de uso.
func New(gw Gateway) *UseCase {
	return &UseCase{gw: gw}
}

// ListarUsuarios devuelve los usuarios registrados.
func (uc *UseCase) ListarUsuarios(ctx context.Context) ([]entity.Usuario, error) {
	return uc.gw.ListarUsuarios(ctx)
}

// Metricas son los contadores del dashboard de administración.
type Metricas struct {
	TotalProductos     int
	TotalPedidos       int
	PedidosPendientes  int
	PedidosEnviados    int
	StockTotal         int
	ProductosSinStock  int
	ProductosEnPedidos int
	UltimoPedido       time.Time
}

// CalcularMetricas agrega los listados ya obtenidos; puro, sin red.
func CalcularMetricas(productos []entity.Producto, pedidos []entity.Pedido) Metricas {
	m := Metricas{
		TotalProductos: len(productos),
		TotalPedidos:   len(pedidos),
	}

	for _, p := range productos {
		m.StockTotal += p.Stock
		if p.Stock == 0 {
			m.ProductosSinStock++
		}
	}

	distintos := make(map[string]struct{})
	for _, p := range pedidos {
		switch p.Estado {
		case entity.EstadoPendiente:
			m.PedidosPendientes++
		case entity.EstadoEnviado:
			m.PedidosEnviados++
		}
		for _, it := range p.Productos {
			distintos[it.ProductoID] = struct{}{}
		}
		if p.Fecha.After(m.UltimoPedido) {
			m.UltimoPedido = p.Fecha
		}
	}
	m.ProductosEnPedidos = len(distintos)

	return m
}
