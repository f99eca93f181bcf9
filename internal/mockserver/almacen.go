package mockserver

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/ejemplo/tienda-cliente/internal/domain/entity"
)

// usuario registrado en el almacén, con el hash bcrypt de su contraseña.
type usuario struct {
	ID       string
	Username string
	Email    string
	Hash     []byte
	Roles    []string
}

// almacen guarda el estado del servidor en memoria. Los slices de orden
// conservan el orden de inserción que los mapas no garantizan.
type almacen struct {
	mu             sync.Mutex
	usuarios       map[string]*usuario
	productos      map[string]*entity.Producto
	ordenProductos []string
	pedidos        map[string]*entity.Pedido
	ordenPedidos   []string
}

func newAlmacen() *almacen {
	a := &almacen{
		usuarios:  make(map[string]*usuario),
		productos: make(map[string]*entity.Producto),
		pedidos:   make(map[string]*entity.Pedido),
	}
	a.sembrar()
	return a
}

// sembrar deja el almacén con los datos de demostración: un admin, un cliente
// y un catálogo pequeño.
func (a *almacen) sembrar() {
	a.usuarios = make(map[string]*usuario)
	a.productos = make(map[string]*entity.Producto)
	a.ordenProductos = nil
	a.pedidos = make(map[string]*entity.Pedido)
	a.ordenPedidos = nil

	a.crearUsuario("admin", "admin@tienda.local", "admin123", []string{string(entity.RolAdmin)})
	a.crearUsuario("cliente", "cliente@tienda.local", "cliente123", []string{string(entity.RolCliente)})

	a.crearProducto(entity.Producto{
		Nombre: "Camiseta básica", Descripcion: "Algodón 100%",
		Precio: decimal.RequireFromString("12.50"), Stock: 25, Categoria: "ropa", Activo: true,
	})
	a.crearProducto(entity.Producto{
		Nombre: "Auriculares inalámbricos", Descripcion: "Bluetooth 5.3",
		Precio: decimal.RequireFromString("39.90"), Stock: 8, Categoria: "electrónica", Activo: true,
	})
	a.crearProducto(entity.Producto{
		Nombre: "Taza de cerámica", Descripcion: "330 ml",
		Precio: decimal.RequireFromString("6.95"), Stock: 0, Categoria: "hogar", Activo: true,
	})
}

func (a *almacen) crearUsuario(username, email, password string, roles []string) *usuario {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	u := &usuario{
		ID:       uuid.NewString(),
		Username: username,
		Email:    email,
		Hash:     hash,
		Roles:    roles,
	}
	a.usuarios[username] = u
	return u
}

func (a *almacen) crearProducto(p entity.Producto) *entity.Producto {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	copia := p
	a.productos[copia.ID] = &copia
	a.ordenProductos = append(a.ordenProductos, copia.ID)
	return &copia
}

func (a *almacen) listarProductos() []entity.Producto {
	out := make([]entity.Producto, 0, len(a.ordenProductos))
	for _, id := range a.ordenProductos {
		if p, ok := a.productos[id]; ok {
			out = append(out, *p)
		}
	}
	return out
}

func (a *almacen) listarPedidos() []entity.Pedido {
	out := make([]entity.Pedido, 0, len(a.ordenPedidos))
	for _, id := range a.ordenPedidos {
		if p, ok := a.pedidos[id]; ok {
			out = append(out, *p)
		}
	}
	return out
}

// crearPedido valida stock, congela precios, descuenta existencias y registra
// el pedido. Todo o nada: una línea inválida no descuenta ninguna otra.
func (a *almacen) crearPedido(usuarioID string, lineas []entity.ItemCarrito, ahora time.Time) (entity.Pedido, error) {
	if len(lineas) == 0 {
		return entity.Pedido{}, fmt.Errorf("el pedido no tiene productos")
	}

	for _, l := range lineas {
		p, ok := a.productos[l.ProductoID]
		if !ok {
			return entity.Pedido{}, fmt.Errorf("producto %s no existe", l.ProductoID)
		}
		if l.Cantidad <= 0 {
			return entity.Pedido{}, fmt.Errorf("cantidad inválida para %s", p.Nombre)
		}
		if l.Cantidad > p.Stock {
			return entity.Pedido{}, fmt.Errorf("stock insuficiente para %s", p.Nombre)
		}
	}

	items := make([]entity.ItemPedido, 0, len(lineas))
	total := decimal.Zero
	for _, l := range lineas {
		p := a.productos[l.ProductoID]
		p.Stock -= l.Cantidad
		it := entity.ItemPedido{
			ProductoID:     l.ProductoID,
			Cantidad:       l.Cantidad,
			PrecioUnitario: p.Precio,
		}
		items = append(items, it)
		total = total.Add(it.Subtotal())
	}

	pedido := entity.Pedido{
		ID:        uuid.NewString(),
		UsuarioID: usuarioID,
		Productos: items,
		Total:     total,
		Fecha:     ahora,
		Estado:    entity.EstadoPendiente,
	}
	a.pedidos[pedido.ID] = &pedido
	a.ordenPedidos = append(a.ordenPedidos, pedido.ID)
	return pedido, nil
}

// reponerStock devuelve al catálogo las unidades de un pedido cancelado.
func (a *almacen) reponerStock(p *entity.Pedido) {
	for _, it := range p.Productos {
		if prod, ok := a.productos[it.ProductoID]; ok {
			prod.Stock += it.Cantidad
		}
	}
}
