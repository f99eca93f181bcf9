// tienda es el cliente de terminal de la tienda online. Cada invocación carga
// una página o ejecuta una acción sobre ella; la sesión y el carrito persisten
// entre invocaciones.
//
// Uso:
//
//	tienda -pagina=productos
//	tienda -pagina=login -usuario=cliente -password=cliente123
//	tienda -pagina=carrito -accion=agregar -producto=<id>
//	tienda -pagina=admin -accion=estado -pedido=<id> -estado=ENVIADO
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/ejemplo/tienda-cliente/internal/application/admin"
	"github.com/ejemplo/tienda-cliente/internal/application/auth"
	"github.com/ejemplo/tienda-cliente/internal/application/cart"
	"github.com/ejemplo/tienda-cliente/internal/application/catalog"
	"github.com/ejemplo/tienda-cliente/internal/application/guard"
	"github.com/ejemplo/tienda-cliente/internal/application/orders"
	"github.com/ejemplo/tienda-cliente/internal/domain/entity"
	"github.com/ejemplo/tienda-cliente/internal/infrastructure/api"
	"github.com/ejemplo/tienda-cliente/internal/infrastructure/pdf"
	"github.com/ejemplo/tienda-cliente/internal/infrastructure/storage"
	"github.com/ejemplo/tienda-cliente/internal/interfaces/cli"
	"github.com/ejemplo/tienda-cliente/pkg/config"
	"github.com/ejemplo/tienda-cliente/pkg/logger"
)

func main() {
	var (
		pagina   = flag.String("pagina", "inicio", "página a cargar: inicio, login, registro, productos, carrito, pedidos, admin")
		accion   = flag.String("accion", "", "acción sobre la página (agregar, cantidad, quitar, checkout, cancelar, comprobante, estado, usuarios, guardar, eliminar, logout)")
		usuario  = flag.String("usuario", "", "username para login o registro")
		password = flag.String("password", "", "password para login o registro")
		email    = flag.String("email", "", "email para registro")
		buscar   = flag.String("buscar", "", "filtro por nombre en la página de productos")
		enStock  = flag.Bool("en-stock", false, "solo productos con existencias")
		producto = flag.String("producto", "", "id de producto para acciones de carrito")
		cantidad = flag.Int("cantidad", 0, "cantidad para la acción cantidad")
		pedido   = flag.String("pedido", "", "id de pedido para cancelar, comprobante o estado")
		estado   = flag.String("estado", "", "estado destino (admin) o filtro de listado")
		salida   = flag.String("salida", "comprobante.pdf", "ruta del PDF generado por la acción comprobante")

		nombre      = flag.String("nombre", "", "nombre del producto (acción guardar)")
		descripcion = flag.String("descripcion", "", "descripción del producto (acción guardar)")
		precio      = flag.String("precio", "0", "precio del producto (acción guardar)")
		stock       = flag.Int("stock", 0, "stock del producto (acción guardar)")
		categoria   = flag.String("categoria", "", "categoría del producto (acción guardar)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	store, err := storage.New(cfg.Datos.RutaDB())
	if err != nil {
		log.Fatal().Err(err).Msg("abrir estado local")
	}

	cliente := api.New(cfg.API.BaseURL, cfg.API.Timeout, store.Sesiones, log)

	catalogo := catalog.New(cliente, log)
	carrito, err := cart.New(store.Carrito, cliente, catalogo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar carrito persistido")
	}

	app := &cli.App{
		Guard:        guard.New(store.Sesiones, log),
		Auth:         auth.New(cliente, store.Sesiones, store.Flash, log),
		Catalogo:     catalogo,
		Carrito:      carrito,
		Pedidos:      orders.New(cliente, log),
		Admin:        admin.New(cliente),
		Flash:        store.Flash,
		Comprobantes: pdf.NewGeneradorComprobante(),
		Sink:         cli.NewSink(os.Stdout),
		Out:          os.Stdout,
		Log:          log,
	}

	ctx := context.Background()
	if err := despachar(ctx, app, parametros{
		pagina:   *pagina,
		accion:   *accion,
		usuario:  *usuario,
		password: *password,
		email:    *email,
		buscar:   *buscar,
		enStock:  *enStock,
		producto: *producto,
		cantidad: *cantidad,
		pedido:   *pedido,
		estado:   *estado,
		salida:   *salida,

		nombre:      *nombre,
		descripcion: *descripcion,
		precio:      *precio,
		stock:       *stock,
		categoria:   *categoria,
	}); err != nil {
		os.Exit(1)
	}
}

type parametros struct {
	pagina   string
	accion   string
	usuario  string
	password string
	email    string
	buscar   string
	enStock  bool
	producto string
	cantidad int
	pedido   string
	estado   string
	salida   string

	nombre      string
	descripcion string
	precio      string
	stock       int
	categoria   string
}

// despachar traduce página+acción a la vista correspondiente.
func despachar(ctx context.Context, app *cli.App, p parametros) error {
	if p.accion == "logout" {
		return app.Logout()
	}

	switch p.pagina {
	case "inicio":
		return app.Inicio(ctx)

	case "login":
		return app.Login(ctx, p.usuario, p.password)

	case "registro":
		return app.Registro(ctx, p.usuario, p.email, p.password)

	case "productos":
		return app.Productos(ctx, p.buscar, p.enStock)

	case "carrito":
		switch p.accion {
		case "agregar":
			return app.AgregarAlCarrito(ctx, p.producto)
		case "cantidad":
			return app.CambiarCantidad(ctx, p.producto, p.cantidad)
		case "quitar":
			return app.QuitarDelCarrito(ctx, p.producto)
		case "checkout":
			return app.Checkout(ctx)
		default:
			return app.VerCarrito(ctx)
		}

	case "pedidos":
		switch p.accion {
		case "cancelar":
			return app.CancelarPedido(ctx, p.pedido)
		case "comprobante":
			return app.ExportarComprobante(ctx, p.pedido, p.salida)
		default:
			return app.VerPedidos(ctx)
		}

	case "admin":
		switch p.accion {
		case "pedidos":
			return app.AdminPedidos(ctx, entity.EstadoPedido(p.estado))
		case "estado":
			return app.CambiarEstadoPedido(ctx, p.pedido, p.estado)
		case "usuarios":
			return app.AdminUsuarios(ctx)
		case "guardar":
			valor, err := decimal.NewFromString(p.precio)
			if err != nil {
				return fmt.Errorf("precio inválido: %s", p.precio)
			}
			return app.GuardarProducto(ctx, entity.Producto{
				ID:          p.producto,
				Nombre:      p.nombre,
				Descripcion: p.descripcion,
				Precio:      valor,
				Stock:       p.stock,
				Categoria:   p.categoria,
				Activo:      true,
			})
		case "eliminar":
			return app.EliminarProducto(ctx, p.producto)
		default:
			return app.AdminDashboard(ctx)
		}

	default:
		return fmt.Errorf("página desconocida: %s", p.pagina)
	}
}
