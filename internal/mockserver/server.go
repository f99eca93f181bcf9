// Package mockserver implementa en memoria el backend REST de la tienda. Se
// usa como entorno de demostración y como servidor real en los tests de
// integración del cliente: mismos endpoints, mismos cuerpos JSON y mismas
// reglas de stock y de transición de estados.
package mockserver

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/ejemplo/tienda-cliente/internal/domain/entity"
	"github.com/ejemplo/tienda-cliente/pkg/logger"
)

// Server backend en memoria.
type Server struct {
	app     *fiber.App
	almacen *almacen
	secreto string
	ahora   func() time.Time
	log     *logger.Logger
}

// New construye el servidor con los datos de demostración sembrados.
func New(secreto string, log *logger.Logger) *Server {
	// Los precios viajan como números JSON crudos, no como strings.
	decimal.MarshalJSONWithoutQuotes = true

	s := &Server{
		app:     fiber.New(fiber.Config{DisableStartupMessage: true}),
		almacen: newAlmacen(),
		secreto: secreto,
		ahora:   time.Now,
		log:     log,
	}
	s.rutas()
	return s
}

// App expone la aplicación Fiber para escuchar o testear.
func (s *Server) App() *fiber.App { return s.app }

// Escuchar sirve en addr hasta que el proceso termine.
func (s *Server) Escuchar(addr string) error {
	s.log.Info().Str("addr", addr).Msg("mock server escuchando")
	return s.app.Listen(addr)
}

// Reiniciar vuelve a los datos de demostración.
func (s *Server) Reiniciar() {
	s.almacen.mu.Lock()
	defer s.almacen.mu.Unlock()
	s.almacen.sembrar()
}

func (s *Server) rutas() {
	api := s.app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", s.login)
	authGroup.Post("/register", s.registrar)

	// Rutas protegidas (requieren Bearer Token)
	protegido := api.Group("/", authMiddleware(s.secreto))

	// Productos (lectura para autenticados, escritura solo admin)
	productos := protegido.Group("/productos")
	productos.Get("/", s.listarProductos)
	productos.Get("/buscar", s.buscarProductos)
	productos.Get("/en-stock", s.productosEnStock)
	productos.Get("/:id", s.obtenerProducto)
	productos.Post("/", requireRol(entity.RolAdmin), s.crearProducto)
	productos.Put("/:id", requireRol(entity.RolAdmin), s.actualizarProducto)
	productos.Delete("/:id", requireRol(entity.RolAdmin), s.eliminarProducto)

	// Pedidos
	pedidos := protegido.Group("/pedidos")
	pedidos.Get("/", requireRol(entity.RolAdmin), s.listarPedidos)
	pedidos.Get("/mios", s.listarPedidosMios)
	pedidos.Post("/", s.crearPedido)
	pedidos.Put("/:id/estado", requireRol(entity.RolAdmin), s.cambiarEstadoPedido)
	pedidos.Put("/:id/cancelar", s.cancelarPedido)
	pedidos.Get("/:id", s.obtenerPedido)

	// Administración
	adminGroup := protegido.Group("/admin", requireRol(entity.RolAdmin))
	adminGroup.Get("/users", s.listarUsuarios)
	adminGroup.Post("/seed/reset", s.reiniciar)
}

func (s *Server) reiniciar(c *fiber.Ctx) error {
	s.Reiniciar()
	s.log.Info().Msg("almacén resembrado")
	return c.SendStatus(fiber.StatusNoContent)
}
