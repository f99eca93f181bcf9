package mockserver

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/ejemplo/tienda-cliente/internal/application/dto"
	"github.com/ejemplo/tienda-cliente/internal/domain/entity"
)

func errorJSON(c *fiber.Ctx, status int, mensaje string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Message: mensaje})
}

func contieneInsensible(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// ── Auth ─────────────────────────────────────────────────────────

func (s *Server) login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "cuerpo inválido")
	}

	s.almacen.mu.Lock()
	defer s.almacen.mu.Unlock()

	u, ok := s.almacen.usuarios[in.Username]
	if !ok || bcrypt.CompareHashAndPassword(u.Hash, []byte(in.Password)) != nil {
		return errorJSON(c, fiber.StatusUnauthorized, "credenciales incorrectas")
	}

	token, err := emitirToken(s.secreto, u, s.ahora())
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "no se pudo emitir el token")
	}

	rol := ""
	if len(u.Roles) > 0 {
		rol = u.Roles[0]
	}
	return c.JSON(dto.LoginResponse{
		Token:    token,
		Type:     "Bearer",
		Username: u.Username,
		Email:    u.Email,
		Role:     rol,
	})
}

func (s *Server) registrar(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.Username == "" || in.Password == "" {
		return errorJSON(c, fiber.StatusBadRequest, "username y password son requeridos")
	}

	s.almacen.mu.Lock()
	defer s.almacen.mu.Unlock()

	if _, existe := s.almacen.usuarios[in.Username]; existe {
		return errorJSON(c, fiber.StatusConflict, "el username ya está registrado")
	}
	s.almacen.crearUsuario(in.Username, in.Email, in.Password, []string{string(entity.RolCliente)})
	return c.SendStatus(fiber.StatusCreated)
}

// ── Productos ────────────────────────────────────────────────────

func (s *Server) listarProductos(c *fiber.Ctx) error {
	s.almacen.mu.Lock()
	defer s.almacen.mu.Unlock()

	out := make([]dto.ProductoDTO, 0)
	for _, p := range s.almacen.listarProductos() {
		out = append(out, dto.ProductoFromEntity(p))
	}
	return c.JSON(out)
}

func (s *Server) buscarProductos(c *fiber.Ctx) error {
	nombre := c.Query("nombre")

	s.almacen.mu.Lock()
	defer s.almacen.mu.Unlock()

	out := make([]dto.ProductoDTO, 0)
	for _, p := range s.almacen.listarProductos() {
		if contieneInsensible(p.Nombre, nombre) {
			out = append(out, dto.ProductoFromEntity(p))
		}
	}
	return c.JSON(out)
}

func (s *Server) productosEnStock(c *fiber.Ctx) error {
	s.almacen.mu.Lock()
	defer s.almacen.mu.Unlock()

	out := make([]dto.ProductoDTO, 0)
	for _, p := range s.almacen.listarProductos() {
		if p.Stock > 0 {
			out = append(out, dto.ProductoFromEntity(p))
		}
	}
	return c.JSON(out)
}

func (s *Server) obtenerProducto(c *fiber.Ctx) error {
	s.almacen.mu.Lock()
	defer s.almacen.mu.Unlock()

	p, ok := s.almacen.productos[c.Params("id")]
	if !ok {
		return errorJSON(c, fiber.StatusNotFound, "producto no encontrado")
	}
	return c.JSON(dto.ProductoFromEntity(*p))
}

func (s *Server) crearProducto(c *fiber.Ctx) error {
	var in dto.ProductoDTO
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.Nombre == "" {
		return errorJSON(c, fiber.StatusBadRequest, "nombre requerido")
	}

	s.almacen.mu.Lock()
	defer s.almacen.mu.Unlock()

	p := in.ToEntity()
	p.ID = ""
	p.Activo = true
	creado := s.almacen.crearProducto(p)
	return c.Status(fiber.StatusCreated).JSON(dto.ProductoFromEntity(*creado))
}

func (s *Server) actualizarProducto(c *fiber.Ctx) error {
	var in dto.ProductoDTO
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "cuerpo inválido")
	}

	s.almacen.mu.Lock()
	defer s.almacen.mu.Unlock()

	p, ok := s.almacen.productos[c.Params("id")]
	if !ok {
		return errorJSON(c, fiber.StatusNotFound, "producto no encontrado")
	}
	actualizado := in.ToEntity()
	actualizado.ID = p.ID
	*p = actualizado
	return c.JSON(dto.ProductoFromEntity(*p))
}

func (s *Server) eliminarProducto(c *fiber.Ctx) error {
	s.almacen.mu.Lock()
	defer s.almacen.mu.Unlock()

	id := c.Params("id")
	if _, ok := s.almacen.productos[id]; !ok {
		return errorJSON(c, fiber.StatusNotFound, "producto no encontrado")
	}
	delete(s.almacen.productos, id)
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Pedidos ──────────────────────────────────────────────────────

func (s *Server) listarPedidos(c *fiber.Ctx) error {
	s.almacen.mu.Lock()
	defer s.almacen.mu.Unlock()

	out := make([]dto.PedidoDTO, 0)
	for _, p := range s.almacen.listarPedidos() {
		out = append(out, dto.PedidoFromEntity(p))
	}
	return c.JSON(out)
}

func (s *Server) listarPedidosMios(c *fiber.Ctx) error {
	s.almacen.mu.Lock()
	defer s.almacen.mu.Unlock()

	u, ok := s.almacen.usuarios[getUsername(c)]
	if !ok {
		return errorJSON(c, fiber.StatusUnauthorized, "usuario desconocido")
	}

	out := make([]dto.PedidoDTO, 0)
	for _, p := range s.almacen.listarPedidos() {
		if p.UsuarioID == u.ID {
			out = append(out, dto.PedidoFromEntity(p))
		}
	}
	return c.JSON(out)
}

func (s *Server) obtenerPedido(c *fiber.Ctx) error {
	s.almacen.mu.Lock()
	defer s.almacen.mu.Unlock()

	p, ok := s.almacen.pedidos[c.Params("id")]
	if !ok {
		return errorJSON(c, fiber.StatusNotFound, "pedido no encontrado")
	}
	if getRol(c) != string(entity.RolAdmin) {
		u := s.almacen.usuarios[getUsername(c)]
		if u == nil || p.UsuarioID != u.ID {
			return errorJSON(c, fiber.StatusForbidden, "el pedido no es tuyo")
		}
	}
	return c.JSON(dto.PedidoFromEntity(*p))
}

func (s *Server) crearPedido(c *fiber.Ctx) error {
	var in dto.CrearPedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "cuerpo inválido")
	}

	s.almacen.mu.Lock()
	defer s.almacen.mu.Unlock()

	u, ok := s.almacen.usuarios[getUsername(c)]
	if !ok {
		return errorJSON(c, fiber.StatusUnauthorized, "usuario desconocido")
	}

	lineas := make([]entity.ItemCarrito, 0, len(in.Productos))
	for _, l := range in.Productos {
		lineas = append(lineas, entity.ItemCarrito{ProductoID: l.ProductoID, Cantidad: l.Cantidad})
	}

	pedido, err := s.almacen.crearPedido(u.ID, lineas, s.ahora())
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(dto.PedidoFromEntity(pedido))
}

func (s *Server) cambiarEstadoPedido(c *fiber.Ctx) error {
	hacia, err := entity.ParseEstado(c.Query("estado"))
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	s.almacen.mu.Lock()
	defer s.almacen.mu.Unlock()

	p, ok := s.almacen.pedidos[c.Params("id")]
	if !ok {
		return errorJSON(c, fiber.StatusNotFound, "pedido no encontrado")
	}
	if !entity.TransicionValida(p.Estado, hacia) {
		return errorJSON(c, fiber.StatusConflict, "transición de estado no permitida")
	}

	if hacia == entity.EstadoCancelado {
		s.almacen.reponerStock(p)
	}
	p.Estado = hacia
	return c.JSON(dto.PedidoFromEntity(*p))
}

func (s *Server) cancelarPedido(c *fiber.Ctx) error {
	s.almacen.mu.Lock()
	defer s.almacen.mu.Unlock()

	p, ok := s.almacen.pedidos[c.Params("id")]
	if !ok {
		return errorJSON(c, fiber.StatusNotFound, "pedido no encontrado")
	}
	if getRol(c) != string(entity.RolAdmin) {
		u := s.almacen.usuarios[getUsername(c)]
		if u == nil || p.UsuarioID != u.ID {
			return errorJSON(c, fiber.StatusForbidden, "el pedido no es tuyo")
		}
	}
	if !p.Cancelable() {
		return errorJSON(c, fiber.StatusConflict, "solo un pedido pendiente puede cancelarse")
	}

	s.almacen.reponerStock(p)
	p.Estado = entity.EstadoCancelado
	return c.JSON(dto.PedidoFromEntity(*p))
}

// ── Administración ───────────────────────────────────────────────

func (s *Server) listarUsuarios(c *fiber.Ctx) error {
	s.almacen.mu.Lock()
	defer s.almacen.mu.Unlock()

	out := make([]dto.UsuarioDTO, 0, len(s.almacen.usuarios))
	for _, u := range s.almacen.usuarios {
		out = append(out, dto.UsuarioDTO{ID: u.ID, Username: u.Username, Email: u.Email, Roles: u.Roles})
	}
	return c.JSON(out)
}
