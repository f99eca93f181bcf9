package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/ejemplo/tienda-cliente/internal/application/admin"
	"github.com/ejemplo/tienda-cliente/internal/application/auth"
	"github.com/ejemplo/tienda-cliente/internal/application/guard"
	"github.com/ejemplo/tienda-cliente/internal/application/orders"
	"github.com/ejemplo/tienda-cliente/internal/domain/entity"
)

// ── Páginas públicas ─────────────────────────────────────────────

// Inicio pinta la portada. Consume el mensaje de despedida si lo hay; una
// segunda carga ya no lo muestra.
func (a *App) Inicio(ctx context.Context) error {
	sesion, err := a.autorizar(guard.PaginaInicio)
	if err != nil {
		return err
	}

	if msg, ok, err := a.Flash.Tomar(); err != nil {
		a.Log.Error().Err(err).Msg("no se pudo leer el mensaje de despedida")
	} else if ok {
		a.Sink.Notificar(msg, SeveridadExito)
	}

	fmt.Fprintln(a.Out, "=== Tienda Online ===")
	if sesion.Valida() {
		fmt.Fprintf(a.Out, "Sesión de %s (%s)\n", sesion.Username, sesion.Rol)
	} else {
		fmt.Fprintln(a.Out, "No has iniciado sesión.")
	}
	return nil
}

// Login autentica y redirige a la página que corresponde al rol.
func (a *App) Login(ctx context.Context, username, password string) error {
	if _, err := a.autorizar(guard.PaginaLogin); err != nil {
		return err
	}

	sesion, err := a.Auth.Login(ctx, username, password)
	if err != nil {
		a.reportar(err)
		return err
	}
	a.Sink.Notificar(fmt.Sprintf("¡Bienvenido, %s!", sesion.Username), SeveridadExito)

	switch auth.DestinoPorRol(sesion.Rol) {
	case "admin":
		return a.AdminDashboard(ctx)
	case "productos":
		return a.Productos(ctx, "", false)
	default:
		return a.Inicio(ctx)
	}
}

// Registro da de alta un usuario y lo deja en la página de login.
func (a *App) Registro(ctx context.Context, username, email, password string) error {
	if _, err := a.autorizar(guard.PaginaRegistro); err != nil {
		return err
	}
	if err := a.Auth.Registrar(ctx, username, email, password); err != nil {
		a.reportar(err)
		return err
	}
	a.Sink.Notificar("Registro completado. Ya puedes iniciar sesión.", SeveridadExito)
	return nil
}

// Logout cierra la sesión; la despedida se verá en la siguiente portada.
func (a *App) Logout() error {
	if err := a.Auth.Logout(); err != nil {
		a.reportar(err)
		return err
	}
	fmt.Fprintln(a.Out, "Redirigiendo a inicio...")
	return nil
}

// ── Catálogo ─────────────────────────────────────────────────────

// Productos pinta el catálogo. Con búsqueda filtra por nombre en el servidor;
// con soloStock pide únicamente productos con existencias.
func (a *App) Productos(ctx context.Context, busqueda string, soloStock bool) error {
	sesion, err := a.autorizar(guard.PaginaProductos)
	if err != nil {
		return err
	}

	var productos []entity.Producto
	switch {
	case busqueda != "":
		productos, err = a.Catalogo.Buscar(ctx, busqueda)
	case soloStock:
		productos, err = a.Catalogo.EnStock(ctx)
	default:
		productos, err = a.Catalogo.Listar(ctx)
	}
	if err != nil {
		a.reportar(err)
		return err
	}

	vista := vistaPara(sesion.Rol)
	fmt.Fprintf(a.Out, "Productos (%d)\n", len(productos))
	for _, p := range productos {
		fmt.Fprintln(a.Out, vista.filaProducto(p))
	}
	return nil
}

// GuardarProducto crea o actualiza un producto del catálogo (solo admin).
func (a *App) GuardarProducto(ctx context.Context, p entity.Producto) error {
	if _, err := a.autorizar(guard.PaginaAdmin); err != nil {
		return err
	}
	guardado, err := a.Catalogo.Guardar(ctx, p)
	if err != nil {
		a.reportar(err)
		return err
	}
	a.Sink.Notificar(fmt.Sprintf("Producto %q guardado", guardado.Nombre), SeveridadExito)
	return nil
}

// EliminarProducto borra un producto del catálogo (solo admin).
func (a *App) EliminarProducto(ctx context.Context, id string) error {
	if _, err := a.autorizar(guard.PaginaAdmin); err != nil {
		return err
	}
	if err := a.Catalogo.Eliminar(ctx, id); err != nil {
		a.reportar(err)
		return err
	}
	a.Sink.Notificar("Producto eliminado", SeveridadExito)
	return nil
}

// ── Carrito ──────────────────────────────────────────────────────

// VerCarrito pinta las líneas actuales con los datos observados del catálogo.
func (a *App) VerCarrito(ctx context.Context) error {
	if _, err := a.autorizar(guard.PaginaCarrito); err != nil {
		return err
	}

	items := a.Carrito.Items()
	if len(items) == 0 {
		fmt.Fprintln(a.Out, "El carrito está vacío.")
		return nil
	}

	fmt.Fprintf(a.Out, "Carrito (%d líneas)\n", len(items))
	total := decimal.Zero
	for _, it := range items {
		nombre := nombreProducto(it.ProductoID, a.Catalogo.Observado)
		linea := fmt.Sprintf("  %-24s x%d", nombre, it.Cantidad)
		if p, ok := a.Catalogo.Observado(it.ProductoID); ok {
			sub := entity.ItemPedido{ProductoID: it.ProductoID, Cantidad: it.Cantidad, PrecioUnitario: p.Precio}.Subtotal()
			total = total.Add(sub)
			linea += fmt.Sprintf(" %12s", FormatearPrecio(sub))
		}
		fmt.Fprintln(a.Out, linea)
	}
	fmt.Fprintf(a.Out, "Total estimado: %s\n", FormatearPrecio(total))
	return nil
}

// AgregarAlCarrito suma una unidad. Si el producto aún no se ha observado en
// esta sesión, se consulta primero para conocer su stock.
func (a *App) AgregarAlCarrito(ctx context.Context, productoID string) error {
	if _, err := a.autorizar(guard.PaginaCarrito); err != nil {
		return err
	}
	if _, ok := a.Catalogo.Observado(productoID); !ok {
		if _, err := a.Catalogo.Obtener(ctx, productoID); err != nil {
			a.reportar(err)
			return err
		}
	}
	if err := a.Carrito.Agregar(productoID); err != nil {
		a.reportar(err)
		return err
	}
	a.Sink.Notificar("Producto agregado al carrito", SeveridadExito)
	return nil
}

// CambiarCantidad fija la cantidad de una línea; cero o menos la elimina.
func (a *App) CambiarCantidad(ctx context.Context, productoID string, cantidad int) error {
	if _, err := a.autorizar(guard.PaginaCarrito); err != nil {
		return err
	}
	if err := a.Carrito.FijarCantidad(productoID, cantidad); err != nil {
		a.reportar(err)
		return err
	}
	return a.VerCarrito(ctx)
}

// QuitarDelCarrito elimina una línea.
func (a *App) QuitarDelCarrito(ctx context.Context, productoID string) error {
	if _, err := a.autorizar(guard.PaginaCarrito); err != nil {
		return err
	}
	if err := a.Carrito.Quitar(productoID); err != nil {
		a.reportar(err)
		return err
	}
	a.Sink.Notificar("Producto quitado del carrito", SeveridadExito)
	return nil
}

// Checkout crea el pedido con el contenido del carrito y muestra el resultado.
func (a *App) Checkout(ctx context.Context) error {
	if _, err := a.autorizar(guard.PaginaCarrito); err != nil {
		return err
	}
	pedido, err := a.Carrito.Checkout(ctx)
	if err != nil {
		a.reportar(err)
		return err
	}
	a.Sink.Notificar("¡Pedido realizado con éxito!", SeveridadExito)
	a.pintarPedido(pedido, vistaPara(entity.RolCliente))
	return nil
}

// ── Pedidos ──────────────────────────────────────────────────────

// VerPedidos pinta los pedidos del usuario autenticado.
func (a *App) VerPedidos(ctx context.Context) error {
	sesion, err := a.autorizar(guard.PaginaPedidos)
	if err != nil {
		return err
	}
	pedidos, err := a.Pedidos.ListarMios(ctx)
	if err != nil {
		a.reportar(err)
		return err
	}

	vista := vistaPara(sesion.Rol)
	fmt.Fprintf(a.Out, "Mis pedidos (%d)\n", len(pedidos))
	for _, p := range pedidos {
		a.pintarPedido(p, vista)
	}
	return nil
}

// CancelarPedido cancela un pedido del usuario y vuelve a listar.
func (a *App) CancelarPedido(ctx context.Context, pedidoID string) error {
	if _, err := a.autorizar(guard.PaginaPedidos); err != nil {
		return err
	}
	if err := a.Pedidos.Cancelar(ctx, pedidoID); err != nil {
		a.reportar(err)
		return err
	}
	a.Sink.Notificar("Pedido cancelado", SeveridadExito)
	return a.VerPedidos(ctx)
}

// ExportarComprobante genera el comprobante PDF de un pedido y lo escribe en
// ruta.
func (a *App) ExportarComprobante(ctx context.Context, pedidoID, ruta string) error {
	if _, err := a.autorizar(guard.PaginaPedidos); err != nil {
		return err
	}

	pedido, err := a.Pedidos.Obtener(ctx, pedidoID)
	if err != nil {
		a.reportar(err)
		return err
	}

	productos := make(map[string]entity.Producto)
	for _, it := range pedido.Productos {
		if p, ok := a.Catalogo.Observado(it.ProductoID); ok {
			productos[it.ProductoID] = p
		}
	}

	pdf, err := a.Comprobantes.Generar(pedido, productos)
	if err != nil {
		a.reportar(err)
		return err
	}
	if err := os.WriteFile(ruta, pdf, 0o644); err != nil {
		a.reportar(err)
		return err
	}
	a.Sink.Notificar(fmt.Sprintf("Comprobante guardado en %s", ruta), SeveridadExito)
	return nil
}

// ── Panel de administración ──────────────────────────────────────

// AdminDashboard pinta las métricas agregadas del panel.
func (a *App) AdminDashboard(ctx context.Context) error {
	if _, err := a.autorizar(guard.PaginaAdmin); err != nil {
		return err
	}

	productos, err := a.Catalogo.Listar(ctx)
	if err != nil {
		a.reportar(err)
		return err
	}
	pedidos, err := a.Pedidos.ListarTodos(ctx)
	if err != nil {
		a.reportar(err)
		return err
	}

	m := admin.CalcularMetricas(productos, pedidos)
	fmt.Fprintln(a.Out, "=== Panel de administración ===")
	fmt.Fprintf(a.Out, "Productos: %d (stock total %d, sin stock %d)\n", m.TotalProductos, m.StockTotal, m.ProductosSinStock)
	fmt.Fprintf(a.Out, "Pedidos: %d (pendientes %d, enviados %d)\n", m.TotalPedidos, m.PedidosPendientes, m.PedidosEnviados)
	fmt.Fprintf(a.Out, "Productos distintos pedidos: %d\n", m.ProductosEnPedidos)
	fmt.Fprintf(a.Out, "Último pedido: %s\n", FormatearFecha(m.UltimoPedido))
	return nil
}

// AdminPedidos pinta todos los pedidos, opcionalmente filtrados por estado.
func (a *App) AdminPedidos(ctx context.Context, filtro entity.EstadoPedido) error {
	sesion, err := a.autorizar(guard.PaginaAdmin)
	if err != nil {
		return err
	}
	pedidos, err := a.Pedidos.ListarTodos(ctx)
	if err != nil {
		a.reportar(err)
		return err
	}

	pedidos = orders.FiltrarPorEstado(pedidos, filtro)
	vista := vistaPara(sesion.Rol)
	fmt.Fprintf(a.Out, "Pedidos (%d)\n", len(pedidos))
	for _, p := range pedidos {
		a.pintarPedido(p, vista)
	}
	return nil
}

// CambiarEstadoPedido pide la transición al servidor y vuelve a listar; un
// rechazo (409) se notifica tal cual, el listado sigue reflejando al servidor.
func (a *App) CambiarEstadoPedido(ctx context.Context, pedidoID string, estado string) error {
	if _, err := a.autorizar(guard.PaginaAdmin); err != nil {
		return err
	}

	hacia, err := entity.ParseEstado(estado)
	if err != nil {
		a.reportar(err)
		return err
	}
	if err := a.Pedidos.CambiarEstado(ctx, pedidoID, hacia); err != nil {
		a.reportar(err)
		return err
	}
	a.Sink.Notificar(fmt.Sprintf("Pedido actualizado a %s", hacia), SeveridadExito)
	return a.AdminPedidos(ctx, "")
}

// AdminUsuarios lista los usuarios registrados.
func (a *App) AdminUsuarios(ctx context.Context) error {
	if _, err := a.autorizar(guard.PaginaAdmin); err != nil {
		return err
	}
	usuarios, err := a.Admin.ListarUsuarios(ctx)
	if err != nil {
		a.reportar(err)
		return err
	}

	fmt.Fprintf(a.Out, "Usuarios (%d)\n", len(usuarios))
	for _, u := range usuarios {
		fmt.Fprintf(a.Out, "  %-16s %-28s %v\n", u.Username, u.Email, u.Roles)
	}
	return nil
}

// pintarPedido escribe la cabecera y las líneas de un pedido.
func (a *App) pintarPedido(p entity.Pedido, vista vistaRol) {
	fmt.Fprintf(a.Out, "Pedido %s  %s  %s  %s\n",
		abreviarID(p.ID), FormatearFecha(p.Fecha), p.Estado, FormatearPrecio(p.Total))
	for _, it := range p.Productos {
		fmt.Fprintf(a.Out, "  %-24s x%d  %s\n",
			nombreProducto(it.ProductoID, a.Catalogo.Observado), it.Cantidad, FormatearPrecio(it.Subtotal()))
	}
	if accion := vista.accionPedido(p); accion != "" {
		fmt.Fprintf(a.Out, "  (%s)\n", accion)
	}
}
