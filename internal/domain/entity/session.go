package entity

import "strings"

// Rol es el rol cerrado del usuario autenticado.
type Rol string

// Roles válidos del sistema.
const (
	RolAdmin   Rol = "ADMIN"
	RolCliente Rol = "CLIENTE"
)

// ParseRol normaliza un rol recibido del backend o del almacenamiento local.
// La comparación es insensible a mayúsculas: "admin", "ADMIN" y "Admin" son el
// mismo rol. Un rol vacío o desconocido se trata como ausencia de rol.
func ParseRol(s string) (Rol, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(RolAdmin):
		return RolAdmin, true
	case string(RolCliente):
		return RolCliente, true
	default:
		return "", false
	}
}

// Session es la prueba de autenticación cacheada por el cliente.
// Invariante: Token y Rol se escriben y se borran siempre juntos; una sesión
// con uno solo de los dos no es válida.
type Session struct {
	Token    string
	Rol      Rol
	Username string
}

// Valida indica si la sesión tiene token y rol presentes a la vez.
func (s Session) Valida() bool {
	return s.Token != "" && s.Rol != ""
}

// EsAdmin indica si la sesión pertenece a un administrador.
func (s Session) EsAdmin() bool {
	return s.Valida() && s.Rol == RolAdmin
}
