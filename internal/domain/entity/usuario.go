package entity

// Usuario representa un usuario del sistema tal como lo lista el backend
// (solo vista de administración; el cliente no gestiona usuarios).
type Usuario struct {
	ID       string
	Username string
	Email    string
	Roles    []string
}
