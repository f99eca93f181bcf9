package dto

// LoginRequest credenciales para POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse respuesta de autenticación del backend. El cliente persiste
// token, role y username; el resto es informativo.
type LoginResponse struct {
	Token    string `json:"token"`
	Type     string `json:"type,omitempty"` // "Bearer"
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
}

// RegisterRequest alta de usuario para POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
