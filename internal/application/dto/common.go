package dto

// ErrorResponse cuerpo de error JSON del backend. El campo message es el que
// se muestra al usuario.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}
