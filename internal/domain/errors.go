package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrValidation        = errors.New("entrada inválida")
	ErrNetwork           = errors.New("error de conexión")
	ErrEmptyCart         = errors.New("el carrito está vacío")
	ErrInsufficientStock = errors.New("stock insuficiente")
)
