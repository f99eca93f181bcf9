// Package jwt inspecciona el bearer token que entrega el backend.
//
// El cliente no conoce el secreto de firma, así que nunca puede VALIDAR un
// token: solo decodifica sus claims sin verificar para decisiones locales
// (descartar una sesión ya expirada antes de gastar una petición). La
// autoridad final sobre el token es siempre el servidor.
package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos propios del backend.
// Role permite al Access Guard decidir sin llamar al servidor.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username,omitempty"`
	Role     string `json:"role,omitempty"` // "ADMIN" | "CLIENTE"
}

// Inspect decodifica los claims del token sin verificar la firma.
// Retorna error si el token está malformado.
func Inspect(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("jwt: token vacío")
	}
	parser := jwt.NewParser()
	claims := &Claims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("jwt: token malformado: %w", err)
	}
	return claims, nil
}

// Expirado indica si el claim exp del token ya pasó. Un token malformado se
// considera expirado; un token sin exp se considera vigente (decide el server).
func Expirado(tokenString string, ahora time.Time) bool {
	claims, err := Inspect(tokenString)
	if err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return ahora.After(claims.ExpiresAt.Time)
}
