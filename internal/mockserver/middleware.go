package mockserver

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/ejemplo/tienda-cliente/internal/application/dto"
	"github.com/ejemplo/tienda-cliente/internal/domain/entity"
)

// Locals keys para username y rol en Fiber.
const (
	localUsername = "username"
	localRol      = "rol"
)

// claimsServidor son los claims que el servidor emite y valida.
type claimsServidor struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Role     string `json:"role"`
}

// emitirToken firma un token HS256 de una hora para el usuario.
func emitirToken(secreto string, u *usuario, ahora time.Time) (string, error) {
	rol := ""
	if len(u.Roles) > 0 {
		rol = u.Roles[0]
	}
	claims := claimsServidor{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(ahora),
			ExpiresAt: jwt.NewNumericDate(ahora.Add(time.Hour)),
		},
		Username: u.Username,
		Role:     rol,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secreto))
}

// authMiddleware valida el Bearer Token JWT y deja username y rol en c.Locals.
func authMiddleware(secreto string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}

		claims := &claimsServidor{}
		token, err := jwt.ParseWithClaims(strings.TrimSpace(parts[1]), claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.ErrUnauthorized
			}
			return []byte(secreto), nil
		})
		if err != nil || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}

		c.Locals(localUsername, claims.Username)
		c.Locals(localRol, claims.Role)
		return c.Next()
	}
}

// requireRol exige un rol concreto (después del middleware de auth).
func requireRol(rol entity.Rol) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if getRol(c) != string(rol) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
		}
		return c.Next()
	}
}

func getUsername(c *fiber.Ctx) string {
	s, _ := c.Locals(localUsername).(string)
	return s
}

func getRol(c *fiber.Ctx) string {
	s, _ := c.Locals(localRol).(string)
	return s
}
