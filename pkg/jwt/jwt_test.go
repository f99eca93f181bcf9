package jwt_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ejemplo/tienda-cliente/pkg/jwt"
)

// firmar genera un token HS256 como el que emite el backend. El secreto es
// irrelevante para el cliente: nunca verifica la firma.
func firmar(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("cualquier-secreto"))
	require.NoError(t, err)
	return tok
}

func TestInspect_DecodificaClaimsSinVerificar(t *testing.T) {
	tok := firmar(t, jwt.Claims{Username: "ana", Role: "ADMIN"})

	claims, err := jwt.Inspect(tok)
	require.NoError(t, err)
	assert.Equal(t, "ana", claims.Username)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestInspect_TokenVacioOMalformado(t *testing.T) {
	_, err := jwt.Inspect("")
	assert.Error(t, err)

	_, err = jwt.Inspect("no-es-un-jwt")
	assert.Error(t, err)
}

func TestExpirado(t *testing.T) {
	ahora := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	vigente := firmar(t, jwt.Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(ahora.Add(time.Hour)),
		},
	})
	caducado := firmar(t, jwt.Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(ahora.Add(-time.Minute)),
		},
	})
	sinExp := firmar(t, jwt.Claims{Username: "ana"})

	assert.False(t, jwt.Expirado(vigente, ahora))
	assert.True(t, jwt.Expirado(caducado, ahora))
	assert.False(t, jwt.Expirado(sinExp, ahora), "sin exp decide el servidor")
	assert.True(t, jwt.Expirado("basura", ahora), "un token malformado se trata como expirado")
}
