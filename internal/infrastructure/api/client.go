// Package api implementa la pasarela HTTP hacia el backend REST de la tienda.
//
// Un único cliente base resuelve lo transversal (bearer token implícito desde
// el SessionStore, correlación por X-Request-ID, mapeo de estados HTTP a los
// errores de dominio) y cada recurso aporta sus operaciones encima. La
// pasarela no mantiene caché propia: quien necesite lectura consistente tras
// una escritura debe volver a consultar.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ejemplo/tienda-cliente/internal/application/dto"
	"github.com/ejemplo/tienda-cliente/internal/domain"
	"github.com/ejemplo/tienda-cliente/internal/domain/repository"
	"github.com/ejemplo/tienda-cliente/pkg/logger"
)

// Client es la pasarela base hacia el backend.
type Client struct {
	baseURL  string
	http     *http.Client
	sesiones repository.SessionStore
	log      *logger.Logger
}

// New construye la pasarela. El token se lee del SessionStore en cada
// petición, nunca se retiene: así un logout concurrente surte efecto inmediato.
func New(baseURL string, timeout time.Duration, sesiones repository.SessionStore, log *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		sesiones: sesiones,
		log:      log,
	}
}

// do ejecuta una petición JSON y decodifica la respuesta en out (si no es nil).
// No hay reintentos: todo fallo es terminal para la acción que lo originó.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: serializar cuerpo: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("api: crear petición: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	if sesion, err := c.sesiones.Obtener(); err == nil && sesion.Token != "" {
		req.Header.Set("Authorization", "Bearer "+sesion.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Str("metodo", method).Str("ruta", path).Str("request_id", requestID).Err(err).Msg("fallo de transporte")
		return fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	c.log.Debug().Str("metodo", method).Str("ruta", path).Str("request_id", requestID).Int("status", resp.StatusCode).Msg("respuesta del backend")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.mapError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: decodificar respuesta: %w", err)
	}
	return nil
}

// mapError traduce un estado HTTP no exitoso a la taxonomía de dominio,
// conservando el message del backend cuando existe.
func (c *Client) mapError(resp *http.Response) error {
	var cuerpo dto.ErrorResponse
	_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&cuerpo)

	var sentinel error
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		sentinel = domain.ErrUnauthorized
	case resp.StatusCode == http.StatusForbidden:
		sentinel = domain.ErrForbidden
	case resp.StatusCode == http.StatusNotFound:
		sentinel = domain.ErrNotFound
	case resp.StatusCode == http.StatusConflict:
		sentinel = domain.ErrConflict
	case resp.StatusCode >= 500:
		sentinel = domain.ErrNetwork
	default:
		sentinel = domain.ErrValidation
	}

	if cuerpo.Message != "" {
		return fmt.Errorf("%w: %s", sentinel, cuerpo.Message)
	}
	return fmt.Errorf("%w: HTTP %d", sentinel, resp.StatusCode)
}
