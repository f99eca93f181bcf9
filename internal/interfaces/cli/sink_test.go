package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sinkConReloj(momento *time.Time) (*Sink, *bytes.Buffer) {
	var buf bytes.Buffer
	s := NewSink(&buf)
	s.ahora = func() time.Time { return *momento }
	return s, &buf
}

func TestNotificar_EscribeYQuedaVigente(t *testing.T) {
	momento := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s, buf := sinkConReloj(&momento)

	s.Notificar("¡Pedido realizado con éxito!", SeveridadExito)

	assert.Contains(t, buf.String(), "¡Pedido realizado con éxito!")

	msg, sev, ok := s.Vigente()
	require.True(t, ok)
	assert.Equal(t, "¡Pedido realizado con éxito!", msg)
	assert.Equal(t, SeveridadExito, sev)
}

// Un aviso nuevo desplaza al anterior aunque este siguiera vigente.
func TestNotificar_ElNuevoDesplazaAlAnterior(t *testing.T) {
	momento := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s, _ := sinkConReloj(&momento)

	s.Notificar("primero", SeveridadInfo)
	momento = momento.Add(time.Second)
	s.Notificar("segundo", SeveridadError)

	msg, sev, ok := s.Vigente()
	require.True(t, ok)
	assert.Equal(t, "segundo", msg)
	assert.Equal(t, SeveridadError, sev)
}

func TestVigente_ExpiraConLaDuracionFija(t *testing.T) {
	momento := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s, _ := sinkConReloj(&momento)

	s.Notificar("aviso", SeveridadInfo)

	momento = momento.Add(DuracionAviso)
	_, _, ok := s.Vigente()
	assert.True(t, ok, "justo en el límite sigue vigente")

	momento = momento.Add(time.Millisecond)
	_, _, ok = s.Vigente()
	assert.False(t, ok, "pasada la duración el aviso desaparece")
}

func TestVigente_SinAvisos(t *testing.T) {
	momento := time.Now()
	s, _ := sinkConReloj(&momento)

	_, _, ok := s.Vigente()
	assert.False(t, ok)
}

func TestFormatearPrecio_LocalizacionEspanola(t *testing.T) {
	assert.Equal(t, "1.234,50 €", FormatearPrecio(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "6,95 €", FormatearPrecio(decimal.RequireFromString("6.95")))
}

func TestFormatearFecha(t *testing.T) {
	assert.Equal(t, "N/A", FormatearFecha(time.Time{}))
}

func TestAbreviarID(t *testing.T) {
	assert.Equal(t, "corto", abreviarID("corto"))
	assert.Equal(t, "…90abcdef", abreviarID("1234567890abcdef"))
}
