package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Severidad del aviso mostrado al usuario.
type Severidad string

// Severidades disponibles.
const (
	SeveridadExito Severidad = "éxito"
	SeveridadInfo  Severidad = "info"
	SeveridadError Severidad = "error"
)

// DuracionAviso es la vigencia fija de un aviso; no es configurable por
// llamada.
const DuracionAviso = 3 * time.Second

// Sink muestra avisos transitorios al usuario. Un aviso nuevo reemplaza
// siempre al vigente; pasada la duración el aviso deja de estar vigente.
type Sink struct {
	mu        sync.Mutex
	out       io.Writer
	ahora     func() time.Time
	mensaje   string
	severidad Severidad
	expira    time.Time
}

// NewSink construye el sink escribiendo en out.
func NewSink(out io.Writer) *Sink {
	return &Sink{out: out, ahora: time.Now}
}

// Notificar muestra el aviso y desplaza al anterior aunque siguiera vigente.
func (s *Sink) Notificar(mensaje string, severidad Severidad) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mensaje = mensaje
	s.severidad = severidad
	s.expira = s.ahora().Add(DuracionAviso)

	fmt.Fprintf(s.out, "[%s] %s\n", strings.ToUpper(string(severidad)), mensaje)
}

// Vigente devuelve el aviso actual si su duración no ha expirado.
func (s *Sink) Vigente() (string, Severidad, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mensaje == "" || s.ahora().After(s.expira) {
		return "", "", false
	}
	return s.mensaje, s.severidad, true
}
