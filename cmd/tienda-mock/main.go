// tienda-mock arranca el backend de demostración en memoria. Sirve los mismos
// endpoints que el backend real, con un admin (admin/admin123), un cliente
// (cliente/cliente123) y un catálogo pequeño ya sembrados.
package main

import (
	"flag"

	"github.com/ejemplo/tienda-cliente/internal/mockserver"
	"github.com/ejemplo/tienda-cliente/pkg/config"
	"github.com/ejemplo/tienda-cliente/pkg/logger"
)

func main() {
	var (
		addr    = flag.String("addr", ":8080", "dirección de escucha")
		secreto = flag.String("secreto", "secreto-desarrollo", "secreto de firma JWT")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	srv := mockserver.New(*secreto, log)
	if err := srv.Escuchar(*addr); err != nil {
		log.Fatal().Err(err).Msg("servir")
	}
}
