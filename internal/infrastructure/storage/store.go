// Package storage persiste el estado local del cliente (sesión, carrito y
// mensaje flash) en un archivo SQLite, el reemplazo del localStorage del
// navegador. Cada mutación es una transacción: ningún lector puede observar
// una sesión a medio escribir.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// registroSesion es la única fila de sesión (id fijo 1).
type registroSesion struct {
	ID       uint   `gorm:"primaryKey"`
	Token    string `gorm:"not null"`
	Rol      string `gorm:"not null"`
	Username string `gorm:"not null"`
}

func (registroSesion) TableName() string { return "sesion" }

// registroCarrito es una línea del carrito; el id autoincremental conserva el
// orden de inserción.
type registroCarrito struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	ProductoID string `gorm:"uniqueIndex;not null"`
	Cantidad   int    `gorm:"not null;check:cantidad > 0"`
}

func (registroCarrito) TableName() string { return "carrito" }

// registroFlash es el mensaje de un solo uso (id fijo 1).
type registroFlash struct {
	ID      uint   `gorm:"primaryKey"`
	Mensaje string `gorm:"not null"`
}

func (registroFlash) TableName() string { return "flash" }

// Store agrupa los tres almacenes sobre el mismo archivo SQLite.
type Store struct {
	Sesiones *Sesiones
	Carrito  *Carrito
	Flash    *Flash
}

// New abre (o crea) el archivo de estado y migra el esquema.
func New(ruta string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(ruta), 0o700); err != nil {
		return nil, fmt.Errorf("storage: crear directorio de datos: %w", err)
	}
	db, err := gorm.Open(sqlite.Open(ruta), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: abrir %s: %w", ruta, err)
	}
	if err := db.AutoMigrate(&registroSesion{}, &registroCarrito{}, &registroFlash{}); err != nil {
		return nil, fmt.Errorf("storage: migrar esquema: %w", err)
	}
	return &Store{
		Sesiones: &Sesiones{db: db},
		Carrito:  &Carrito{db: db},
		Flash:    &Flash{db: db},
	}, nil
}
