package storage

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ejemplo/tienda-cliente/internal/domain/entity"
)

// Sesiones implementa repository.SessionStore sobre SQLite.
type Sesiones struct {
	db *gorm.DB
}

// Obtener devuelve la sesión almacenada, o una sesión vacía si no hay ninguna.
// Un rol almacenado con mayúsculas distintas se normaliza al leer.
func (s *Sesiones) Obtener() (entity.Session, error) {
	var reg registroSesion
	err := s.db.First(&reg, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.Session{}, nil
	}
	if err != nil {
		return entity.Session{}, fmt.Errorf("storage: leer sesión: %w", err)
	}
	rol, _ := entity.ParseRol(reg.Rol)
	return entity.Session{Token: reg.Token, Rol: rol, Username: reg.Username}, nil
}

// Guardar escribe los tres campos de la sesión en una sola transacción.
func (s *Sesiones) Guardar(sesion entity.Session) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", 1).Delete(&registroSesion{}).Error; err != nil {
			return err
		}
		return tx.Create(&registroSesion{
			ID:       1,
			Token:    sesion.Token,
			Rol:      string(sesion.Rol),
			Username: sesion.Username,
		}).Error
	})
	if err != nil {
		return fmt.Errorf("storage: guardar sesión: %w", err)
	}
	return nil
}

// Limpiar elimina la sesión y el carrito (estado derivado) en una transacción.
func (s *Sesiones) Limpiar() error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", 1).Delete(&registroSesion{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&registroCarrito{}).Error
	})
	if err != nil {
		return fmt.Errorf("storage: limpiar sesión: %w", err)
	}
	return nil
}
