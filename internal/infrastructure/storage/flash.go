package storage

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Flash implementa repository.FlashStore sobre SQLite.
type Flash struct {
	db *gorm.DB
}

// Dejar escribe el mensaje pendiente, reemplazando cualquiera anterior.
func (f *Flash) Dejar(mensaje string) error {
	err := f.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", 1).Delete(&registroFlash{}).Error; err != nil {
			return err
		}
		return tx.Create(&registroFlash{ID: 1, Mensaje: mensaje}).Error
	})
	if err != nil {
		return fmt.Errorf("storage: dejar flash: %w", err)
	}
	return nil
}

// Tomar devuelve y elimina el mensaje pendiente.
func (f *Flash) Tomar() (string, bool, error) {
	var reg registroFlash
	err := f.db.First(&reg, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: leer flash: %w", err)
	}
	if err := f.db.Delete(&registroFlash{}, 1).Error; err != nil {
		return "", false, fmt.Errorf("storage: consumir flash: %w", err)
	}
	return reg.Mensaje, true, nil
}
