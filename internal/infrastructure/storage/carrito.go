package storage

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/ejemplo/tienda-cliente/internal/domain/entity"
)

// Carrito implementa repository.CartStore sobre SQLite.
type Carrito struct {
	db *gorm.DB
}

// Items devuelve las líneas del carrito en orden de inserción.
func (c *Carrito) Items() ([]entity.ItemCarrito, error) {
	var regs []registroCarrito
	if err := c.db.Order("id asc").Find(&regs).Error; err != nil {
		return nil, fmt.Errorf("storage: leer carrito: %w", err)
	}
	items := make([]entity.ItemCarrito, 0, len(regs))
	for _, r := range regs {
		items = append(items, entity.ItemCarrito{ProductoID: r.ProductoID, Cantidad: r.Cantidad})
	}
	return items, nil
}

// Guardar reemplaza el contenido completo del carrito en una transacción.
func (c *Carrito) Guardar(items []entity.ItemCarrito) error {
	err := c.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&registroCarrito{}).Error; err != nil {
			return err
		}
		for _, it := range items {
			if err := tx.Create(&registroCarrito{ProductoID: it.ProductoID, Cantidad: it.Cantidad}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("storage: guardar carrito: %w", err)
	}
	return nil
}
