package repository

import "github.com/jhoicas/kardex-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// UpdateQuantity solo debe usarse dentro de la transacción del kardex.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) dentro de una tx.
	// Devuelve nil sin error si el producto no existe.
	GetForUpdate(id string) (*entity.Product, error)
	// ListWithCategory devuelve productos con el nombre de su categoría
	// (LEFT JOIN; categoría ausente rinde placeholder, nunca falla el listado).
	ListWithCategory() ([]*entity.ProductWithCategory, error)
	UpdateQuantity(id string, quantity int64) error
	// Delete elimina el producto. Los movimientos históricos quedan huérfanos
	// (product_id en NULL), nunca se eliminan.
	Delete(id string) error
}
