package repository

import "github.com/jhoicas/kardex-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia del kardex.
// Solo inserta y lee: los movimientos son append-only.
type MovementRepository interface {
	// Create falla con domain.ErrInvalidInput si Quantity <= 0 o el tipo no es válido.
	Create(movement *entity.Movement) error
	// ListWithProduct devuelve el historial (más reciente primero) con el nombre
	// del producto; productos eliminados rinden placeholder.
	ListWithProduct(limit, offset int) ([]*entity.MovementWithProduct, error)
	ListByProduct(productID string, limit, offset int) ([]*entity.MovementWithProduct, error)
}
