package repository

import "github.com/jhoicas/kardex-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	List() ([]*entity.Category, error)
	// Delete falla con domain.ErrCategoryInUse si la categoría tiene productos
	// asignados (FK RESTRICT). Nunca elimina en cascada.
	Delete(id string) error
}
