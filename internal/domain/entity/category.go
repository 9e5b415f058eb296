package entity

import "time"

// Category representa una categoría de productos.
// No se puede eliminar mientras tenga productos asignados (FK con RESTRICT).
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}
