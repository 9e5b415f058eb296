package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrCategoryInUse     = errors.New("la categoría tiene productos asignados")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrStoreUnavailable  = errors.New("base de datos no disponible")
)

// StoreError traduce una falla del almacén (red, BD caída, fila malformada)
// a ErrStoreUnavailable conservando la causa encadenada para logs.
// Los errores de dominio pasan sin envolver.
func StoreError(err error) error {
	if err == nil {
		return nil
	}
	for _, known := range []error{ErrNotFound, ErrInvalidInput, ErrCategoryInUse, ErrInsufficientStock, ErrStoreUnavailable} {
		if errors.Is(err, known) {
			return err
		}
	}
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}
