package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// Quantity nunca es negativo y solo se modifica vía el kardex (AdjustQuantity),
// nunca con un update directo, para que el historial de movimientos cuadre.
type Product struct {
	ID         string
	Name       string
	Quantity   int64
	Price      decimal.Decimal // precio unitario de venta
	CategoryID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ProductWithCategory es la fila del listado: producto + nombre de su categoría.
// CategoryName trae un placeholder si la categoría ya no existe (LEFT JOIN).
type ProductWithCategory struct {
	Product
	CategoryName string
}

// Value devuelve el valor de inventario de la fila (Quantity × Price).
func (p Product) Value() decimal.Decimal {
	return decimal.NewFromInt(p.Quantity).Mul(p.Price)
}
