package entity

import "time"

// Tipos de movimiento del kardex.
const (
	MovementTypeReceiptNew = "RECEIPT_NEW" // stock inicial al crear el producto
	MovementTypeReceipt    = "RECEIPT"     // entrada
	MovementTypeIssue      = "ISSUE"       // salida
)

// ValidMovementType indica si el tipo es uno de los tres conocidos.
func ValidMovementType(t string) bool {
	return t == MovementTypeReceiptNew || t == MovementTypeReceipt || t == MovementTypeIssue
}

// Movement es una entrada del kardex: registra cada cambio de stock y su motivo.
// Append-only: nunca se actualiza ni se elimina. Quantity es la magnitud del
// cambio (siempre > 0); la dirección la da Type.
type Movement struct {
	ID        string
	ProductID string // vacío si el producto fue eliminado (FK con SET NULL)
	Type      string
	Quantity  int64
	Note      string
	CreatedAt time.Time
}

// MovementWithProduct es la fila del historial: movimiento + nombre del producto.
// ProductName trae un placeholder si el producto fue eliminado.
type MovementWithProduct struct {
	Movement
	ProductName string
}
