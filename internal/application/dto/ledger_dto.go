package dto

import "time"

// AdjustQuantityRequest body para POST /api/products/:id/adjust.
// Delta es el cambio con signo: positivo entrada (RECEIPT), negativo salida (ISSUE).
type AdjustQuantityRequest struct {
	Delta int64  `json:"delta"`
	Note  string `json:"note,omitempty"`
}

// AdjustQuantityResponse cantidad resultante tras el ajuste.
type AdjustQuantityResponse struct {
	ProductID   string `json:"product_id"`
	NewQuantity int64  `json:"new_quantity"`
}

// MovementResponse una entrada del kardex.
type MovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id,omitempty"`
	ProductName string    `json:"product_name"` // "producto eliminado" si ya no existe
	Type        string    `json:"operation_type"`
	Quantity    int64     `json:"quantity"`
	Note        string    `json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
