package dto

import "github.com/shopspring/decimal"

// InventorySummaryDTO resumen del inventario, calculado en fresco en cada lectura.
type InventorySummaryDTO struct {
	TotalValue        decimal.Decimal    `json:"total_value"` // Σ quantity × price
	TotalUnits        int64              `json:"total_units"`
	LowStockThreshold int64              `json:"low_stock_threshold"`
	LowStock          []LowStockItemDTO  `json:"low_stock"`
	ValueByCategory   []CategoryValueDTO `json:"value_by_category"`
}

// LowStockItemDTO producto por debajo del umbral de reorden.
type LowStockItemDTO struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int64  `json:"quantity"`
}

// CategoryValueDTO valor de inventario agregado por categoría.
type CategoryValueDTO struct {
	CategoryName string          `json:"category_name"`
	Value        decimal.Decimal `json:"value"`
}
