// Package reports contiene las proyecciones de reporte sobre el inventario.
// Todo se recalcula en cada lectura: el catálogo es pequeño y el costo es
// lineal, así que no hay caché ni mantenimiento incremental.
package reports

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

// UseCase genera el resumen de inventario: valor total, unidades totales,
// productos bajo umbral de reorden y valor agrupado por categoría.
type UseCase struct {
	productRepo repository.ProductRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(productRepo repository.ProductRepository) *UseCase {
	return &UseCase{productRepo: productRepo}
}

// GetSummary calcula el resumen sobre una sola lectura del listado de productos.
// lowStockThreshold lo elige el caller: productos con quantity < umbral se
// marcan para reorden.
func (uc *UseCase) GetSummary(ctx context.Context, lowStockThreshold int64) (*dto.InventorySummaryDTO, error) {
	products, err := uc.productRepo.ListWithCategory()
	if err != nil {
		return nil, domain.StoreError(err)
	}

	summary := &dto.InventorySummaryDTO{
		TotalValue:        decimal.Zero,
		LowStockThreshold: lowStockThreshold,
		LowStock:          []dto.LowStockItemDTO{},
		ValueByCategory:   []dto.CategoryValueDTO{},
	}
	byCategory := make(map[string]decimal.Decimal)

	for _, p := range products {
		value := p.Value()
		summary.TotalValue = summary.TotalValue.Add(value)
		summary.TotalUnits += p.Quantity
		byCategory[p.CategoryName] = byCategory[p.CategoryName].Add(value)

		if p.Quantity < lowStockThreshold {
			summary.LowStock = append(summary.LowStock, dto.LowStockItemDTO{
				ProductID:   p.ID,
				ProductName: p.Name,
				Quantity:    p.Quantity,
			})
		}
	}

	for name, value := range byCategory {
		summary.ValueByCategory = append(summary.ValueByCategory, dto.CategoryValueDTO{
			CategoryName: name,
			Value:        value,
		})
	}
	// Orden estable para que dos lecturas sin escrituras intermedias sean idénticas.
	sort.Slice(summary.ValueByCategory, func(i, j int) bool {
		return summary.ValueByCategory[i].CategoryName < summary.ValueByCategory[j].CategoryName
	})
	sort.Slice(summary.LowStock, func(i, j int) bool {
		return summary.LowStock[i].ProductName < summary.LowStock[j].ProductName
	})

	return summary, nil
}
