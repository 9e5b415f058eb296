package reports_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kardex-api/internal/application/reports"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository/mocks"
)

func row(id, name, category string, quantity int64, price string) *entity.ProductWithCategory {
	return &entity.ProductWithCategory{
		Product: entity.Product{
			ID:       id,
			Name:     name,
			Quantity: quantity,
			Price:    decimal.RequireFromString(price),
		},
		CategoryName: category,
	}
}

func TestGetSummary_CalculaTotalesYAgrupaPorCategoria(t *testing.T) {
	productRepo := new(mocks.MockProductRepository)
	productRepo.On("ListWithCategory").Return([]*entity.ProductWithCategory{
		row("p1", "Martillo", "Herramientas", 10, "25.00"),
		row("p2", "Destornillador", "Herramientas", 4, "8.50"),
		row("p3", "Guantes", "Seguridad", 2, "12.00"),
	}, nil)

	uc := reports.NewUseCase(productRepo)
	summary, err := uc.GetSummary(context.Background(), 5)

	require.NoError(t, err)
	// 10×25.00 + 4×8.50 + 2×12.00 = 250 + 34 + 24 = 308
	assert.True(t, summary.TotalValue.Equal(decimal.RequireFromString("308.00")),
		"valor total esperado 308.00, fue %s", summary.TotalValue)
	assert.Equal(t, int64(16), summary.TotalUnits)

	// Bajo umbral 5: Destornillador (4) y Guantes (2), orden alfabético.
	require.Len(t, summary.LowStock, 2)
	assert.Equal(t, "Destornillador", summary.LowStock[0].ProductName)
	assert.Equal(t, "Guantes", summary.LowStock[1].ProductName)

	// Agrupación por categoría, orden alfabético estable.
	require.Len(t, summary.ValueByCategory, 2)
	assert.Equal(t, "Herramientas", summary.ValueByCategory[0].CategoryName)
	assert.True(t, summary.ValueByCategory[0].Value.Equal(decimal.RequireFromString("284.00")))
	assert.Equal(t, "Seguridad", summary.ValueByCategory[1].CategoryName)
	assert.True(t, summary.ValueByCategory[1].Value.Equal(decimal.RequireFromString("24.00")))
}

// Umbral 0: ningún producto se marca (quantity < 0 es imposible).
func TestGetSummary_UmbralCeroSinLowStock(t *testing.T) {
	productRepo := new(mocks.MockProductRepository)
	productRepo.On("ListWithCategory").Return([]*entity.ProductWithCategory{
		row("p1", "Martillo", "Herramientas", 0, "25.00"),
	}, nil)

	uc := reports.NewUseCase(productRepo)
	summary, err := uc.GetSummary(context.Background(), 0)

	require.NoError(t, err)
	assert.Empty(t, summary.LowStock)
}

// Catálogo vacío: resumen en ceros, nunca nil en los slices.
func TestGetSummary_CatalogoVacio(t *testing.T) {
	productRepo := new(mocks.MockProductRepository)
	productRepo.On("ListWithCategory").Return([]*entity.ProductWithCategory{}, nil)

	uc := reports.NewUseCase(productRepo)
	summary, err := uc.GetSummary(context.Background(), 5)

	require.NoError(t, err)
	assert.True(t, summary.TotalValue.IsZero())
	assert.Equal(t, int64(0), summary.TotalUnits)
	assert.NotNil(t, summary.LowStock)
	assert.NotNil(t, summary.ValueByCategory)
}

// Dos lecturas sin escrituras intermedias devuelven lo mismo (sin caché ni estado).
func TestGetSummary_Idempotente(t *testing.T) {
	productRepo := new(mocks.MockProductRepository)
	productRepo.On("ListWithCategory").Return([]*entity.ProductWithCategory{
		row("p1", "Martillo", "Herramientas", 10, "25.00"),
		row("p2", "Guantes", "Seguridad", 2, "12.00"),
	}, nil)

	uc := reports.NewUseCase(productRepo)
	first, err := uc.GetSummary(context.Background(), 5)
	require.NoError(t, err)
	second, err := uc.GetSummary(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	productRepo.AssertNumberOfCalls(t, "ListWithCategory", 2)
}
