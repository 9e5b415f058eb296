package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kardex-api/internal/application/ledger"
	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository/mocks"
)

func newTestProduct(quantity int64) *entity.Product {
	now := time.Now()
	return &entity.Product{
		ID:         uuid.New().String(),
		Name:       "Martillo",
		Quantity:   quantity,
		Price:      decimal.NewFromFloat(25.00),
		CategoryID: uuid.New().String(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func newUseCase(productRepo *mocks.MockProductRepository, movementRepo *mocks.MockMovementRepository, categoryRepo *mocks.MockCategoryRepository) *ledger.UseCase {
	tx := &mocks.FakeTxRunner{ProductRepo: productRepo, MovementRepo: movementRepo}
	return ledger.NewUseCase(tx, categoryRepo, movementRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// AdjustQuantity
// ──────────────────────────────────────────────────────────────────────────────

// Un delta positivo suma stock y registra exactamente un RECEIPT con la magnitud.
func TestAdjustQuantity_EntradaRegistraReceipt(t *testing.T) {
	product := newTestProduct(10)
	productRepo := new(mocks.MockProductRepository)
	movementRepo := new(mocks.MockMovementRepository)

	productRepo.On("GetForUpdate", product.ID).Return(product, nil)
	productRepo.On("UpdateQuantity", product.ID, int64(15)).Return(nil)
	movementRepo.On("Create", mock.MatchedBy(func(m *entity.Movement) bool {
		return m.ProductID == product.ID &&
			m.Type == entity.MovementTypeReceipt &&
			m.Quantity == 5 &&
			m.Note == "compra proveedor"
	})).Return(nil).Once()

	uc := newUseCase(productRepo, movementRepo, new(mocks.MockCategoryRepository))
	result, err := uc.AdjustQuantity(context.Background(), product.ID, 5, "compra proveedor")

	require.NoError(t, err)
	assert.Equal(t, int64(15), result.NewQuantity)
	productRepo.AssertExpectations(t)
	movementRepo.AssertExpectations(t)
}

// Un delta negativo resta stock y registra un ISSUE con la magnitud absoluta.
func TestAdjustQuantity_SalidaRegistraIssue(t *testing.T) {
	product := newTestProduct(10)
	productRepo := new(mocks.MockProductRepository)
	movementRepo := new(mocks.MockMovementRepository)

	productRepo.On("GetForUpdate", product.ID).Return(product, nil)
	productRepo.On("UpdateQuantity", product.ID, int64(7)).Return(nil)
	movementRepo.On("Create", mock.MatchedBy(func(m *entity.Movement) bool {
		return m.Type == entity.MovementTypeIssue && m.Quantity == 3 && m.Note == "venta"
	})).Return(nil).Once()

	uc := newUseCase(productRepo, movementRepo, new(mocks.MockCategoryRepository))
	result, err := uc.AdjustQuantity(context.Background(), product.ID, -3, "venta")

	require.NoError(t, err)
	assert.Equal(t, int64(7), result.NewQuantity)
	movementRepo.AssertExpectations(t)
}

// Un ajuste que dejaría el stock negativo se rechaza sin escribir nada:
// ni update de cantidad ni movimiento.
func TestAdjustQuantity_StockNegativoRechazadoSinEscrituras(t *testing.T) {
	product := newTestProduct(7)
	productRepo := new(mocks.MockProductRepository)
	movementRepo := new(mocks.MockMovementRepository)

	productRepo.On("GetForUpdate", product.ID).Return(product, nil)

	uc := newUseCase(productRepo, movementRepo, new(mocks.MockCategoryRepository))
	result, err := uc.AdjustQuantity(context.Background(), product.ID, -20, "venta mayorista")

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Nil(t, result)
	productRepo.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything)
	movementRepo.AssertNotCalled(t, "Create", mock.Anything)
}

// Producto inexistente (p. ej. eliminado entre lectura y ajuste) → ErrNotFound.
func TestAdjustQuantity_ProductoInexistente(t *testing.T) {
	productRepo := new(mocks.MockProductRepository)
	movementRepo := new(mocks.MockMovementRepository)

	productRepo.On("GetForUpdate", "no-existe").Return(nil, nil)

	uc := newUseCase(productRepo, movementRepo, new(mocks.MockCategoryRepository))
	_, err := uc.AdjustQuantity(context.Background(), "no-existe", 1, "")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	movementRepo.AssertNotCalled(t, "Create", mock.Anything)
}

// Delta cero no es un ajuste válido.
func TestAdjustQuantity_DeltaCeroInvalido(t *testing.T) {
	uc := newUseCase(new(mocks.MockProductRepository), new(mocks.MockMovementRepository), new(mocks.MockCategoryRepository))
	_, err := uc.AdjustQuantity(context.Background(), uuid.New().String(), 0, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Si falla el insert del movimiento, todo el ajuste falla: el kardex es parte
// del invariante, no un efecto secundario opcional.
func TestAdjustQuantity_FallaMovimientoFallaTodo(t *testing.T) {
	product := newTestProduct(10)
	productRepo := new(mocks.MockProductRepository)
	movementRepo := new(mocks.MockMovementRepository)

	insertErr := errors.New("write timeout")
	productRepo.On("GetForUpdate", product.ID).Return(product, nil)
	productRepo.On("UpdateQuantity", product.ID, int64(12)).Return(nil)
	movementRepo.On("Create", mock.Anything).Return(insertErr)

	uc := newUseCase(productRepo, movementRepo, new(mocks.MockCategoryRepository))
	result, err := uc.AdjustQuantity(context.Background(), product.ID, 2, "")

	assert.ErrorIs(t, err, insertErr)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.Nil(t, result)
}

// Una falla de infraestructura sale envuelta en ErrStoreUnavailable; los
// errores de dominio cruzan el caso de uso sin envolver.
func TestAdjustQuantity_FallaInfraestructuraEnvuelta(t *testing.T) {
	productRepo := new(mocks.MockProductRepository)
	movementRepo := new(mocks.MockMovementRepository)

	productRepo.On("GetForUpdate", "p1").Return(nil, errors.New("conn closed"))

	uc := newUseCase(productRepo, movementRepo, new(mocks.MockCategoryRepository))
	_, err := uc.AdjustQuantity(context.Background(), "p1", 1, "")

	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateProduct
// ──────────────────────────────────────────────────────────────────────────────

// Crear un producto con stock inicial registra el movimiento RECEIPT_NEW
// con la cantidad inicial: el stock inicial es el movimiento cero.
func TestCreateProduct_StockInicialRegistraReceiptNew(t *testing.T) {
	categoryRepo := new(mocks.MockCategoryRepository)
	productRepo := new(mocks.MockProductRepository)
	movementRepo := new(mocks.MockMovementRepository)

	category := &entity.Category{ID: uuid.New().String(), Name: "Herramientas"}
	categoryRepo.On("GetByID", category.ID).Return(category, nil)
	productRepo.On("Create", mock.AnythingOfType("*entity.Product")).Return(nil)
	movementRepo.On("Create", mock.MatchedBy(func(m *entity.Movement) bool {
		return m.Type == entity.MovementTypeReceiptNew && m.Quantity == 10 && m.ProductID != ""
	})).Return(nil).Once()

	uc := newUseCase(productRepo, movementRepo, categoryRepo)
	product, err := uc.CreateProduct(context.Background(), ledger.CreateProductInput{
		Name:       "Martillo",
		CategoryID: category.ID,
		Quantity:   10,
		Price:      decimal.NewFromFloat(25.00),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), product.Quantity)
	assert.NotEmpty(t, product.ID)
	movementRepo.AssertExpectations(t)
}

// Con stock inicial cero no hay cambio que auditar: producto sin movimiento.
func TestCreateProduct_SinStockInicialSinMovimiento(t *testing.T) {
	categoryRepo := new(mocks.MockCategoryRepository)
	productRepo := new(mocks.MockProductRepository)
	movementRepo := new(mocks.MockMovementRepository)

	category := &entity.Category{ID: uuid.New().String(), Name: "Herramientas"}
	categoryRepo.On("GetByID", category.ID).Return(category, nil)
	productRepo.On("Create", mock.AnythingOfType("*entity.Product")).Return(nil)

	uc := newUseCase(productRepo, movementRepo, categoryRepo)
	_, err := uc.CreateProduct(context.Background(), ledger.CreateProductInput{
		Name:       "Destornillador",
		CategoryID: category.ID,
		Quantity:   0,
		Price:      decimal.NewFromFloat(8.50),
	})

	require.NoError(t, err)
	movementRepo.AssertNotCalled(t, "Create", mock.Anything)
}

// Categoría inexistente → ErrInvalidInput, sin insertar nada.
func TestCreateProduct_CategoriaInexistente(t *testing.T) {
	categoryRepo := new(mocks.MockCategoryRepository)
	productRepo := new(mocks.MockProductRepository)
	movementRepo := new(mocks.MockMovementRepository)

	categoryRepo.On("GetByID", "fantasma").Return(nil, nil)

	uc := newUseCase(productRepo, movementRepo, categoryRepo)
	_, err := uc.CreateProduct(context.Background(), ledger.CreateProductInput{
		Name:       "Martillo",
		CategoryID: "fantasma",
		Quantity:   1,
		Price:      decimal.NewFromInt(10),
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	productRepo.AssertNotCalled(t, "Create", mock.Anything)
}

// Nombre vacío, cantidad negativa o precio negativo → ErrInvalidInput.
func TestCreateProduct_EntradasInvalidas(t *testing.T) {
	uc := newUseCase(new(mocks.MockProductRepository), new(mocks.MockMovementRepository), new(mocks.MockCategoryRepository))

	cases := []ledger.CreateProductInput{
		{Name: "   ", CategoryID: "cat", Quantity: 1, Price: decimal.NewFromInt(1)},
		{Name: "Martillo", CategoryID: "", Quantity: 1, Price: decimal.NewFromInt(1)},
		{Name: "Martillo", CategoryID: "cat", Quantity: -1, Price: decimal.NewFromInt(1)},
		{Name: "Martillo", CategoryID: "cat", Quantity: 1, Price: decimal.NewFromInt(-1)},
	}
	for _, in := range cases {
		_, err := uc.CreateProduct(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

// Si el insert del producto falla dentro de la tx, no se registra movimiento.
func TestCreateProduct_FallaInsertNoRegistraMovimiento(t *testing.T) {
	categoryRepo := new(mocks.MockCategoryRepository)
	productRepo := new(mocks.MockProductRepository)
	movementRepo := new(mocks.MockMovementRepository)

	category := &entity.Category{ID: uuid.New().String(), Name: "Herramientas"}
	categoryRepo.On("GetByID", category.ID).Return(category, nil)
	productRepo.On("Create", mock.Anything).Return(domain.ErrInvalidInput)

	uc := newUseCase(productRepo, movementRepo, categoryRepo)
	_, err := uc.CreateProduct(context.Background(), ledger.CreateProductInput{
		Name:       "Martillo",
		CategoryID: category.ID,
		Quantity:   10,
		Price:      decimal.NewFromInt(25),
	})

	assert.Error(t, err)
	movementRepo.AssertNotCalled(t, "Create", mock.Anything)
}

// ──────────────────────────────────────────────────────────────────────────────
// ListMovements
// ──────────────────────────────────────────────────────────────────────────────

func TestListMovements_FiltraPorProducto(t *testing.T) {
	movementRepo := new(mocks.MockMovementRepository)
	history := []*entity.MovementWithProduct{
		{Movement: entity.Movement{ID: "m1", Type: entity.MovementTypeIssue, Quantity: 3}, ProductName: "Martillo"},
	}
	movementRepo.On("ListByProduct", "p1", 20, 0).Return(history, nil)

	uc := newUseCase(new(mocks.MockProductRepository), movementRepo, new(mocks.MockCategoryRepository))
	list, err := uc.ListMovements(context.Background(), "p1", 20, 0)

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Martillo", list[0].ProductName)
	movementRepo.AssertNotCalled(t, "ListWithProduct", mock.Anything, mock.Anything)
}

func TestListMovements_SinFiltroDevuelveTodo(t *testing.T) {
	movementRepo := new(mocks.MockMovementRepository)
	movementRepo.On("ListWithProduct", 20, 0).Return([]*entity.MovementWithProduct{}, nil)

	uc := newUseCase(new(mocks.MockProductRepository), movementRepo, new(mocks.MockCategoryRepository))
	_, err := uc.ListMovements(context.Background(), "", 20, 0)

	require.NoError(t, err)
	movementRepo.AssertExpectations(t)
}
