package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

// UseCase es el núcleo del kardex: todo cambio de stock pasa por aquí y deja
// exactamente un movimiento en el historial. La creación de producto con stock
// inicial es el movimiento cero (RECEIPT_NEW), no un caso exento de auditoría.
type UseCase struct {
	txRunner     TxRunner
	categoryRepo repository.CategoryRepository
	movementRepo repository.MovementRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	categoryRepo repository.CategoryRepository,
	movementRepo repository.MovementRepository,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		categoryRepo: categoryRepo,
		movementRepo: movementRepo,
	}
}

// CreateProductInput entrada para crear un producto con su stock inicial.
type CreateProductInput struct {
	Name       string
	CategoryID string
	Quantity   int64
	Price      decimal.Decimal
}

// CreateProduct valida y crea el producto; si Quantity > 0 registra además el
// movimiento RECEIPT_NEW en la misma transacción.
func (uc *UseCase) CreateProduct(ctx context.Context, in CreateProductInput) (*entity.Product, error) {
	if strings.TrimSpace(in.Name) == "" || in.CategoryID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, domain.StoreError(err)
	}
	if category == nil {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	product := &entity.Product{
		ID:         uuid.New().String(),
		Name:       strings.TrimSpace(in.Name),
		Quantity:   in.Quantity,
		Price:      in.Price,
		CategoryID: in.CategoryID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		if in.Quantity == 0 {
			// Sin stock inicial no hubo cambio que auditar.
			return nil
		}
		return movementRepo.Create(&entity.Movement{
			ProductID: product.ID,
			Type:      entity.MovementTypeReceiptNew,
			Quantity:  in.Quantity,
			Note:      "stock inicial",
		})
	})
	if err != nil {
		return nil, domain.StoreError(err)
	}
	return product, nil
}

// AdjustResult resultado de un ajuste de stock.
type AdjustResult struct {
	NewQuantity int64
}

// AdjustQuantity aplica un ajuste con signo al stock de un producto y registra
// el movimiento correspondiente, todo en una transacción:
//
//  1. Bloquea la fila del producto (SELECT FOR UPDATE); si no existe → ErrNotFound.
//  2. newQuantity = quantity + delta; si queda negativo → ErrInsufficientStock,
//     sin escribir nada.
//  3. Update de cantidad + insert en movements; Commit o Rollback de ambos.
//
// El lock de fila hace que dos ajustes concurrentes al mismo producto se
// serialicen: el segundo ve la cantidad que dejó el primero.
func (uc *UseCase) AdjustQuantity(ctx context.Context, productID string, delta int64, note string) (*AdjustResult, error) {
	if productID == "" || delta == 0 {
		return nil, domain.ErrInvalidInput
	}

	movType := entity.MovementTypeReceipt
	magnitude := delta
	if delta < 0 {
		movType = entity.MovementTypeIssue
		magnitude = -delta
	}

	var result AdjustResult
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		newQuantity := product.Quantity + delta
		if newQuantity < 0 {
			return domain.ErrInsufficientStock
		}
		if err := productRepo.UpdateQuantity(productID, newQuantity); err != nil {
			return err
		}
		if err := movementRepo.Create(&entity.Movement{
			ProductID: productID,
			Type:      movType,
			Quantity:  magnitude,
			Note:      note,
		}); err != nil {
			return err
		}
		result.NewQuantity = newQuantity
		return nil
	})
	if err != nil {
		return nil, domain.StoreError(err)
	}
	return &result, nil
}

// ListMovements devuelve el historial del kardex, más reciente primero.
// productID vacío devuelve el historial completo.
func (uc *UseCase) ListMovements(ctx context.Context, productID string, limit, offset int) ([]*entity.MovementWithProduct, error) {
	var (
		list []*entity.MovementWithProduct
		err  error
	)
	if productID != "" {
		list, err = uc.movementRepo.ListByProduct(productID, limit, offset)
	} else {
		list, err = uc.movementRepo.ListWithProduct(limit, offset)
	}
	if err != nil {
		return nil, domain.StoreError(err)
	}
	return list, nil
}
