// Package mocks contiene mocks testify de los puertos de persistencia
// y un TxRunner falso para tests de casos de uso.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

// MockCategoryRepository mock de CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(category *entity.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) GetByID(id string) (*entity.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) List() ([]*entity.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockProductRepository mock de ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(product *entity.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(id string) (*entity.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) GetForUpdate(id string) (*entity.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) ListWithCategory() ([]*entity.ProductWithCategory, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ProductWithCategory), args.Error(1)
}

func (m *MockProductRepository) UpdateQuantity(id string, quantity int64) error {
	args := m.Called(id, quantity)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockMovementRepository mock de MovementRepository.
type MockMovementRepository struct {
	mock.Mock
}

func (m *MockMovementRepository) Create(movement *entity.Movement) error {
	args := m.Called(movement)
	return args.Error(0)
}

func (m *MockMovementRepository) ListWithProduct(limit, offset int) ([]*entity.MovementWithProduct, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.MovementWithProduct), args.Error(1)
}

func (m *MockMovementRepository) ListByProduct(productID string, limit, offset int) ([]*entity.MovementWithProduct, error) {
	args := m.Called(productID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.MovementWithProduct), args.Error(1)
}

// FakeTxRunner implementa ledger.TxRunner sin BD: ejecuta el callback con los
// mocks dados. Si BeginErr no es nil, simula una falla al abrir la transacción.
type FakeTxRunner struct {
	ProductRepo  repository.ProductRepository
	MovementRepo repository.MovementRepository
	BeginErr     error
}

func (f *FakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
) error) error {
	if f.BeginErr != nil {
		return f.BeginErr
	}
	return fn(f.ProductRepo, f.MovementRepo)
}
