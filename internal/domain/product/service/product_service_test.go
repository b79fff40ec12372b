package service

import (
	"testing"

	"github.com/renzmar06/socialgolf-server/internal/domain/product/model"
	"github.com/renzmar06/socialgolf-server/internal/domain/product/repository"
	"github.com/renzmar06/socialgolf-server/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(product *model.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(id string) (*model.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) GetList(keyword, category string, offset, limit int) ([]model.Product, int64, error) {
	args := m.Called(keyword, category, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) Update(id string, fields map[string]interface{}) (*model.Product, error) {
	args := m.Called(id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) SoftDelete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockProductRepository) AdjustStock(id string, delta int) error {
	args := m.Called(id, delta)
	return args.Error(0)
}

func TestRestock(t *testing.T) {
	t.Run("applies the adjustment and returns the fresh row", func(t *testing.T) {
		repo := new(MockProductRepository)
		svc := NewProductService(repo)

		repo.On("AdjustStock", "prod-1", 5).Return(nil)
		repo.On("GetByID", "prod-1").Return(&model.Product{Stock: 12}, nil)

		product, err := svc.Restock("prod-1", 5)

		assert.NoError(t, err)
		assert.Equal(t, 12, product.Stock)
		repo.AssertExpectations(t)
	})

	t.Run("refuses to take stock below zero", func(t *testing.T) {
		repo := new(MockProductRepository)
		svc := NewProductService(repo)

		repo.On("AdjustStock", "prod-1", -20).Return(repository.ErrOutOfStock)

		_, err := svc.Restock("prod-1", -20)

		assert.ErrorIs(t, err, ErrOutOfStock)
		repo.AssertNotCalled(t, "GetByID", mock.Anything)
	})

	t.Run("rejects a zero delta without touching storage", func(t *testing.T) {
		repo := new(MockProductRepository)
		svc := NewProductService(repo)

		_, err := svc.Restock("prod-1", 0)

		assert.ErrorIs(t, err, errs.ErrValidation)
		repo.AssertNotCalled(t, "AdjustStock", mock.Anything, mock.Anything)
	})

	t.Run("maps a missing product to not found", func(t *testing.T) {
		repo := new(MockProductRepository)
		svc := NewProductService(repo)

		repo.On("AdjustStock", "prod-missing", 3).Return(gorm.ErrRecordNotFound)

		_, err := svc.Restock("prod-missing", 3)

		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestDeleteProduct(t *testing.T) {
	t.Run("flags the row instead of removing it", func(t *testing.T) {
		repo := new(MockProductRepository)
		svc := NewProductService(repo)

		repo.On("SoftDelete", "prod-1").Return(nil)

		assert.NoError(t, svc.DeleteProduct("prod-1"))
		repo.AssertExpectations(t)
	})

	t.Run("maps a missing product to not found", func(t *testing.T) {
		repo := new(MockProductRepository)
		svc := NewProductService(repo)

		repo.On("SoftDelete", "prod-missing").Return(gorm.ErrRecordNotFound)

		assert.ErrorIs(t, svc.DeleteProduct("prod-missing"), errs.ErrNotFound)
	})
}

func TestCreateProduct(t *testing.T) {
	price := 49.99

	t.Run("rejects negative stock", func(t *testing.T) {
		repo := new(MockProductRepository)
		svc := NewProductService(repo)

		_, err := svc.CreateProduct(CreateParams{Name: "Glove", Price: &price, Stock: -1})

		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("requires a price", func(t *testing.T) {
		repo := new(MockProductRepository)
		svc := NewProductService(repo)

		_, err := svc.CreateProduct(CreateParams{Name: "Glove"})

		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}
