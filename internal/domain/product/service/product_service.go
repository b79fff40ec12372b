package service

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/renzmar06/socialgolf-server/internal/domain/product/model"
	"github.com/renzmar06/socialgolf-server/internal/domain/product/repository"
	"github.com/renzmar06/socialgolf-server/pkg/errs"

	"gorm.io/gorm"
)

// ErrOutOfStock re-exported for handlers.
var ErrOutOfStock = repository.ErrOutOfStock

type CreateParams struct {
	BusinessID  string
	Name        string
	Description string
	Category    string
	Price       *float64
	Stock       int
	Images      []string
}

type ProductService interface {
	CreateProduct(params CreateParams) (*model.Product, error)
	GetProduct(id string) (*model.Product, error)
	ListProducts(keyword, category string, page, limit int) ([]model.Product, int64, error)
	UpdateProduct(id string, fields map[string]interface{}) (*model.Product, error)
	DeleteProduct(id string) error
	Restock(id string, delta int) (*model.Product, error)
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) CreateProduct(params CreateParams) (*model.Product, error) {
	if strings.TrimSpace(params.Name) == "" {
		return nil, errs.Validationf("name is required")
	}
	if params.Price == nil {
		return nil, errs.Validationf("price is required")
	}
	if *params.Price < 0 {
		return nil, errs.Validationf("price must be non-negative")
	}
	if params.Stock < 0 {
		return nil, errs.Validationf("stock must not be negative")
	}

	images, err := json.Marshal(params.Images)
	if err != nil {
		return nil, errs.Validationf("images: %v", err)
	}

	product := &model.Product{
		BusinessID:  params.BusinessID,
		Name:        strings.TrimSpace(params.Name),
		Description: params.Description,
		Category:    params.Category,
		Price:       *params.Price,
		Stock:       params.Stock,
		Images:      images,
	}
	if err := s.repo.Create(product); err != nil {
		return nil, errs.Storagef("create product: %v", err)
	}
	return product, nil
}

func (s *productService) GetProduct(id string) (*model.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("product %s", id)
		}
		return nil, errs.Storagef("get product: %v", err)
	}
	return product, nil
}

func (s *productService) ListProducts(keyword, category string, page, limit int) ([]model.Product, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	products, total, err := s.repo.GetList(keyword, category, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, errs.Storagef("list products: %v", err)
	}
	return products, total, nil
}

func (s *productService) UpdateProduct(id string, fields map[string]interface{}) (*model.Product, error) {
	if price, ok := fields["price"].(float64); ok && price < 0 {
		return nil, errs.Validationf("price must be non-negative")
	}
	fields["updated_at"] = time.Now()

	product, err := s.repo.Update(id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("product %s", id)
		}
		return nil, errs.Storagef("update product: %v", err)
	}
	return product, nil
}

func (s *productService) DeleteProduct(id string) error {
	if err := s.repo.SoftDelete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NotFoundf("product %s", id)
		}
		return errs.Storagef("delete product: %v", err)
	}
	return nil
}

func (s *productService) Restock(id string, delta int) (*model.Product, error) {
	if delta == 0 {
		return nil, errs.Validationf("delta must not be zero")
	}

	if err := s.repo.AdjustStock(id, delta); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, errs.NotFoundf("product %s", id)
		case errors.Is(err, repository.ErrOutOfStock):
			return nil, err
		default:
			return nil, errs.Storagef("adjust stock: %v", err)
		}
	}
	return s.GetProduct(id)
}
