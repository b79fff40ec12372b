package repository

import (
	"errors"

	"github.com/renzmar06/socialgolf-server/internal/domain/product/model"

	"gorm.io/gorm"
)

// ErrOutOfStock is returned when a stock adjustment would go negative.
var ErrOutOfStock = errors.New("insufficient stock")

type ProductRepository interface {
	Create(product *model.Product) error
	GetByID(id string) (*model.Product, error)
	GetList(keyword, category string, offset, limit int) ([]model.Product, int64, error)
	Update(id string, fields map[string]interface{}) (*model.Product, error)
	// SoftDelete flips is_deleted; the row stays.
	SoftDelete(id string) error
	// AdjustStock adds delta to stock, refusing to go below zero.
	AdjustStock(id string, delta int) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepository) GetByID(id string) (*model.Product, error) {
	var product model.Product
	if err := r.db.Where("id = ? AND is_deleted = false", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetList(keyword, category string, offset, limit int) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	query := r.db.Model(&model.Product{}).Where("is_deleted = false")
	if keyword != "" {
		query = query.Where("name ILIKE ?", "%"+keyword+"%")
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *productRepository) Update(id string, fields map[string]interface{}) (*model.Product, error) {
	result := r.db.Model(&model.Product{}).Where("id = ? AND is_deleted = false", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

func (r *productRepository) SoftDelete(id string) error {
	result := r.db.Model(&model.Product{}).
		Where("id = ? AND is_deleted = false", id).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *productRepository) AdjustStock(id string, delta int) error {
	result := r.db.Model(&model.Product{}).
		Where("id = ? AND is_deleted = false AND stock + ? >= 0", id, delta).
		UpdateColumn("stock", gorm.Expr("stock + ?", delta))

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Distinguish missing row from exhausted stock.
		var count int64
		if err := r.db.Model(&model.Product{}).Where("id = ? AND is_deleted = false", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		return ErrOutOfStock
	}
	return nil
}
