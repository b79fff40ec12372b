package repository

import (
	"errors"

	"github.com/renzmar06/socialgolf-server/internal/domain/promotion/model"

	"gorm.io/gorm"
)

// ErrRedemptionLimit is returned when the capacity-guarded counter
// update affects no rows.
var ErrRedemptionLimit = errors.New("redemption limit reached")

type PromotionRepository interface {
	Create(promotion *model.Promotion) error
	GetByID(id string) (*model.Promotion, error)
	// Search returns promotions newest-first whose title or promo code
	// matches term (empty term matches all).
	Search(term string) ([]model.Promotion, error)
	// Update merges only the provided columns and refreshes updated_at.
	Update(id string, fields map[string]interface{}) (*model.Promotion, error)
	Delete(id string) error
	// IncrementRedemptions bumps the counter, refusing to pass
	// max_redemptions when a limit is set.
	IncrementRedemptions(id string) error
}

type promotionRepository struct {
	db *gorm.DB
}

func NewPromotionRepository(db *gorm.DB) PromotionRepository {
	return &promotionRepository{db: db}
}

func (r *promotionRepository) Create(promotion *model.Promotion) error {
	return r.db.Create(promotion).Error
}

func (r *promotionRepository) GetByID(id string) (*model.Promotion, error) {
	var promotion model.Promotion
	if err := r.db.Where("id = ?", id).First(&promotion).Error; err != nil {
		return nil, err
	}
	return &promotion, nil
}

func (r *promotionRepository) Search(term string) ([]model.Promotion, error) {
	var promotions []model.Promotion

	query := r.db.Model(&model.Promotion{})
	if term != "" {
		pattern := "%" + term + "%"
		query = query.Where("title ILIKE ? OR promo_code ILIKE ?", pattern, pattern)
	}

	if err := query.Order("created_at desc").Find(&promotions).Error; err != nil {
		return nil, err
	}
	return promotions, nil
}

func (r *promotionRepository) Update(id string, fields map[string]interface{}) (*model.Promotion, error) {
	result := r.db.Model(&model.Promotion{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

// Delete is a hard delete; promotions have no soft-delete column.
func (r *promotionRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&model.Promotion{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *promotionRepository) IncrementRedemptions(id string) error {
	result := r.db.Model(&model.Promotion{}).
		Where("id = ? AND (max_redemptions = 0 OR current_redemptions < max_redemptions)", id).
		UpdateColumn("current_redemptions", gorm.Expr("current_redemptions + 1"))

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRedemptionLimit
	}
	return nil
}
