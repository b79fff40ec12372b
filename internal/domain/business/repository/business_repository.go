package repository

import (
	"github.com/renzmar06/socialgolf-server/internal/domain/business/model"

	"gorm.io/gorm"
)

type BusinessRepository interface {
	Create(business *model.Business) error
	GetByID(id string) (*model.Business, error)
	GetByEmail(email string) (*model.Business, error)
	Update(business *model.Business) error
}

type businessRepository struct {
	db *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) BusinessRepository {
	return &businessRepository{db: db}
}

func (r *businessRepository) Create(business *model.Business) error {
	return r.db.Create(business).Error
}

func (r *businessRepository) GetByID(id string) (*model.Business, error) {
	var business model.Business
	if err := r.db.Where("id = ?", id).First(&business).Error; err != nil {
		return nil, err
	}
	return &business, nil
}

func (r *businessRepository) GetByEmail(email string) (*model.Business, error) {
	var business model.Business
	if err := r.db.Where("email = ?", email).First(&business).Error; err != nil {
		return nil, err
	}
	return &business, nil
}

func (r *businessRepository) Update(business *model.Business) error {
	return r.db.Save(business).Error
}
