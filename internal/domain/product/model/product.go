package model

import (
	"encoding/json"

	baseModel "github.com/renzmar06/socialgolf-server/pkg/model"
)

// Product is a marketplace listing. Unlike promotions it soft-deletes:
// delete flips IsDeleted and listings filter it out, so order history
// pointing at the row keeps resolving.
type Product struct {
	baseModel.BaseModel
	BusinessID  string          `gorm:"type:uuid;index" json:"businessId"`
	Name        string          `gorm:"type:varchar(200);not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Category    string          `gorm:"type:varchar(50);index" json:"category"`
	Price       float64         `gorm:"not null" json:"price"`
	Stock       int             `gorm:"default:0" json:"stock"`
	Images      json.RawMessage `gorm:"type:jsonb" json:"images"`
	IsDeleted   bool            `gorm:"default:false;index" json:"isDeleted"`
}
