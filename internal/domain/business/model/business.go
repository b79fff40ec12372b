package model

import (
	baseModel "github.com/renzmar06/socialgolf-server/pkg/model"
)

// Business is a tenant account: a golf course, range, shop or coach
// running their storefront through the dashboard.
type Business struct {
	baseModel.BaseModel
	Name     string `gorm:"type:varchar(100);not null" json:"name"`
	Email    string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Phone    string `gorm:"type:varchar(30)" json:"phone"`
	Address  string `json:"address"`
	Logo     string `json:"logo"`
}
