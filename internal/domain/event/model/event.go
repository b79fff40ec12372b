package model

import (
	"time"

	baseModel "github.com/renzmar06/socialgolf-server/pkg/model"
)

// Event is a scheduled golf event run by a business: scrambles,
// clinics, demo days, league nights.
type Event struct {
	baseModel.BaseModel
	BusinessID  string    `gorm:"type:uuid;index" json:"businessId"`
	Title       string    `gorm:"type:varchar(200);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Location    string    `json:"location"`
	StartsAt    time.Time `gorm:"not null" json:"startsAt"`
	Capacity    int       `gorm:"default:0" json:"capacity"` // 0 = unlimited
	CoverImage  string    `json:"coverImage"`
}
