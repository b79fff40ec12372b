package model

import (
	"time"

	baseModel "github.com/renzmar06/socialgolf-server/pkg/model"
)

// Booking statuses.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// Service is a bookable offering: lessons, tee times, club fittings.
type Service struct {
	baseModel.BaseModel
	BusinessID      string  `gorm:"type:uuid;index" json:"businessId"`
	Name            string  `gorm:"type:varchar(200);not null" json:"name"`
	Description     string  `gorm:"type:text" json:"description"`
	Price           float64 `gorm:"not null" json:"price"`
	DurationMinutes int     `gorm:"not null" json:"durationMinutes"`
}

// Booking is a customer's reservation against a service.
type Booking struct {
	baseModel.BaseModel
	ServiceID     string    `gorm:"type:uuid;index;not null" json:"serviceId"`
	CustomerName  string    `gorm:"type:varchar(100);not null" json:"customerName"`
	CustomerEmail string    `gorm:"type:varchar(255);not null" json:"customerEmail"`
	ScheduledAt   time.Time `gorm:"not null;index" json:"scheduledAt"`
	Status        string    `gorm:"type:varchar(20);default:'pending'" json:"status"`
	Notes         string    `json:"notes"`
}
