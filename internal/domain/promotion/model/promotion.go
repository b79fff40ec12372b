package model

import (
	"time"

	baseModel "github.com/renzmar06/socialgolf-server/pkg/model"
)

// Persisted lifecycle override. Only these two values are ever written;
// Scheduled/Expired are derived at read time and never stored.
const (
	StatusActive = "Active"
	StatusPaused = "Paused"
)

// Visibility values.
const (
	VisibilityPublic       = "Public"
	VisibilityFollowers    = "Followers Only"
	VisibilityParticipants = "Event Participants"
)

// Promotion is the central dashboard entity. Hard-deleted on removal,
// unlike products which carry a soft-delete flag.
type Promotion struct {
	baseModel.BaseModel
	Title              string     `gorm:"type:varchar(200);not null" json:"title"`
	Description        string     `gorm:"type:text" json:"description"`
	PromoType          string     `gorm:"type:varchar(50);not null" json:"promoType"` // Percentage Off, Dollar Off, BOGO, ...
	PromoCode          string     `gorm:"type:varchar(50);index" json:"promoCode"`
	DiscountValue      float64    `gorm:"not null" json:"discountValue"`
	StartDate          time.Time  `gorm:"not null" json:"startDate"`
	EndDate            time.Time  `gorm:"not null" json:"endDate"`
	Visibility         string     `gorm:"type:varchar(30);default:'Public'" json:"visibility"`
	MaxRedemptions     int        `gorm:"default:0" json:"maxRedemptions"` // 0 = unlimited
	CurrentRedemptions int        `gorm:"default:0" json:"currentRedemptions"`
	CoverImage         string     `json:"coverImage"`
	Status             string     `gorm:"type:varchar(20);default:'Active'" json:"status"`
	Boost              Boost      `gorm:"embedded;embeddedPrefix:boost_" json:"boost"`
	QRGeneratedAt      *time.Time `json:"qrGeneratedAt"`
}

// Boost is the persisted paid-visibility state. Boosted-ness is always
// recomputed against now, never trusted as a stored flag alone.
type Boost struct {
	Active       bool       `json:"active"`
	Tier         string     `gorm:"type:varchar(20)" json:"tier"`
	RadiusMiles  int        `json:"radiusMiles"`
	DurationDays int        `json:"durationDays"`
	StartedAt    *time.Time `json:"startedAt"`
}

// ActiveAt reports whether the boost window covers now.
func (b Boost) ActiveAt(now time.Time) bool {
	if !b.Active || b.StartedAt == nil || b.DurationDays <= 0 {
		return false
	}
	return now.Before(b.StartedAt.Add(time.Duration(b.DurationDays) * 24 * time.Hour))
}
