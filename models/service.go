package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Service is a sellable offering. DefaultPrice is only a suggestion: the
// price actually charged lives on each ServiceLog. Soft-deleted via
// IsActive so old logs keep resolving the name.
type Service struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	SalonID      uuid.UUID       `gorm:"type:uuid;index;not null" json:"salon_id"`
	Name         string          `gorm:"not null" json:"name"`
	DefaultPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"default_price"`
	IsActive     bool            `gorm:"not null;default:true" json:"is_active"`
	SortOrder    int             `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
