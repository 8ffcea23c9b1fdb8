package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Salon is the tenant boundary. Every business row (Staff, Service,
// ServiceLog, DailyClosing) is scoped to exactly one salon and every
// query on those tables must filter by salon_id.
type Salon struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID   uuid.UUID `gorm:"type:uuid;index;not null" json:"owner_id"`
	Name      string    `gorm:"not null" json:"name"`
	Address   string    `json:"address"`
	Timezone  string    `gorm:"type:varchar(64);not null;default:'Asia/Kolkata'" json:"timezone"`
	CreatedAt time.Time `json:"created_at"`

	Staff         []Staff        `gorm:"foreignKey:SalonID" json:"-"`
	Services      []Service      `gorm:"foreignKey:SalonID" json:"-"`
	Logs          []ServiceLog   `gorm:"foreignKey:SalonID" json:"-"`
	DailyClosings []DailyClosing `gorm:"foreignKey:SalonID" json:"-"`
}

func (s *Salon) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Timezone == "" {
		s.Timezone = "Asia/Kolkata"
	}
	return
}

// Location resolves the salon's IANA timezone. A salon row always carries
// a timezone, so failure here means bad stored data.
func (s Salon) Location() (*time.Location, error) {
	return time.LoadLocation(s.Timezone)
}
